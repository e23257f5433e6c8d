package ui

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	table := NewTable("Comparison", []string{"Spec", "Galaxy S24", "Pixel 8"})
	table.AddRow("Price", "₹74,999", "₹75,999")

	styles := DefaultStyles()
	view := table.View(styles)

	t.Logf("View:\n%q", view)

	if !strings.Contains(view, "Comparison") {
		t.Error("View missing title")
	}
	if !strings.Contains(view, "₹74,999") {
		t.Error("View missing cell content")
	}
}

func TestTablePadsShortRows(t *testing.T) {
	table := NewTable("", []string{"Spec", "A", "B"})
	table.AddRow("Chipset", "Tensor G3")

	view := table.View(DefaultStyles())
	if !strings.Contains(view, "-") {
		t.Error("missing column not padded with placeholder")
	}
}

func TestTableClipsLongCells(t *testing.T) {
	table := NewTable("", []string{"Spec", "A"})
	table.MaxColWidth = 10
	table.AddRow("Camera", strings.Repeat("x", 40))

	view := table.View(DefaultStyles())
	if strings.Contains(view, strings.Repeat("x", 11)) {
		t.Error("overlong cell not clipped")
	}
	if !strings.Contains(view, "…") {
		t.Error("clipped cell missing ellipsis")
	}
}

func TestTableEmptyRendersNothing(t *testing.T) {
	table := NewTable("Empty", []string{"Spec"})
	if view := table.View(DefaultStyles()); view != "" {
		t.Errorf("empty table rendered %q", view)
	}
}
