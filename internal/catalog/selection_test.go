package catalog

import (
	"errors"
	"testing"
)

func TestSelection_ToggleIsItsOwnInverse(t *testing.T) {
	sel := NewSelection(BrowseSelectionCap)
	x := pricedPhone("x", "X", 1)

	if err := sel.Toggle(x); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !sel.Contains("x") || sel.Len() != 1 {
		t.Fatalf("expected {x}, got %d members", sel.Len())
	}
	if err := sel.Toggle(x); err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if sel.Len() != 0 {
		t.Errorf("expected empty selection, got %d members", sel.Len())
	}
}

func TestSelection_CapRejection(t *testing.T) {
	sel := NewSelection(BrowseSelectionCap)
	for i := 0; i < BrowseSelectionCap; i++ {
		if err := sel.Toggle(pricedPhone(string(rune('a'+i)), "P", 1)); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
	}

	err := sel.Toggle(pricedPhone("overflow", "P", 1))
	if !errors.Is(err, ErrSelectionFull) {
		t.Fatalf("expected ErrSelectionFull, got %v", err)
	}
	// Rejection leaves state untouched.
	if sel.Len() != BrowseSelectionCap {
		t.Errorf("cap rejection changed size to %d", sel.Len())
	}
	if sel.Contains("overflow") {
		t.Error("rejected phone is present")
	}

	// Removing a member via toggle still works at cap.
	if err := sel.Toggle(pricedPhone("a", "P", 1)); err != nil {
		t.Errorf("toggle-off at cap: %v", err)
	}
	if sel.Len() != BrowseSelectionCap-1 {
		t.Errorf("expected %d after toggle-off, got %d", BrowseSelectionCap-1, sel.Len())
	}
}

func TestSelection_RemoveFloor(t *testing.T) {
	sel := NewCompareList([]Phone{
		pricedPhone("a", "A", 1),
		pricedPhone("b", "B", 2),
	})

	if err := sel.Remove("a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := sel.Remove("b"); !errors.Is(err, ErrLastRemaining) {
		t.Fatalf("expected ErrLastRemaining, got %v", err)
	}
	if sel.Len() != 1 {
		t.Errorf("floor breached: %d members", sel.Len())
	}
}

func TestNewCompareList_TruncatesAndDeduplicates(t *testing.T) {
	in := []Phone{
		pricedPhone("a", "A", 1),
		pricedPhone("a", "A dup", 1),
		pricedPhone("b", "B", 2),
		pricedPhone("c", "C", 3),
		pricedPhone("d", "D", 4),
		pricedPhone("e", "E", 5),
	}
	sel := NewCompareList(in)
	if sel.Len() != CompareSelectionCap {
		t.Errorf("expected cap %d, got %d", CompareSelectionCap, sel.Len())
	}
	if !sel.Contains("a") || sel.Contains("e") {
		t.Errorf("unexpected membership: %v", sel.Phones())
	}
}

func TestSelection_AddIdempotent(t *testing.T) {
	sel := NewSelection(CompareSelectionCap)
	a := pricedPhone("a", "A", 1)
	if err := sel.Add(a); err != nil {
		t.Fatal(err)
	}
	if err := sel.Add(a); err != nil {
		t.Fatal(err)
	}
	if sel.Len() != 1 {
		t.Errorf("duplicate add grew selection to %d", sel.Len())
	}
}
