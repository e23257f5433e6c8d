package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders static tabular data, one column per compared phone plus a
// leading label column.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string

	// MaxColWidth truncates overlong cells; zero means unbounded.
	MaxColWidth int
}

// NewTable creates a new Table with the given title and headers.
func NewTable(title string, headers []string) *Table {
	return &Table{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table. Short rows are padded with "-" so every
// column stays aligned.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.Headers))
	for i := range row {
		if i < len(cells) && cells[i] != "" {
			row[i] = cells[i]
		} else {
			row[i] = "-"
		}
	}
	t.Rows = append(t.Rows, row)
}

func (t *Table) clip(s string) string {
	if t.MaxColWidth > 0 && lipgloss.Width(s) > t.MaxColWidth {
		r := []rune(s)
		if len(r) > t.MaxColWidth {
			return string(r[:t.MaxColWidth-1]) + "…"
		}
	}
	return s
}

// View renders the table using the provided styles.
func (t *Table) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(t.clip(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if w := lipgloss.Width(t.clip(cell)); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := styles.Bold.Padding(0, 1)
	labelStyle := styles.Muted.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	sepStyle := styles.Muted

	for i, h := range t.Headers {
		sb.WriteString(headerStyle.Width(colWidths[i]).Render(t.clip(h)))
		if i < len(t.Headers)-1 {
			sb.WriteString(sepStyle.Render("|"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(t.Headers) - 1
	for _, w := range colWidths {
		totalWidth += w
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", totalWidth)) + "\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			style := rowStyle
			if i == 0 {
				style = labelStyle
			}
			sb.WriteString(style.Width(colWidths[i]).Render(t.clip(cell)))
			if i < len(row)-1 {
				sb.WriteString(sepStyle.Render("|"))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
