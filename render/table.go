package render

// table.go: Markdown pipe tables. Every column is padded to the width of its
// widest cell, and every emitted table starts with a header row and divider
// even when the source marks no header.

import (
	"strings"
	"unicode/utf8"

	"github.com/Cortexa-LLC/mcp/src/docxmd/document"
)

// cellBreak joins the paragraphs of a multi-paragraph cell.
const cellBreak = "<br/>"

// textRow is a table row whose cells are already rendered to Markdown.
type textRow struct {
	header bool
	cells  []string
}

// table renders t. Cell paragraphs go through the same paragraph rendering as
// body text and share the pass's list counters.
func (r *renderer) table(t *document.Table) string {
	rows := make([]textRow, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			parts := make([]string, len(cell))
			for k := range cell {
				parts[k] = r.paragraph(&cell[k])
			}
			cells[j] = strings.Join(parts, cellBreak)
		}
		rows[i] = textRow{header: row.Header, cells: cells}
	}
	return layoutTable(rows)
}

// layoutTable aligns pre-rendered rows into a pipe table. When the first row
// is not a header, a blank header row and the divider precede it.
func layoutTable(rows []textRow) string {
	if len(rows) == 0 {
		return ""
	}
	widths := columnWidths(rows)

	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	divider := formatRow(widths, dashes)

	var sb strings.Builder
	for i, row := range rows {
		line := formatRow(widths, row.cells)
		if i == 0 {
			if row.header {
				sb.WriteString(line)
				sb.WriteString(divider)
				continue
			}
			sb.WriteString(formatRow(widths, nil))
			sb.WriteString(divider)
		}
		sb.WriteString(line)
	}
	return sb.String()
}

// columnWidths returns the widest cell per column. The column count starts at
// the first row's length and grows when a later row is longer; shorter rows
// contribute nothing to the columns they lack.
func columnWidths(rows []textRow) []int {
	if len(rows) == 0 {
		return nil
	}
	widths := make([]int, len(rows[0].cells))
	for _, row := range rows {
		for i, cell := range row.cells {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// formatRow writes one table line with every cell left-aligned and padded to
// its column width. Missing cells render empty.
func formatRow(widths []int, cells []string) string {
	var sb strings.Builder
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString("| ")
		sb.WriteString(padRight(cell, w))
		sb.WriteByte(' ')
	}
	sb.WriteString("|\n")
	return sb.String()
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
