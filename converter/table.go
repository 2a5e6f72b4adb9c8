package converter

// table.go: turns the string grids read from spreadsheets and CSV files into
// document tables, so they are laid out by the same renderer as DOCX tables.

import (
	"strings"

	"github.com/Cortexa-LLC/mcp/src/docxmd/document"
)

// tableFromRows converts a [][]string into a table whose first row is the
// header. Pipes in cell values are escaped; empty values become empty cells.
func tableFromRows(rows [][]string) *document.Table {
	t := &document.Table{Rows: make([]document.Row, 0, len(rows))}
	for i, raw := range rows {
		row := document.Row{Header: i == 0, Cells: make([]document.Cell, len(raw))}
		for j, value := range raw {
			row.Cells[j] = textCell(value)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func textCell(value string) document.Cell {
	if value == "" {
		return nil
	}
	return document.Cell{textParagraph(escapePipes(value), nil)}
}

// textParagraph builds a single-run paragraph.
func textParagraph(text string, style *document.ParagraphStyle) document.Paragraph {
	return document.Paragraph{
		Style:  style,
		Blocks: []document.Block{&document.TextBlock{Text: text}},
	}
}

// escapePipes replaces | characters in a cell value so they do not break the
// Markdown table syntax.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
