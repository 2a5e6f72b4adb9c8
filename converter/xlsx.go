package converter

// xlsx.go: XLSX/XLS into the document model using the excelize library.
// Each sheet becomes an outline-level-1 paragraph holding the sheet name,
// rendered as "## name", followed by the sheet's cells as a table.

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Cortexa-LLC/mcp/src/docxmd/document"
)

// sheetOutlineLevel renders sheet names as second-level headings.
const sheetOutlineLevel = 1

func loadXLSX(filePath string) (*document.Document, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", filePath, err)
	}
	defer func() { _ = f.Close() }()

	doc := document.New()
	props, err := f.GetDocProps()
	if err == nil && props != nil {
		doc.Creator = nonEmpty(props.Creator)
		doc.LastEditor = nonEmpty(props.LastModifiedBy)
		doc.Title = nonEmpty(props.Title)
		doc.Description = nonEmpty(props.Description)
		doc.Subject = nonEmpty(props.Subject)
		doc.Keywords = nonEmpty(props.Keywords)
	}

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q in %s: %w", sheet, filePath, err)
		}
		if len(rows) == 0 {
			continue
		}

		heading := textParagraph(sheet, &document.ParagraphStyle{
			OutlineLevel: document.Int(sheetOutlineLevel),
		})
		doc.AddParagraph(&heading)
		doc.AddTable(tableFromRows(rows))
	}
	return doc, nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
