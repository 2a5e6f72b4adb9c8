package render

import (
	"encoding/json"
	"fmt"

	"github.com/Cortexa-LLC/mcp/src/docxmd/document"
)

type jsonDocument struct {
	document.Metadata
	Content    []jsonContent                        `json:"content"`
	Styles     map[string]document.ParagraphStyle   `json:"styles"`
	Numberings map[int]document.NumberingDefinition `json:"numberings"`
	Images     map[string]string                    `json:"images"`
}

type jsonContent struct {
	Type      string         `json:"type"`
	Paragraph *jsonParagraph `json:"paragraph,omitempty"`
	Rows      []jsonRow      `json:"rows,omitempty"`
}

type jsonParagraph struct {
	Style  *document.ParagraphStyle `json:"style,omitempty"`
	Blocks []jsonBlock              `json:"blocks"`
}

type jsonRow struct {
	Header bool              `json:"header"`
	Cells  [][]jsonParagraph `json:"cells"`
}

type jsonBlock struct {
	Type   string                `json:"type"`
	Text   string                `json:"text,omitempty"`
	Style  *document.InlineStyle `json:"style,omitempty"`
	Alt    string                `json:"alt,omitempty"`
	Target string                `json:"target,omitempty"`
	Label  string                `json:"label,omitempty"`
	Name   string                `json:"name,omitempty"`
}

// JSON serializes doc structurally. Images are embedded as data URIs.
func JSON(doc *document.Document, pretty bool) (string, error) {
	out := jsonDocument{
		Metadata:   doc.Metadata,
		Content:    make([]jsonContent, 0, len(doc.Content)),
		Styles:     doc.Styles,
		Numberings: doc.Numberings,
		Images:     make(map[string]string, len(doc.Images)),
	}
	for target, data := range doc.Images {
		out.Images[target] = DataURI(target, data)
	}
	for _, item := range doc.Content {
		switch c := item.(type) {
		case *document.Paragraph:
			p := toJSONParagraph(c)
			out.Content = append(out.Content, jsonContent{Type: "paragraph", Paragraph: &p})
		case *document.Table:
			out.Content = append(out.Content, jsonContent{Type: "table", Rows: toJSONRows(c)})
		default:
			return "", fmt.Errorf("json: unknown content %T", item)
		}
	}

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	return string(data), nil
}

func toJSONRows(t *document.Table) []jsonRow {
	rows := make([]jsonRow, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([][]jsonParagraph, len(row.Cells))
		for j, cell := range row.Cells {
			paras := make([]jsonParagraph, len(cell))
			for k := range cell {
				paras[k] = toJSONParagraph(&cell[k])
			}
			cells[j] = paras
		}
		rows[i] = jsonRow{Header: row.Header, Cells: cells}
	}
	return rows
}

func toJSONParagraph(p *document.Paragraph) jsonParagraph {
	out := jsonParagraph{Style: p.Style, Blocks: make([]jsonBlock, 0, len(p.Blocks))}
	for _, b := range p.Blocks {
		switch v := b.(type) {
		case *document.TextBlock:
			out.Blocks = append(out.Blocks, jsonBlock{Type: "text", Text: v.Text, Style: v.Style})
		case *document.ImageBlock:
			out.Blocks = append(out.Blocks, jsonBlock{Type: "image", Alt: v.Alt, Target: v.Target})
		case *document.LinkBlock:
			out.Blocks = append(out.Blocks, jsonBlock{Type: "link", Label: v.Label, Target: v.Target})
		case *document.BookmarkBlock:
			out.Blocks = append(out.Blocks, jsonBlock{Type: "bookmark", Name: v.Name})
		}
	}
	return out
}
