package converter

// pdf.go: PDF text layer into the document model.
//
// Uses github.com/ledongthuc/pdf for parsing. Only the embedded text layer
// is extracted; scanned (image-only) PDFs come out empty. Each page with
// text becomes one paragraph, and pages after the first are flagged with a
// page break.

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Cortexa-LLC/mcp/src/docxmd/document"
)

func loadPDF(filePath string) (*document.Document, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", filePath, err)
	}
	defer func() { _ = f.Close() }()

	doc := document.New()
	fonts := make(map[string]*pdf.Font)

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				f2 := p.Font(name)
				fonts[name] = &f2
			}
		}

		text, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			return nil, fmt.Errorf("read pdf page %d: %w", i, pageErr)
		}
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}
		var style *document.ParagraphStyle
		if len(doc.Content) > 0 {
			style = &document.ParagraphStyle{PageBreakBefore: document.Bool(true)}
		}
		para := textParagraph(trimmed, style)
		doc.AddParagraph(&para)
	}
	return doc, nil
}
