package converter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"

	"github.com/Cortexa-LLC/mcp/src/docxmd/config"
	"github.com/Cortexa-LLC/mcp/src/docxmd/document"
	"github.com/Cortexa-LLC/mcp/src/docxmd/docx"
	"github.com/Cortexa-LLC/mcp/src/docxmd/render"
)

// loader builds a document model from a file on disk.
type loader func(filePath string) (*document.Document, error)

// loaders are the formats that go through the document model and can
// therefore be rendered as Markdown or JSON.
var loaders = map[string]loader{
	".docx": docx.Open,
	".xlsx": loadXLSX,
	".xls":  loadXLSX,
	".csv":  loadCSV,
	".pdf":  loadPDF,
	".pptx": loadPPTX,
}

// htmlExts are converted straight to Markdown.
var htmlExts = map[string]bool{
	".html": true,
	".htm":  true,
}

// formatConverter converts files using pure Go libraries.
type formatConverter struct {
	htmlConverter *md.Converter
}

func newFormatConverter() *formatConverter {
	return &formatConverter{
		htmlConverter: md.NewConverter("", true, nil),
	}
}

// CanConvert returns true when the file extension is handled natively.
func (c *formatConverter) CanConvert(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	return loaders[ext] != nil || htmlExts[ext]
}

// SupportedFormats returns supported extensions without the leading dot.
func (c *formatConverter) SupportedFormats() []string {
	out := make([]string, 0, len(loaders)+len(htmlExts))
	for ext := range loaders {
		out = append(out, strings.TrimPrefix(ext, "."))
	}
	for ext := range htmlExts {
		out = append(out, strings.TrimPrefix(ext, "."))
	}
	return out
}

// ConvertFile reads filePath and renders it in opts.Format.
func (c *formatConverter) ConvertFile(filePath string, opts Options) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	if htmlExts[ext] {
		if opts.Format != config.FormatMarkdown {
			return "", fmt.Errorf("%w: %s output for %s", ErrUnsupportedFormat, opts.Format, ext)
		}
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return c.convertHTML(string(data))
	}

	load := loaders[ext]
	if load == nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	doc, err := load(filePath)
	if err != nil {
		return "", err
	}
	return renderDocument(doc, opts)
}

// renderDocument writes doc in the requested output format.
func renderDocument(doc *document.Document, opts Options) (string, error) {
	switch opts.Format {
	case config.FormatJSON:
		return render.JSON(doc, false)
	case config.FormatPrettyJSON:
		return render.JSON(doc, true)
	default:
		return render.Markdown(doc, render.Options{
			ExportImages: opts.ExportImages,
			ImageDir:     opts.ImageDir,
			Logger:       opts.Logger,
		}), nil
	}
}

// --- format converters -------------------------------------------------------

func (c *formatConverter) convertHTML(html string) (string, error) {
	result, err := c.htmlConverter.ConvertString(html)
	if err != nil {
		return fmt.Sprintf("```html\n%s\n```", html), nil
	}
	return result, nil
}

// loadCSV reads a CSV file into a single table whose first record is the
// header row.
func loadCSV(filePath string) (*document.Document, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", filePath, err)
	}

	doc := document.New()
	if len(records) > 0 {
		doc.AddTable(tableFromRows(records))
	}
	return doc, nil
}
