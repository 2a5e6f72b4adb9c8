package docx

// Shared test helpers for the docx package.

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cortexa-LLC/mcp/src/docxmd/document"
)

const (
	nsW = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`
	nsR = `xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`
)

// ---- assertion helpers -----------------------------------------------------

func assertNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertErr(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}

// ---- fixtures --------------------------------------------------------------

// docxParts describes the optional parts of a fixture package.
type docxParts struct {
	Body      string
	Styles    string
	Numbering string
	Rels      string
	Core      string
	App       string
	Media     map[string][]byte // archive name -> bytes
}

// buildDocx zips the given parts into an in-memory package.
func buildDocx(t *testing.T, parts docxParts) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	write := func(name, content string) {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("buildDocx create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("buildDocx write %s: %v", name, err)
		}
	}

	write(partDocument, `<?xml version="1.0" encoding="UTF-8"?>`+
		`<w:document `+nsW+` `+nsR+`><w:body>`+parts.Body+`</w:body></w:document>`)
	if parts.Styles != "" {
		write(partStyles, `<w:styles `+nsW+`>`+parts.Styles+`</w:styles>`)
	}
	if parts.Numbering != "" {
		write(partNumbering, `<w:numbering `+nsW+`>`+parts.Numbering+`</w:numbering>`)
	}
	if parts.Rels != "" {
		write(partRels, `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`+
			parts.Rels+`</Relationships>`)
	}
	if parts.Core != "" {
		write(partCore, `<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" `+
			`xmlns:dc="http://purl.org/dc/elements/1.1/">`+parts.Core+`</cp:coreProperties>`)
	}
	if parts.App != "" {
		write(partApp, `<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">`+
			parts.App+`</Properties>`)
	}
	for name, data := range parts.Media {
		write(name, string(data))
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("buildDocx close: %v", err)
	}
	return buf.Bytes()
}

// readDocx builds a fixture and loads it.
func readDocx(t *testing.T, parts docxParts) *document.Document {
	t.Helper()
	data := buildDocx(t, parts)
	doc, err := Read(bytes.NewReader(data), int64(len(data)))
	assertNoErr(t, err)
	return doc
}

// writeDocx builds a fixture on disk and returns its path.
func writeDocx(t *testing.T, parts docxParts) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.docx")
	if err := os.WriteFile(path, buildDocx(t, parts), 0o600); err != nil {
		t.Fatalf("writeDocx: %v", err)
	}
	return path
}

// paragraphAt returns body item i as a paragraph.
func paragraphAt(t *testing.T, doc *document.Document, i int) *document.Paragraph {
	t.Helper()
	if i >= len(doc.Content) {
		t.Fatalf("content has %d items, want index %d", len(doc.Content), i)
	}
	p, ok := doc.Content[i].(*document.Paragraph)
	if !ok {
		t.Fatalf("content[%d] = %T, want *document.Paragraph", i, doc.Content[i])
	}
	return p
}
