package converter

// Shared test helpers for the converter package.

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
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

func assertContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("expected output to contain %q\ngot: %s", want, got)
	}
}

func assertNotEmpty(t *testing.T, got string) {
	t.Helper()
	if strings.TrimSpace(got) == "" {
		t.Error("expected non-empty output, got empty string")
	}
}

// ---- file factories --------------------------------------------------------

// writeTempFile writes content to a temp file with the given name and returns
// its path. The file is cleaned up automatically when the test ends.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writeTempFile: %v", err)
	}
	return path
}

const nsW = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`

// headingStyles declares Heading1..Heading3 as outline levels 0..2.
const headingStyles = `<w:styles ` + nsW + `>` +
	`<w:style w:type="paragraph" w:styleId="Heading1"><w:pPr><w:outlineLvl w:val="0"/></w:pPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading2"><w:pPr><w:outlineLvl w:val="1"/></w:pPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading3"><w:pPr><w:outlineLvl w:val="2"/></w:pPr></w:style>` +
	`</w:styles>`

// bulletNumbering defines list 1 as a bullet list and list 2 as decimal.
const bulletNumbering = `<w:numbering ` + nsW + `>` +
	`<w:abstractNum w:abstractNumId="0"><w:lvl w:ilvl="0"><w:numFmt w:val="bullet"/><w:lvlText w:val="•"/></w:lvl></w:abstractNum>` +
	`<w:abstractNum w:abstractNumId="1"><w:lvl w:ilvl="0"><w:numFmt w:val="decimal"/><w:lvlText w:val="%1."/></w:lvl></w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`<w:num w:numId="2"><w:abstractNumId w:val="1"/></w:num>` +
	`</w:numbering>`

// makeDocx builds a .docx file containing the given OOXML body fragment plus
// the heading styles and list definitions above, and returns its path.
func makeDocx(t *testing.T, bodyXML string) string {
	t.Helper()
	return makeDocxParts(t, map[string]string{
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<w:document ` + nsW + `><w:body>` + bodyXML + `</w:body></w:document>`,
		"word/styles.xml":    headingStyles,
		"word/numbering.xml": bulletNumbering,
	})
}

// makeDocxParts zips the named parts into a .docx file and returns its path.
func makeDocxParts(t *testing.T, parts map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("makeDocx create: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	defer zw.Close()

	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("makeDocx zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("makeDocx write %s: %v", name, err)
		}
	}
	return path
}

// testOptions returns options for format with image export off.
func testOptions(format string) Options {
	return Options{Format: format}
}

// makeXLSX builds a minimal .xlsx file with one sheet and returns its path.
func makeXLSX(t *testing.T, sheet string, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet first so SetCellValue writes to the right name.
	if sheet != "Sheet1" {
		f.SetSheetName("Sheet1", sheet)
	}

	for r, row := range rows {
		for c, val := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			f.SetCellValue(sheet, cell, val)
		}
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("makeXLSX SaveAs: %v", err)
	}
	return path
}

// pptxTestSlide holds the inner <a:p> content of a slide's title and body
// shapes. Empty strings omit the shape.
type pptxTestSlide struct {
	titleXML string
	bodyXML  string
}

const pptxNS = `xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" ` +
	`xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"`

// makePPTX builds a .pptx with one slide per entry and returns its path.
func makePPTX(t *testing.T, slides []pptxTestSlide) string {
	t.Helper()
	trees := make([]string, len(slides))
	for i, s := range slides {
		var sb strings.Builder
		if s.titleXML != "" {
			sb.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="1" name="Title"/><p:cNvSpPr/>` +
				`<p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>` +
				`<p:txBody><a:bodyPr/><a:p>` + s.titleXML + `</a:p></p:txBody></p:sp>`)
		}
		if s.bodyXML != "" {
			sb.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Content"/><p:cNvSpPr/>` +
				`<p:nvPr><p:ph idx="1"/></p:nvPr></p:nvSpPr>` +
				`<p:txBody><a:bodyPr/><a:p>` + s.bodyXML + `</a:p></p:txBody></p:sp>`)
		}
		trees[i] = sb.String()
	}
	return writePPTX(t, trees)
}

// makePPTXRaw builds a .pptx with a single slide whose shape tree is
// spTreeXML. An empty spTreeXML writes no slide at all.
func makePPTXRaw(t *testing.T, spTreeXML string) string {
	t.Helper()
	if spTreeXML == "" {
		return writePPTX(t, nil)
	}
	return writePPTX(t, []string{spTreeXML})
}

func writePPTX(t *testing.T, trees []string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.pptx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("makePPTX create: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	defer zw.Close()

	w, err := zw.Create("ppt/presentation.xml")
	if err != nil {
		t.Fatalf("makePPTX zip entry: %v", err)
	}
	_, _ = w.Write([]byte(`<p:presentation ` + pptxNS + `/>`))

	for i, tree := range trees {
		w, err := zw.Create(fmt.Sprintf("ppt/slides/slide%d.xml", i+1))
		if err != nil {
			t.Fatalf("makePPTX zip entry: %v", err)
		}
		slide := `<?xml version="1.0" encoding="UTF-8"?>` +
			`<p:sld ` + pptxNS + `><p:cSld><p:spTree>` + tree + `</p:spTree></p:cSld></p:sld>`
		if _, err := w.Write([]byte(slide)); err != nil {
			t.Fatalf("makePPTX write: %v", err)
		}
	}
	return path
}
