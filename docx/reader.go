// Package docx loads a DOCX package into a document.Document.
//
// DOCX files are ZIP archives of OOXML parts. The body is read from
// word/document.xml as a token stream so paragraphs and tables keep their
// order; styles, numbering, relationships, metadata and media are read from
// their own parts. Only word/document.xml is required.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/Cortexa-LLC/mcp/src/docxmd/document"
)

// Part names inside the package.
const (
	partDocument  = "word/document.xml"
	partStyles    = "word/styles.xml"
	partNumbering = "word/numbering.xml"
	partRels      = "word/_rels/document.xml.rels"
	partCore      = "docProps/core.xml"
	partApp       = "docProps/app.xml"
)

// relTypeImage is the suffix shared by the image relationship type URIs.
const relTypeImage = "/image"

// ErrNotDocx is returned when the archive has no word/document.xml.
var ErrNotDocx = errors.New("not a docx package: word/document.xml missing")

// Open reads the DOCX file at filePath.
func Open(filePath string) (*document.Document, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat docx: %w", err)
	}
	doc, err := Read(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return doc, nil
}

// Read loads a DOCX package of the given size from r.
func Read(r io.ReaderAt, size int64) (*document.Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	p := &pkg{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		p.files[f.Name] = f
	}
	if p.files[partDocument] == nil {
		return nil, ErrNotDocx
	}
	return p.load()
}

// pkg is an opened package plus the lookup tables built from it.
type pkg struct {
	files map[string]*zip.File
	rels  map[string]relationshipXML
	doc   *document.Document
}

func (p *pkg) load() (*document.Document, error) {
	p.doc = document.New()

	if err := p.loadRelationships(); err != nil {
		return nil, fmt.Errorf("parse relationships: %w", err)
	}
	if err := p.loadStyles(); err != nil {
		return nil, fmt.Errorf("parse styles: %w", err)
	}
	if err := p.loadNumbering(); err != nil {
		return nil, fmt.Errorf("parse numbering: %w", err)
	}
	if err := p.loadMetadata(); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}
	if err := p.loadMedia(); err != nil {
		return nil, fmt.Errorf("read media: %w", err)
	}
	if err := p.loadBody(); err != nil {
		return nil, fmt.Errorf("parse document.xml: %w", err)
	}
	return p.doc, nil
}

// readPart returns the bytes of a part; ok is false when the part is absent.
func (p *pkg) readPart(name string) (data []byte, ok bool, err error) {
	f := p.files[name]
	if f == nil {
		return nil, false, nil
	}
	rc, err := f.Open()
	if err != nil {
		return nil, true, err
	}
	defer rc.Close()
	data, err = io.ReadAll(rc)
	return data, true, err
}

// unmarshalPart decodes an optional part into v. A missing part is not an
// error.
func (p *pkg) unmarshalPart(name string, v any) (bool, error) {
	data, ok, err := p.readPart(name)
	if !ok || err != nil {
		return ok, err
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("%s: %w", name, err)
	}
	return true, nil
}

func (p *pkg) loadRelationships() error {
	var rels relationshipsXML
	p.rels = make(map[string]relationshipXML)
	if _, err := p.unmarshalPart(partRels, &rels); err != nil {
		return err
	}
	for _, r := range rels.Relationships {
		p.rels[r.ID] = r
	}
	return nil
}

// target resolves a relationship id to its target.
func (p *pkg) target(id string) (string, bool) {
	r, ok := p.rels[id]
	if !ok || r.Target == "" {
		return "", false
	}
	return r.Target, true
}

// loadMedia reads the bytes of every internal image relationship, keyed by
// the relationship target. Targets missing from the archive are skipped.
func (p *pkg) loadMedia() error {
	for _, r := range p.rels {
		if !strings.HasSuffix(r.Type, relTypeImage) || strings.EqualFold(r.TargetMode, "External") {
			continue
		}
		data, ok, err := p.readPart(partPath(r.Target))
		if err != nil {
			return fmt.Errorf("%s: %w", r.Target, err)
		}
		if ok {
			p.doc.Images[r.Target] = data
		}
	}
	return nil
}

// partPath maps a target relative to word/document.xml to its archive name.
func partPath(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join("word", target)
}

func (p *pkg) loadMetadata() error {
	var core corePropsXML
	if _, err := p.unmarshalPart(partCore, &core); err != nil {
		return err
	}
	var app appPropsXML
	if _, err := p.unmarshalPart(partApp, &app); err != nil {
		return err
	}
	m := &p.doc.Metadata
	m.Title = nonEmpty(core.Title)
	m.Subject = nonEmpty(core.Subject)
	m.Keywords = nonEmpty(core.Keywords)
	m.Description = nonEmpty(core.Description)
	m.Creator = nonEmpty(core.Creator)
	m.LastEditor = nonEmpty(core.LastModifiedBy)
	m.Company = nonEmpty(app.Company)
	return nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return document.String(s)
}

// loadBody streams the children of <w:body> in order.
func (p *pkg) loadBody() error {
	data, _, err := p.readPart(partDocument)
	if err != nil {
		return err
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	inBody := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if !inBody {
				inBody = t.Name.Local == "body"
				continue
			}
			if err := p.bodyElement(dec, t); err != nil {
				return err
			}
		case xml.EndElement:
			if inBody && t.Name.Local == "body" {
				return nil
			}
		}
	}
}

func (p *pkg) bodyElement(dec *xml.Decoder, t xml.StartElement) error {
	switch t.Name.Local {
	case "p":
		var px paragraphXML
		if err := dec.DecodeElement(&px, &t); err != nil {
			return err
		}
		p.doc.AddParagraph(p.paragraph(&px))
	case "tbl":
		var tx tableXML
		if err := dec.DecodeElement(&tx, &t); err != nil {
			return err
		}
		p.doc.AddTable(p.table(&tx))
	default:
		return dec.Skip()
	}
	return nil
}
