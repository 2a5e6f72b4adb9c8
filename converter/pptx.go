package converter

// pptx.go: PPTX slides into the document model via a streaming OOXML parser.
//
// PPTX files are ZIP archives. Slides live at ppt/slides/slideN.xml and are
// read in numeric order. Each slide is stream-parsed with a state machine
// over shapes, paragraphs, runs and tables. Title placeholders become
// second-level headings, indented paragraphs become bullet items and a:tbl
// tables become document tables. The first item of every slide after the
// first carries a page break.
//
// Key XML namespaces used in PPTX slides:
//   p: presentationml (sp, txBody at shape level)
//   a: drawingml (p, r, t, tbl, tr, tc, rPr, pPr)
//
// Elements are matched on t.Name.Local, so both namespaces work without
// registration.

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Cortexa-LLC/mcp/src/docxmd/document"
	"github.com/Cortexa-LLC/mcp/src/docxmd/render"
)

// pptxSlideRE matches the canonical slide paths inside a PPTX ZIP archive,
// capturing the slide number for numeric sort.
var pptxSlideRE = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

const (
	// slideBulletList is the list id shared by indented slide paragraphs.
	slideBulletList = 1
	// slideTitleLevel renders slide titles as "## ".
	slideTitleLevel = 1
	// lineBreak replaces <a:br>, as the docx provider does for <w:br>.
	lineBreak = "<br/>"
)

func loadPPTX(filePath string) (*document.Document, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, fmt.Errorf("open pptx %s: %w", filePath, err)
	}
	defer func() { _ = zr.Close() }()

	type slideEntry struct {
		num  int
		file *zip.File
	}

	var entries []slideEntry
	for _, f := range zr.File {
		m := pptxSlideRE.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		entries = append(entries, slideEntry{n, f})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no slides found in %s", filePath)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].num < entries[j].num })

	doc := document.New()
	usesBullets := false
	for _, e := range entries {
		rc, openErr := e.file.Open()
		if openErr != nil {
			return nil, fmt.Errorf("open slide %d: %w", e.num, openErr)
		}
		slide, parseErr := parseSlideXML(rc)
		_ = rc.Close()
		if parseErr != nil {
			return nil, fmt.Errorf("parse slide %d: %w", e.num, parseErr)
		}
		usesBullets = usesBullets || slide.bullets
		slide.appendTo(doc)
	}

	if usesBullets {
		doc.Numberings[slideBulletList] = document.NumberingDefinition{
			ListID: slideBulletList,
			Format: document.String(render.FormatBullet),
		}
	}
	return doc, nil
}

// slideContent is one parsed slide: titles first, then body items in order.
type slideContent struct {
	titles  []*document.Paragraph
	body    []document.Content
	bullets bool
}

// appendTo adds the slide to doc. A slide following earlier content starts
// on a new page.
func (s *slideContent) appendTo(doc *document.Document) {
	pageBreak := len(doc.Content) > 0
	items := make([]document.Content, 0, len(s.titles)+len(s.body))
	for _, t := range s.titles {
		items = append(items, t)
	}
	items = append(items, s.body...)

	for _, item := range items {
		switch c := item.(type) {
		case *document.Paragraph:
			if pageBreak {
				if c.Style == nil {
					c.Style = &document.ParagraphStyle{}
				}
				c.Style.PageBreakBefore = document.Bool(true)
				pageBreak = false
			}
			doc.AddParagraph(c)
		case *document.Table:
			doc.AddTable(c)
		}
	}
}

// ---------------------------------------------------------------------------
// Streaming XML state machine
// ---------------------------------------------------------------------------

type slideParser struct {
	stack []string

	// shape-level state
	inShape  bool
	isTitle  bool
	inTxBody bool

	// paragraph-level state
	inPara    bool
	paraLevel int // from <a:pPr lvl="N"/>
	runs      document.Coalescer

	// run-level state
	inRun    bool
	runStyle *document.InlineStyle

	// table-level state
	table  *document.Table
	row    *document.Row
	cell   document.Cell
	inCell bool

	out slideContent
}

func (p *slideParser) push(name string) { p.stack = append(p.stack, name) }
func (p *slideParser) pop() {
	if len(p.stack) > 0 {
		p.stack = p.stack[:len(p.stack)-1]
	}
}
func (p *slideParser) inCtx(name string) bool {
	for _, s := range p.stack {
		if s == name {
			return true
		}
	}
	return false
}

func parseSlideXML(r io.Reader) (*slideContent, error) {
	dec := xml.NewDecoder(r)
	p := &slideParser{}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse slide xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			p.push(t.Name.Local)
			p.handleStart(t)
		case xml.EndElement:
			p.handleEnd(t.Name.Local)
			p.pop()
		case xml.CharData:
			p.handleText(string(t))
		}
	}
	return &p.out, nil
}

func (p *slideParser) handleStart(t xml.StartElement) {
	switch t.Name.Local {
	case "sp":
		p.inShape = true
		p.isTitle = false
	case "ph":
		if p.inShape && p.inCtx("nvPr") {
			typ := attrVal(t, "type")
			if typ == "title" || typ == "ctrTitle" {
				p.isTitle = true
			}
		}
	case "txBody":
		if p.inShape {
			p.inTxBody = true
		}
	case "tbl":
		p.table = &document.Table{}
	case "tr":
		if p.table != nil {
			p.row = &document.Row{Header: len(p.table.Rows) == 0}
		}
	case "tc":
		if p.row != nil {
			p.inCell = true
			p.cell = nil
		}
	case "p":
		if p.inTxBody || p.inCell {
			p.inPara = true
			p.paraLevel = 0
			p.runs.Blocks()
		}
	case "pPr":
		if p.inPara {
			if lvl, err := strconv.Atoi(attrVal(t, "lvl")); err == nil && lvl > 0 {
				p.paraLevel = lvl
			}
		}
	case "r":
		if p.inPara {
			p.inRun = true
			p.runStyle = nil
		}
	case "rPr":
		if p.inRun {
			style := document.InlineStyle{
				Bold:   attrVal(t, "b") == "1",
				Italic: attrVal(t, "i") == "1",
			}
			if style.Bold || style.Italic {
				p.runStyle = &style
			}
		}
	case "br":
		if p.inPara {
			p.runs.AppendText(lineBreak, nil)
		}
	}
}

func (p *slideParser) handleEnd(local string) {
	switch local {
	case "r":
		p.inRun = false
	case "p":
		p.endPara()
	case "tc":
		if p.inCell {
			p.row.Cells = append(p.row.Cells, p.cell)
			p.inCell = false
		}
	case "tr":
		if p.row != nil {
			p.table.Rows = append(p.table.Rows, *p.row)
			p.row = nil
		}
	case "tbl":
		if p.table != nil {
			if len(p.table.Rows) > 0 {
				p.out.body = append(p.out.body, p.table)
			}
			p.table = nil
		}
	case "txBody":
		p.inTxBody = false
		p.inPara = false // safety reset for malformed XML
	case "sp":
		p.inShape = false
		p.isTitle = false
	}
}

func (p *slideParser) endPara() {
	if !p.inPara {
		return
	}
	p.inPara = false
	blocks := p.runs.Blocks()
	if blankBlocks(blocks) {
		return
	}
	para := &document.Paragraph{Blocks: blocks}

	switch {
	case p.inCell:
		p.cell = append(p.cell, *para)
	case p.isTitle:
		para.Style = &document.ParagraphStyle{OutlineLevel: document.Int(slideTitleLevel)}
		p.out.titles = append(p.out.titles, para)
	case p.inTxBody:
		if p.paraLevel > 0 {
			para.Style = &document.ParagraphStyle{Numbering: &document.NumberingRef{
				ListID:      document.Int(slideBulletList),
				IndentLevel: document.Int(p.paraLevel - 1),
			}}
			p.out.bullets = true
		}
		p.out.body = append(p.out.body, para)
	}
}

func (p *slideParser) handleText(text string) {
	if p.inRun && len(p.stack) > 0 && p.stack[len(p.stack)-1] == "t" {
		p.runs.AppendText(text, p.runStyle)
	}
}

// blankBlocks reports whether blocks hold nothing but whitespace text.
func blankBlocks(blocks []document.Block) bool {
	for _, b := range blocks {
		tb, ok := b.(*document.TextBlock)
		if !ok || strings.TrimSpace(tb.Text) != "" {
			return false
		}
	}
	return true
}

func attrVal(t xml.StartElement, localName string) string {
	for _, a := range t.Attr {
		if a.Name.Local == localName {
			return a.Value
		}
	}
	return ""
}
