package docx

// build.go: conversion of decoded XML into the document model.

import (
	"strconv"
	"strings"

	"github.com/Cortexa-LLC/mcp/src/docxmd/document"
)

// inlineStyle converts run properties. Nil properties give a nil style.
func inlineStyle(rp *rPrXML) *document.InlineStyle {
	if rp == nil {
		return nil
	}
	s := &document.InlineStyle{
		Bold:      rp.Bold.on(),
		Italic:    rp.Italic.on() || rp.Emphasis.on(),
		Underline: rp.Underline.on(),
		Strike:    rp.Strike.on() || rp.DStrike.on(),
	}
	if rp.Size != nil {
		if n, err := strconv.Atoi(rp.Size.Val); err == nil {
			s.Size = document.Int(n)
		}
	}
	return s
}

// paragraphStyle converts paragraph properties. Nil properties give a nil
// style.
func paragraphStyle(pp *pPrXML) *document.ParagraphStyle {
	if pp == nil {
		return nil
	}
	s := &document.ParagraphStyle{Inline: inlineStyle(pp.RPr)}
	if pp.Style != nil && pp.Style.Val != "" {
		s.StyleID = document.String(pp.Style.Val)
	}
	if pp.OutlineLvl != nil {
		if n, err := strconv.Atoi(pp.OutlineLvl.Val); err == nil {
			s.OutlineLevel = document.Int(n)
		}
	}
	if pp.PageBreakBefore != nil {
		s.PageBreakBefore = document.Bool(pp.PageBreakBefore.on())
	}
	s.Numbering = numberingRef(pp.NumPr)
	return s
}

// numberingRef converts list membership. A numId of 0 yields an empty ref,
// which keeps a list inherited from the named style from applying.
func numberingRef(np *numPrXML) *document.NumberingRef {
	if np == nil {
		return nil
	}
	ref := &document.NumberingRef{}
	if np.NumID != nil {
		n, err := strconv.Atoi(np.NumID.Val)
		if err == nil && n == 0 {
			return ref
		}
		if err == nil {
			ref.ListID = document.Int(n)
		}
	}
	if np.ILvl != nil {
		if n, err := strconv.Atoi(np.ILvl.Val); err == nil {
			ref.IndentLevel = document.Int(n)
		}
	}
	if ref.ListID == nil && ref.IndentLevel == nil {
		return nil
	}
	return ref
}

// paragraph converts a decoded paragraph, coalescing its runs.
func (p *pkg) paragraph(px *paragraphXML) *document.Paragraph {
	var c document.Coalescer
	for _, item := range px.Items {
		switch {
		case item.Run != nil:
			p.appendRun(&c, item.Run)
		case item.Link != nil:
			p.appendLink(&c, item.Link)
		case item.Bookmark != nil:
			if item.Bookmark.Name != "" {
				c.AppendBookmark(item.Bookmark.Name)
			}
		}
	}
	return &document.Paragraph{Style: paragraphStyle(px.Props), Blocks: c.Blocks()}
}

func (p *pkg) appendRun(c *document.Coalescer, r *runXML) {
	style := inlineStyle(r.Props)
	for _, item := range r.Items {
		if item.Drawing == nil {
			c.AppendText(item.Text, style)
			continue
		}
		frame := item.Drawing.frame()
		if frame == nil || frame.Blip == nil {
			continue
		}
		if target, ok := p.target(frame.Blip.Embed); ok {
			c.AppendImage(frame.DocPr.Descr, target)
		}
	}
}

// appendLink adds a hyperlink. An anchor takes precedence over a relationship
// target; links without a label or target are dropped.
func (p *pkg) appendLink(c *document.Coalescer, l *hyperlinkXML) {
	var label strings.Builder
	for _, r := range l.Runs {
		for _, item := range r.Items {
			label.WriteString(item.Text)
		}
	}
	target := ""
	switch {
	case l.Anchor != "":
		target = "#" + l.Anchor
	case l.ID != "":
		target, _ = p.target(l.ID)
	}
	if label.Len() == 0 || target == "" {
		return
	}
	c.AppendLink(label.String(), target)
}

// table converts a decoded table. Cells without paragraphs are dropped.
func (p *pkg) table(tx *tableXML) *document.Table {
	t := &document.Table{Rows: make([]document.Row, 0, len(tx.Rows))}
	for _, rx := range tx.Rows {
		row := document.Row{Header: rx.Props.Header.on()}
		for _, cx := range rx.Cells {
			if len(cx.Paragraphs) == 0 {
				continue
			}
			cell := make(document.Cell, len(cx.Paragraphs))
			for i := range cx.Paragraphs {
				cell[i] = *p.paragraph(&cx.Paragraphs[i])
			}
			row.Cells = append(row.Cells, cell)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// loadStyles registers every paragraph style. Character formatting declared
// on the style itself is preferred over the style's paragraph-mark formatting.
func (p *pkg) loadStyles() error {
	var sx stylesXML
	if _, err := p.unmarshalPart(partStyles, &sx); err != nil {
		return err
	}
	var defs []document.NamedStyle
	for _, st := range sx.Styles {
		if st.Type != "paragraph" {
			continue
		}
		ps := paragraphStyle(st.PPr)
		if ps == nil {
			ps = &document.ParagraphStyle{}
		}
		if in := inlineStyle(st.RPr); in != nil {
			ps.Inline = in
		}
		defs = append(defs, document.NamedStyle{ID: st.StyleID, Style: *ps})
	}
	p.doc.Styles = document.NewStyleRegistry(defs)
	return nil
}

// loadNumbering keeps the first level of the abstract definition behind each
// list instance.
func (p *pkg) loadNumbering() error {
	var nx numberingXML
	if _, err := p.unmarshalPart(partNumbering, &nx); err != nil {
		return err
	}
	abstract := make(map[string]*abstractNumXML, len(nx.AbstractNums))
	for i := range nx.AbstractNums {
		abstract[nx.AbstractNums[i].AbstractNumID] = &nx.AbstractNums[i]
	}
	for _, num := range nx.Nums {
		id, err := strconv.Atoi(num.NumID)
		if err != nil {
			continue
		}
		an := abstract[num.AbstractNumID.Val]
		if an == nil || len(an.Levels) == 0 {
			continue
		}
		lvl := an.Levels[0]
		def := document.NumberingDefinition{ListID: id}
		if lvl.NumFmt != nil {
			def.Format = document.String(lvl.NumFmt.Val)
		}
		if lvl.LvlText != nil {
			def.LevelText = document.String(lvl.LvlText.Val)
		}
		p.doc.Numberings[id] = def
	}
	return nil
}
