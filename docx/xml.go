package docx

// xml.go: the subset of WordprocessingML the provider reads. Element names are
// matched on their local part, so the w:, r:, wp: and a: prefixes need no
// namespace registration.

import (
	"encoding/xml"
	"io"
	"strings"
)

// valXML is any element whose payload is a single w:val attribute.
type valXML struct {
	Val string `xml:"val,attr"`
}

// onOffXML is a toggle property such as <w:b/> or <w:b w:val="0"/>.
type onOffXML struct {
	Val string `xml:"val,attr"`
}

// on reports whether the toggle is present and not switched off.
func (o *onOffXML) on() bool {
	if o == nil {
		return false
	}
	switch strings.ToLower(o.Val) {
	case "0", "false", "off", "none":
		return false
	}
	return true
}

// rPrXML holds run properties (<w:rPr>).
type rPrXML struct {
	Bold      *onOffXML `xml:"b"`
	Italic    *onOffXML `xml:"i"`
	Emphasis  *onOffXML `xml:"em"`
	Underline *onOffXML `xml:"u"`
	Strike    *onOffXML `xml:"strike"`
	DStrike   *onOffXML `xml:"dstrike"`
	Size      *valXML   `xml:"sz"`
}

// numPrXML places a paragraph in a list (<w:numPr>).
type numPrXML struct {
	ILvl  *valXML `xml:"ilvl"`
	NumID *valXML `xml:"numId"`
}

// pPrXML holds paragraph properties (<w:pPr>).
type pPrXML struct {
	Style           *valXML   `xml:"pStyle"`
	OutlineLvl      *valXML   `xml:"outlineLvl"`
	NumPr           *numPrXML `xml:"numPr"`
	PageBreakBefore *onOffXML `xml:"pageBreakBefore"`
	RPr             *rPrXML   `xml:"rPr"`
}

// blipXML references picture bytes through a relationship id.
type blipXML struct {
	Embed string `xml:"embed,attr"`
}

// docPrXML carries the drawing's non-visual properties.
type docPrXML struct {
	Name  string `xml:"name,attr"`
	Descr string `xml:"descr,attr"`
}

// drawingFrameXML is the shared shape of <wp:inline> and <wp:anchor>.
type drawingFrameXML struct {
	DocPr docPrXML `xml:"docPr"`
	Blip  *blipXML `xml:"graphic>graphicData>pic>blipFill>blip"`
}

// drawingXML is an embedded drawing (<w:drawing>).
type drawingXML struct {
	Inline *drawingFrameXML `xml:"inline"`
	Anchor *drawingFrameXML `xml:"anchor"`
}

func (d *drawingXML) frame() *drawingFrameXML {
	if d.Inline != nil {
		return d.Inline
	}
	return d.Anchor
}

// lineBreak stands in for <w:br> and <w:cr>. A raw newline would end a
// heading or split a table row.
const lineBreak = "<br/>"

// runItem is one piece of run content: text or a drawing.
type runItem struct {
	Text    string
	Drawing *drawingXML
}

// runXML is a text run (<w:r>). Items keep the order of the run's children.
type runXML struct {
	Props *rPrXML
	Items []runItem
}

func (r *runXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return eachChild(d, func(t xml.StartElement) error {
		switch t.Name.Local {
		case "rPr":
			r.Props = &rPrXML{}
			return d.DecodeElement(r.Props, &t)
		case "t":
			var s string
			if err := d.DecodeElement(&s, &t); err != nil {
				return err
			}
			r.Items = append(r.Items, runItem{Text: s})
		case "tab":
			r.Items = append(r.Items, runItem{Text: "\t"})
			return d.Skip()
		case "br", "cr":
			r.Items = append(r.Items, runItem{Text: lineBreak})
			return d.Skip()
		case "drawing":
			var dr drawingXML
			if err := d.DecodeElement(&dr, &t); err != nil {
				return err
			}
			r.Items = append(r.Items, runItem{Drawing: &dr})
		default:
			return d.Skip()
		}
		return nil
	})
}

// hyperlinkXML is a hyperlink (<w:hyperlink>) to a relationship or an anchor.
type hyperlinkXML struct {
	ID     string   `xml:"id,attr"`
	Anchor string   `xml:"anchor,attr"`
	Runs   []runXML `xml:"r"`
}

// bookmarkXML is a bookmark start (<w:bookmarkStart>).
type bookmarkXML struct {
	Name string `xml:"name,attr"`
}

// paragraphItem is one child of a paragraph: a run, a hyperlink or a bookmark.
type paragraphItem struct {
	Run      *runXML
	Link     *hyperlinkXML
	Bookmark *bookmarkXML
}

// paragraphXML is a paragraph (<w:p>). Items keep the order of its children.
type paragraphXML struct {
	Props *pPrXML
	Items []paragraphItem
}

func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return eachChild(d, func(t xml.StartElement) error {
		switch t.Name.Local {
		case "pPr":
			p.Props = &pPrXML{}
			return d.DecodeElement(p.Props, &t)
		case "r":
			r := &runXML{}
			if err := d.DecodeElement(r, &t); err != nil {
				return err
			}
			p.Items = append(p.Items, paragraphItem{Run: r})
		case "hyperlink":
			l := &hyperlinkXML{}
			if err := d.DecodeElement(l, &t); err != nil {
				return err
			}
			p.Items = append(p.Items, paragraphItem{Link: l})
		case "bookmarkStart":
			b := &bookmarkXML{}
			if err := d.DecodeElement(b, &t); err != nil {
				return err
			}
			p.Items = append(p.Items, paragraphItem{Bookmark: b})
		default:
			return d.Skip()
		}
		return nil
	})
}

// rowPropsXML holds table row properties (<w:trPr>).
type rowPropsXML struct {
	Header *onOffXML `xml:"tblHeader"`
}

type cellXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

type rowXML struct {
	Props rowPropsXML `xml:"trPr"`
	Cells []cellXML   `xml:"tc"`
}

// tableXML is a table (<w:tbl>).
type tableXML struct {
	Rows []rowXML `xml:"tr"`
}

// eachChild calls fn for every direct child element of the element whose
// start tag was just read, and returns at its end tag. fn must consume the
// child completely.
func eachChild(d *xml.Decoder, fn func(xml.StartElement) error) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := fn(t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// styleXML is one entry of word/styles.xml.
type styleXML struct {
	Type    string  `xml:"type,attr"`
	StyleID string  `xml:"styleId,attr"`
	PPr     *pPrXML `xml:"pPr"`
	RPr     *rPrXML `xml:"rPr"`
}

type stylesXML struct {
	Styles []styleXML `xml:"style"`
}

type lvlXML struct {
	ILvl    string  `xml:"ilvl,attr"`
	NumFmt  *valXML `xml:"numFmt"`
	LvlText *valXML `xml:"lvlText"`
}

type abstractNumXML struct {
	AbstractNumID string   `xml:"abstractNumId,attr"`
	Levels        []lvlXML `xml:"lvl"`
}

type numXML struct {
	NumID         string `xml:"numId,attr"`
	AbstractNumID valXML `xml:"abstractNumId"`
}

// numberingXML is word/numbering.xml.
type numberingXML struct {
	AbstractNums []abstractNumXML `xml:"abstractNum"`
	Nums         []numXML         `xml:"num"`
}

type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

type relationshipsXML struct {
	Relationships []relationshipXML `xml:"Relationship"`
}

// corePropsXML is docProps/core.xml.
type corePropsXML struct {
	Title          string `xml:"title"`
	Subject        string `xml:"subject"`
	Creator        string `xml:"creator"`
	Keywords       string `xml:"keywords"`
	Description    string `xml:"description"`
	LastModifiedBy string `xml:"lastModifiedBy"`
}

// appPropsXML is docProps/app.xml.
type appPropsXML struct {
	Company string `xml:"Company"`
}
