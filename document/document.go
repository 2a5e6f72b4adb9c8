// Package document holds the in-memory model of a word-processing document
// together with the style cascade and run coalescing that operate on it.
//
// A Document is built once by a provider (see package docx) and is read-only
// while it is rendered, so one Document may be rendered by several goroutines
// at the same time.
package document

// Metadata carries the descriptive document properties. Unset fields are nil.
type Metadata struct {
	Creator     *string `json:"creator,omitempty"`
	LastEditor  *string `json:"last_editor,omitempty"`
	Company     *string `json:"company,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Subject     *string `json:"subject,omitempty"`
	Keywords    *string `json:"keywords,omitempty"`
}

// NumberingDefinition describes a list. Only the first level of a multi-level
// definition is kept.
type NumberingDefinition struct {
	ListID    int     `json:"list_id"`
	Format    *string `json:"format,omitempty"`
	LevelText *string `json:"level_text,omitempty"`
}

// Paragraph is a sequence of blocks with optional direct formatting.
type Paragraph struct {
	Style  *ParagraphStyle
	Blocks []Block
}

// Cell is the ordered paragraphs of one table cell.
type Cell []Paragraph

// Row is one table row.
type Row struct {
	Header bool
	Cells  []Cell
}

// Table is an ordered list of rows. Rows may have different lengths.
type Table struct {
	Rows []Row
}

// Content is a top-level body item: *Paragraph or *Table.
type Content interface {
	isContent()
}

func (*Paragraph) isContent() {}
func (*Table) isContent()     {}

// Document is a fully loaded word-processing document.
type Document struct {
	Metadata
	Content    []Content
	Styles     StyleRegistry
	Numberings map[int]NumberingDefinition
	// Images maps a relationship target path, such as "media/image1.png",
	// to the picture bytes.
	Images map[string][]byte
}

// New returns an empty document with its lookup tables allocated.
func New() *Document {
	return &Document{
		Styles:     StyleRegistry{},
		Numberings: map[int]NumberingDefinition{},
		Images:     map[string][]byte{},
	}
}

// AddParagraph appends p to the body. Paragraphs without blocks are dropped;
// the return value reports whether p was kept.
func (d *Document) AddParagraph(p *Paragraph) bool {
	if p == nil || len(p.Blocks) == 0 {
		return false
	}
	d.Content = append(d.Content, p)
	return true
}

// AddTable appends t to the body.
func (d *Document) AddTable(t *Table) {
	if t == nil {
		return
	}
	d.Content = append(d.Content, t)
}

// Numbering returns the definition for a list id.
func (d *Document) Numbering(id int) (NumberingDefinition, bool) {
	n, ok := d.Numberings[id]
	return n, ok
}
