package document

// Block is one renderable unit inside a paragraph. The set of block kinds is
// closed: TextBlock, ImageBlock, LinkBlock and BookmarkBlock.
type Block interface {
	isBlock()
}

// TextBlock is a span of text sharing one inline style. A nil Style means the
// run carried no formatting of its own.
type TextBlock struct {
	Text  string
	Style *InlineStyle
}

// ImageBlock references an embedded picture by its package target path.
type ImageBlock struct {
	Alt    string
	Target string
}

// LinkBlock is a hyperlink to an external target or an internal "#anchor".
type LinkBlock struct {
	Label  string
	Target string
}

// BookmarkBlock marks a named anchor inside the document.
type BookmarkBlock struct {
	Name string
}

func (*TextBlock) isBlock()     {}
func (*ImageBlock) isBlock()    {}
func (*LinkBlock) isBlock()     {}
func (*BookmarkBlock) isBlock() {}

// Coalescer collects the blocks of one paragraph in order, merging adjacent
// text fragments whose inline styles are identical.
type Coalescer struct {
	blocks []Block
}

// AppendText adds text with the given run style. It extends the previous
// block when that block is text with an equal style.
func (c *Coalescer) AppendText(text string, style *InlineStyle) {
	if n := len(c.blocks); n > 0 {
		if prev, ok := c.blocks[n-1].(*TextBlock); ok && equalInline(prev.Style, style) {
			prev.Text += text
			return
		}
	}
	var own *InlineStyle
	if style != nil {
		s := style.Clone()
		own = &s
	}
	c.blocks = append(c.blocks, &TextBlock{Text: text, Style: own})
}

// AppendImage adds a picture. Text never merges across it.
func (c *Coalescer) AppendImage(alt, target string) {
	c.blocks = append(c.blocks, &ImageBlock{Alt: alt, Target: target})
}

// AppendLink adds a hyperlink.
func (c *Coalescer) AppendLink(label, target string) {
	c.blocks = append(c.blocks, &LinkBlock{Label: label, Target: target})
}

// AppendBookmark adds a named anchor.
func (c *Coalescer) AppendBookmark(name string) {
	c.blocks = append(c.blocks, &BookmarkBlock{Name: name})
}

// Len returns the number of blocks collected so far.
func (c *Coalescer) Len() int { return len(c.blocks) }

// Blocks returns the collected blocks and resets the coalescer.
func (c *Coalescer) Blocks() []Block {
	b := c.blocks
	c.blocks = nil
	return b
}
