// Package render turns a document.Document into Markdown or JSON text.
//
// Each call to Markdown or JSON is one render pass with its own list
// counters; the Document is only read, so concurrent passes over the same
// Document are safe.
package render

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Cortexa-LLC/mcp/src/docxmd/document"
)

// maxHeading is the deepest Markdown heading level.
const maxHeading = 6

// Options controls a Markdown render pass.
type Options struct {
	// ExportImages writes every embedded image below ImageDir after the text
	// has been rendered.
	ExportImages bool
	// ImageDir is the export root. Empty means the working directory.
	ImageDir string
	// Logger receives per-image export failures. Nil means slog.Default().
	Logger *slog.Logger
}

type renderer struct {
	doc     *document.Document
	numbers *Numberer
}

// Markdown renders doc. The title, when set, becomes a level-one heading;
// body items follow in document order separated by blank lines.
func Markdown(doc *document.Document, opts Options) string {
	r := &renderer{doc: doc, numbers: NewNumberer()}

	var sb strings.Builder
	if doc.Title != nil {
		fmt.Fprintf(&sb, "# %s\n\n", *doc.Title)
	}
	for i, item := range doc.Content {
		switch c := item.(type) {
		case *document.Paragraph:
			sb.WriteString(r.paragraph(c))
			sb.WriteByte('\n')
		case *document.Table:
			sb.WriteString(r.table(c))
		default:
			panic(fmt.Sprintf("render: unknown content %T", item))
		}
		if i != len(doc.Content)-1 {
			sb.WriteByte('\n')
		}
	}

	if opts.ExportImages {
		logger := opts.Logger
		if logger == nil {
			logger = slog.Default()
		}
		ExportImages(doc, opts.ImageDir, logger)
	}
	return sb.String()
}

// paragraph renders one paragraph without a trailing newline: heading prefix,
// list marker, then each block with its inline markup.
func (r *renderer) paragraph(p *document.Paragraph) string {
	style := document.Resolve(p, r.doc.Styles)

	var sb strings.Builder
	if style.OutlineLevel != nil {
		level := *style.OutlineLevel + 1
		if level < 1 || level > maxHeading {
			level = maxHeading
		}
		sb.WriteString(strings.Repeat("#", level))
		sb.WriteByte(' ')
	}
	if style.Numbering != nil {
		sb.WriteString(r.numbers.Next(*style.Numbering, r.doc.Numberings))
	}
	for _, b := range p.Blocks {
		text, own := blockMarkdown(b)
		sb.WriteString(emphasize(text, document.EffectiveInline(own, style)))
	}
	return sb.String()
}

// blockMarkdown returns the bare Markdown of a block and the block's own
// inline style, if it has one.
func blockMarkdown(b document.Block) (string, *document.InlineStyle) {
	switch v := b.(type) {
	case *document.TextBlock:
		return v.Text, v.Style
	case *document.ImageBlock:
		return fmt.Sprintf("![%s](./%s)", v.Alt, v.Target), nil
	case *document.LinkBlock:
		return fmt.Sprintf("[%s](%s)", v.Label, v.Target), nil
	case *document.BookmarkBlock:
		return fmt.Sprintf(`<a name="%s"></a>`, v.Name), nil
	default:
		panic(fmt.Sprintf("render: unknown block %T", b))
	}
}

// emphasize wraps s in bold, italic, underline and strike markers, in that
// order, each wrapping the result of the previous one.
func emphasize(s string, style document.InlineStyle) string {
	if style.Bold {
		s = "**" + s + "**"
	}
	if style.Italic {
		s = "*" + s + "*"
	}
	if style.Underline {
		s = "__" + s + "__"
	}
	if style.Strike {
		s = "~~" + s + "~~"
	}
	return s
}
