package document

// StyleRegistry maps a named-style identifier to its paragraph style. It is
// filled once while a document loads and only read afterwards.
type StyleRegistry map[string]ParagraphStyle

// NamedStyle is one named paragraph style as found in a style sheet.
type NamedStyle struct {
	ID    string
	Style ParagraphStyle
}

// NewStyleRegistry builds a registry from named style definitions. A later
// definition with an ID already seen replaces the earlier one; empty IDs are
// skipped.
func NewStyleRegistry(defs []NamedStyle) StyleRegistry {
	reg := make(StyleRegistry, len(defs))
	for _, d := range defs {
		if d.ID == "" {
			continue
		}
		reg[d.ID] = d.Style.Clone()
	}
	return reg
}

// Lookup returns the style registered under id.
func (r StyleRegistry) Lookup(id string) (ParagraphStyle, bool) {
	s, ok := r[id]
	return s, ok
}

// Resolve returns the effective style of p: its own formatting, with unset
// fields filled from the named style it references. A paragraph without
// formatting resolves to an empty style.
func Resolve(p *Paragraph, reg StyleRegistry) ParagraphStyle {
	var style ParagraphStyle
	if p != nil && p.Style != nil {
		style = p.Style.Clone()
	}
	if style.StyleID != nil {
		if named, ok := reg.Lookup(*style.StyleID); ok {
			style.CombineWith(named)
		}
	}
	return style
}

// EffectiveInline returns the formatting a block renders with. A block's own
// inline style wins as a whole over the paragraph's; without one the block
// inherits the paragraph's inline style, and without either it is plain.
func EffectiveInline(block *InlineStyle, para ParagraphStyle) InlineStyle {
	var eff InlineStyle
	if para.Inline != nil {
		eff = para.Inline.Clone()
	}
	if block != nil {
		eff.CombineWith(*block)
	}
	return eff
}
