package document

// style.go: the style layers of a paragraph. Each layer is a plain value with
// optional fields; cascading is an explicit fill-from-fallback step, never a
// deep merge of conflicting scalars.

// InlineStyle holds character formatting for a run or a paragraph mark.
type InlineStyle struct {
	Bold      bool `json:"bold"`
	Italic    bool `json:"italic"`
	Underline bool `json:"underline"`
	Strike    bool `json:"strike"`
	// Size is in half-points, so 19 means 9.5pt.
	Size *int `json:"size,omitempty"`
}

// Equal reports whether s and o are structurally identical.
func (s InlineStyle) Equal(o InlineStyle) bool {
	if s.Bold != o.Bold || s.Italic != o.Italic || s.Underline != o.Underline || s.Strike != o.Strike {
		return false
	}
	if s.Size == nil || o.Size == nil {
		return s.Size == nil && o.Size == nil
	}
	return *s.Size == *o.Size
}

// CombineWith overwrites the four flags with other's values and takes other's
// size only when other has one.
func (s *InlineStyle) CombineWith(other InlineStyle) {
	s.Bold = other.Bold
	s.Italic = other.Italic
	s.Underline = other.Underline
	s.Strike = other.Strike
	if other.Size != nil {
		s.Size = Int(*other.Size)
	}
}

// Clone returns a copy that shares no memory with s.
func (s InlineStyle) Clone() InlineStyle {
	c := s
	if s.Size != nil {
		c.Size = Int(*s.Size)
	}
	return c
}

// equalInline compares two optional inline styles; two unset styles are equal.
func equalInline(a, b *InlineStyle) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// NumberingRef places a paragraph in a list.
type NumberingRef struct {
	ListID      *int `json:"list_id,omitempty"`
	IndentLevel *int `json:"indent_level,omitempty"`
}

// ParagraphStyle is either a named style's defaults or a paragraph's direct
// formatting overlay.
type ParagraphStyle struct {
	StyleID         *string       `json:"style_id,omitempty"`
	OutlineLevel    *int          `json:"outline_level,omitempty"`
	Numbering       *NumberingRef `json:"numbering,omitempty"`
	PageBreakBefore *bool         `json:"page_break_before,omitempty"`
	Inline          *InlineStyle  `json:"inline,omitempty"`
}

// Clone returns a deep copy of s.
func (s ParagraphStyle) Clone() ParagraphStyle {
	c := ParagraphStyle{}
	if s.StyleID != nil {
		c.StyleID = String(*s.StyleID)
	}
	if s.OutlineLevel != nil {
		c.OutlineLevel = Int(*s.OutlineLevel)
	}
	if s.PageBreakBefore != nil {
		c.PageBreakBefore = Bool(*s.PageBreakBefore)
	}
	if s.Numbering != nil {
		n := NumberingRef{}
		if s.Numbering.ListID != nil {
			n.ListID = Int(*s.Numbering.ListID)
		}
		if s.Numbering.IndentLevel != nil {
			n.IndentLevel = Int(*s.Numbering.IndentLevel)
		}
		c.Numbering = &n
	}
	if s.Inline != nil {
		in := s.Inline.Clone()
		c.Inline = &in
	}
	return c
}

// CombineWith fills every unset field of s from other. When both sides carry
// inline formatting, s's inline formatting is laid over other's, so the flags
// of s win as a whole and s keeps other's size only if it has none itself.
func (s *ParagraphStyle) CombineWith(other ParagraphStyle) {
	o := other.Clone()
	if s.StyleID == nil {
		s.StyleID = o.StyleID
	}
	if s.OutlineLevel == nil {
		s.OutlineLevel = o.OutlineLevel
	}
	if s.PageBreakBefore == nil {
		s.PageBreakBefore = o.PageBreakBefore
	}
	if s.Numbering == nil {
		s.Numbering = o.Numbering
	}
	switch {
	case s.Inline == nil:
		s.Inline = o.Inline
	case o.Inline != nil:
		merged := *o.Inline
		merged.CombineWith(*s.Inline)
		s.Inline = &merged
	}
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
