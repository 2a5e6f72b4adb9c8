package render

// numbering.go: list markers. Counters live on a Numberer created for one
// render pass, so rendering a document twice yields the same markers.

import (
	"strconv"
	"strings"

	"github.com/Cortexa-LLC/mcp/src/docxmd/document"
)

// Number format tokens as they appear in a numbering definition.
const (
	FormatUpperRoman  = "upperRoman"
	FormatLowerRoman  = "lowerRoman"
	FormatUpperLetter = "upperLetter"
	FormatLowerLetter = "lowerLetter"
	FormatBullet      = "bullet"
	FormatDecimal     = "decimal"
)

const listIndent = "    "

// Numberer hands out list markers in document order. Every list id has a
// single counter regardless of nesting level.
type Numberer struct {
	counters map[int]int
}

// NewNumberer returns a Numberer with all counters at zero.
func NewNumberer() *Numberer {
	return &Numberer{counters: make(map[int]int)}
}

// Next returns the prefix for a list paragraph: indentation for nested levels
// followed by the marker and a space. A reference without a list id yields
// the indentation only. Lists without a definition are numbered in decimal.
func (n *Numberer) Next(ref document.NumberingRef, defs map[int]document.NumberingDefinition) string {
	var sb strings.Builder
	if ref.IndentLevel != nil && *ref.IndentLevel > 0 {
		sb.WriteString(strings.Repeat(listIndent, *ref.IndentLevel))
	}
	if ref.ListID == nil {
		return sb.String()
	}

	id := *ref.ListID
	def := defs[id]
	count := n.counters[id]
	n.counters[id] = count + 1

	sb.WriteString(marker(def, count))
	sb.WriteByte(' ')
	return sb.String()
}

// marker renders the zero-based counter value count in def's format. Roman
// formats are approximated by a single letter offset from I or i.
func marker(def document.NumberingDefinition, count int) string {
	format := ""
	if def.Format != nil {
		format = *def.Format
	}
	switch format {
	case FormatUpperRoman:
		return letter('I', count)
	case FormatLowerRoman:
		return letter('i', count)
	case FormatUpperLetter:
		return letter('A', count)
	case FormatLowerLetter:
		return letter('a', count)
	case FormatBullet:
		if def.LevelText != nil && strings.TrimSpace(*def.LevelText) == "" {
			return " "
		}
		return "-"
	default:
		return strconv.Itoa(count+1) + "."
	}
}

// letter offsets base by count. The sum wraps within a byte and is read as a
// Latin-1 code point.
func letter(base byte, count int) string {
	return string(rune(base+byte(count))) + "."
}
