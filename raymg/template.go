package raymg

import "strings"

const (
	templateSpan = 7
	templateSize = 2*templateSpan + 1
)

// Template marks the relative displacements a piece kind can make on an open
// board, ignoring every other piece.
//
// Rows run from Δrank +7 (row 0) down to Δrank -7 (row 14). Within a row the
// most significant of the 15 bits is Δfile -7 and bit 0 is Δfile +7, so the
// literals below read like a board seen from White's side with the piece at
// the center.
type Template [templateSize]uint16

// White templates, indexed by Kind.index().
var baseTemplates = [6]Template{
	// pawn
	{
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000010000000,
		0b000000010000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
	},
	// knight
	{
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000101000000,
		0b000001000100000,
		0b000000000000000,
		0b000001000100000,
		0b000000101000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
	},
	// bishop
	{
		0b100000000000001,
		0b010000000000010,
		0b001000000000100,
		0b000100000001000,
		0b000010000010000,
		0b000001000100000,
		0b000000101000000,
		0b000000000000000,
		0b000000101000000,
		0b000001000100000,
		0b000010000010000,
		0b000100000001000,
		0b001000000000100,
		0b010000000000010,
		0b100000000000001,
	},
	// rook
	{
		0b000000010000000,
		0b000000010000000,
		0b000000010000000,
		0b000000010000000,
		0b000000010000000,
		0b000000010000000,
		0b000000010000000,
		0b111111101111111,
		0b000000010000000,
		0b000000010000000,
		0b000000010000000,
		0b000000010000000,
		0b000000010000000,
		0b000000010000000,
		0b000000010000000,
	},
	// queen
	{
		0b100000010000001,
		0b010000010000010,
		0b001000010000100,
		0b000100010001000,
		0b000010010010000,
		0b000001010100000,
		0b000000111000000,
		0b111111101111111,
		0b000000111000000,
		0b000001010100000,
		0b000010010010000,
		0b000100010001000,
		0b001000010000100,
		0b010000010000010,
		0b100000010000001,
	},
	// king
	{
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000111000000,
		0b000000101000000,
		0b000000111000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
		0b000000000000000,
	},
}

// Black templates, mirrored from baseTemplates.
var flippedTemplates [6]Template

func init() {
	for i, t := range baseTemplates {
		flippedTemplates[i] = t.Flip()
	}
}

// TemplateFor returns the template for kind as played by color.
// It returns the zero Template for NoKind.
func TemplateFor(kind Kind, color Color) Template {
	if !kind.Valid() {
		return Template{}
	}
	if color == Black {
		return flippedTemplates[kind.index()]
	}
	return baseTemplates[kind.index()]
}

// Flip returns the vertical mirror of t (rank axis reversed).
func (t Template) Flip() Template {
	var out Template
	for i := range t {
		out[templateSize-1-i] = t[i]
	}
	return out
}

// At reports whether displacement (df, dr) is marked.
func (t Template) At(df, dr int) bool {
	if abs(df) > templateSpan || abs(dr) > templateSpan {
		return false
	}
	row := t[templateSpan-dr]
	return row>>uint(templateSpan-df)&1 != 0
}

// Count returns the number of marked displacements.
func (t Template) Count() int {
	n := 0
	for dr := -templateSpan; dr <= templateSpan; dr++ {
		for df := -templateSpan; df <= templateSpan; df++ {
			if t.At(df, dr) {
				n++
			}
		}
	}
	return n
}

func (t Template) String() string {
	var sb strings.Builder
	for _, row := range t {
		for bit := templateSize - 1; bit >= 0; bit-- {
			if row>>uint(bit)&1 != 0 {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
