// Package markup parses the annotated text emitted by the OCR step.
//
// The OCR collaborator is prompted to describe formatting with a small,
// versioned markup: **bold**, *italic*, line prefixes #/##/### for heading
// levels 1-3, line prefixes [CENTER]/[RIGHT] for alignment, and blank lines
// for paragraph breaks. This package turns that flat text into an ordered
// sequence of typed blocks and styled runs. Parsing is total: malformed or
// partial markers degrade to literal text, never to an error.
package markup

// Alignment is the horizontal alignment of a block.
type Alignment int

// Block alignments, in wire-contract order.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the lowercase name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Run is a maximal span of text sharing one bold/italic combination.
// Concatenating the Text of all runs of a line reproduces the line with
// marker delimiters removed.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Block is one structural unit of the output document. Each source line
// maps to exactly one Block: Heading, Paragraph, or ParagraphBreak.
type Block interface {
	isBlock()
}

// ParagraphBreak marks a blank source line (vertical spacing).
type ParagraphBreak struct{}

// Heading is a heading line with level 1-3.
type Heading struct {
	Level     int
	Alignment Alignment
	Runs      []Run
}

// Paragraph is a body-text line.
type Paragraph struct {
	Alignment Alignment
	Runs      []Run
}

func (ParagraphBreak) isBlock() {}
func (Heading) isBlock()        {}
func (Paragraph) isBlock()      {}
