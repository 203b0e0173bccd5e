package document

import "github.com/alnah/go-img2docx/internal/markup"

// Point sizes applied to runs, by block kind and heading level.
const (
	heading1PointSize = 24
	heading2PointSize = 18
	heading3PointSize = 14
	bodyPointSize     = 11
)

// sizeForHeading maps a heading level to its run point size. Levels
// outside 1-3 fall back to the level-3 size.
func sizeForHeading(level int) float64 {
	switch level {
	case 1:
		return heading1PointSize
	case 2:
		return heading2PointSize
	default:
		return heading3PointSize
	}
}

// Assemble drives sink with blocks in order. No block is skipped or
// reordered: the assembled document's block order equals the input order.
func Assemble(blocks []markup.Block, sink Sink) {
	for _, block := range blocks {
		switch b := block.(type) {
		case markup.ParagraphBreak:
			sink.BeginParagraph()
		case markup.Heading:
			w := sink.BeginHeading(b.Level)
			w.SetAlignment(b.Alignment)
			size := sizeForHeading(b.Level)
			for _, r := range b.Runs {
				w.AppendRun(r.Text, r.Bold, r.Italic, size)
			}
		case markup.Paragraph:
			w := sink.BeginParagraph()
			w.SetAlignment(b.Alignment)
			for _, r := range b.Runs {
				w.AppendRun(r.Text, r.Bold, r.Italic, bodyPointSize)
			}
		}
	}
}
