// Package document materializes parsed markup blocks into styled output
// files. The Sink interface hides the concrete format; DOCX and PDF sinks
// are provided.
package document

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-img2docx/internal/markup"
)

// Sink is the abstract document-writing capability driven by Assemble.
// A Sink instance builds exactly one document and persists it with Save.
type Sink interface {
	// BeginHeading starts a heading block of the given level.
	BeginHeading(level int) BlockWriter
	// BeginParagraph starts a body paragraph. A paragraph with no runs
	// renders as vertical spacing.
	BeginParagraph() BlockWriter
	// Save persists the document to path.
	Save(path string) error
}

// BlockWriter receives alignment and styled runs for one block.
type BlockWriter interface {
	SetAlignment(a markup.Alignment)
	AppendRun(text string, bold, italic bool, pointSize float64)
}

// ForPath picks a sink by output file extension: .pdf selects the PDF
// sink, anything else the DOCX sink.
func ForPath(path string) Sink {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return NewPDFSink()
	}
	return NewDocxSink()
}
