package document

import (
	"fmt"
	"os"
	"strconv"

	docx "github.com/fumiama/go-docx"

	"github.com/alnah/go-img2docx/internal/markup"
)

// DocxSink writes an OOXML word-processing document.
type DocxSink struct {
	doc *docx.Docx
}

// NewDocxSink creates an empty document with the default theme.
func NewDocxSink() *DocxSink {
	return &DocxSink{doc: docx.New().WithDefaultTheme()}
}

// BeginHeading starts a heading block. Heading prominence comes from the
// run point sizes chosen by the assembler, so headings and paragraphs map
// to the same paragraph primitive here.
func (s *DocxSink) BeginHeading(level int) BlockWriter {
	return &docxBlock{para: s.doc.AddParagraph()}
}

// BeginParagraph starts a body paragraph.
func (s *DocxSink) BeginParagraph() BlockWriter {
	return &docxBlock{para: s.doc.AddParagraph()}
}

// Save writes the document to path.
func (s *DocxSink) Save(path string) error {
	f, err := os.Create(path) // #nosec G304 -- output path is user-provided
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if _, err := s.doc.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing document: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}

// docxBlock writes runs into one paragraph.
type docxBlock struct {
	para *docx.Paragraph
}

func (b *docxBlock) SetAlignment(a markup.Alignment) {
	b.para.Justification(a.String())
}

func (b *docxBlock) AppendRun(text string, bold, italic bool, pointSize float64) {
	run := b.para.AddText(text)
	// OOXML run sizes are half-points.
	run.Size(strconv.Itoa(int(pointSize * 2)))
	if bold {
		run.Bold()
	}
	if italic {
		run.Italic()
	}
}
