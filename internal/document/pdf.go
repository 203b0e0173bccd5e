package document

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/alnah/go-img2docx/internal/markup"
)

// PDF layout constants, in points.
const (
	pdfFontFamily = "Helvetica"
	pdfMargin     = 54 // 0.75 inch
	pdfLineFactor = 1.4
)

// PDFSink renders blocks onto A4 pages. Runs of one block are written on a
// shared baseline; center/right alignment offsets the whole line by its
// measured width. fpdf accumulates internal errors, so write operations
// here are unchecked and any fault surfaces at Save.
type PDFSink struct {
	pdf *fpdf.Fpdf
	cur *pdfBlock
}

// NewPDFSink creates a single-column A4 portrait document.
func NewPDFSink() *PDFSink {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()
	return &PDFSink{pdf: pdf}
}

// BeginHeading starts a heading block. As with the DOCX sink, heading
// prominence comes from the run point sizes.
func (s *PDFSink) BeginHeading(level int) BlockWriter {
	return s.begin()
}

// BeginParagraph starts a body paragraph.
func (s *PDFSink) BeginParagraph() BlockWriter {
	return s.begin()
}

// begin flushes the previous block and opens a new one. Buffering a whole
// block before writing is what makes alignment offsets possible: the line
// width is only known once every run has arrived.
func (s *PDFSink) begin() *pdfBlock {
	s.flush()
	s.cur = &pdfBlock{}
	return s.cur
}

// Save flushes the last block and writes the PDF to path.
func (s *PDFSink) Save(path string) error {
	s.flush()
	if err := s.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

func (s *PDFSink) flush() {
	b := s.cur
	s.cur = nil
	if b == nil {
		return
	}

	if len(b.runs) == 0 {
		s.pdf.Ln(bodyPointSize * pdfLineFactor)
		return
	}

	lineHeight := 0.0
	lineWidth := 0.0
	for _, r := range b.runs {
		s.pdf.SetFont(pdfFontFamily, r.style, r.size)
		lineWidth += s.pdf.GetStringWidth(r.text)
		if h := r.size * pdfLineFactor; h > lineHeight {
			lineHeight = h
		}
	}

	pageWidth, _ := s.pdf.GetPageSize()
	left, _, right, _ := s.pdf.GetMargins()
	avail := pageWidth - left - right

	x := left
	switch b.align {
	case markup.AlignCenter:
		x = left + (avail-lineWidth)/2
	case markup.AlignRight:
		x = left + avail - lineWidth
	}
	if x < left {
		x = left
	}
	s.pdf.SetX(x)

	for _, r := range b.runs {
		s.pdf.SetFont(pdfFontFamily, r.style, r.size)
		s.pdf.Write(lineHeight, r.text)
	}
	s.pdf.Ln(lineHeight)
}

// pdfBlock buffers one block's alignment and runs until flush.
type pdfBlock struct {
	align markup.Alignment
	runs  []pdfRun
}

type pdfRun struct {
	text  string
	style string // "", "B", "I", or "BI"
	size  float64
}

func (b *pdfBlock) SetAlignment(a markup.Alignment) {
	b.align = a
}

func (b *pdfBlock) AppendRun(text string, bold, italic bool, pointSize float64) {
	style := ""
	if bold {
		style += "B"
	}
	if italic {
		style += "I"
	}
	b.runs = append(b.runs, pdfRun{text: text, style: style, size: pointSize})
}
