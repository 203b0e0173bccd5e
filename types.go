package img2docx

// Input identifies one conversion: a source image and a destination
// document path. The output extension selects the document format
// (".pdf" for PDF, anything else for DOCX).
type Input struct {
	ImagePath  string
	OutputPath string
}

// ConvertResult reports the outcome of a single conversion. Success and
// Message are always set; OutputPath is set only on success. Err holds
// the underlying failure (wrapped in a sentinel) for programmatic
// classification and is nil on success.
type ConvertResult struct {
	Success    bool
	Message    string
	OutputPath string
	Err        error
}
