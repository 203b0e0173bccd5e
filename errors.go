package img2docx

import "errors"

// Sentinel errors for conversion operations. Convert never returns these
// directly; they are carried in ConvertResult.Err so callers can classify
// failures with errors.Is.
var (
	ErrEmptyImagePath  = errors.New("image path cannot be empty")
	ErrEmptyOutputPath = errors.New("output path cannot be empty")
	ErrMissingAPIKey   = errors.New("API key cannot be empty")
	ErrImageDecode     = errors.New("unsupported or corrupt image")
	ErrPreprocess      = errors.New("image preprocessing failed")
	ErrRecognition     = errors.New("OCR failed")
	ErrDocumentWrite   = errors.New("document generation failed")
)
