// Package ocr extracts annotated text from document images through an
// external AI recognition service.
package ocr

import (
	"context"
	"errors"
)

// Sentinel errors for recognition operations.
var (
	ErrMissingAPIKey = errors.New("ocr: missing API key")
	ErrEmptyImage    = errors.New("ocr: empty image data")
	ErrNoText        = errors.New("ocr: response contains no text")
)

// DefaultModel is the recognition model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Recognizer extracts annotated text from a prepared image. The returned
// text follows the markup contract in Prompt; the caller's parser treats
// any deviation as literal text.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte, mimeType string) (string, error)
}
