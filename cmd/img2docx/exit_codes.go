package main

import (
	"errors"
	"os"

	img2docx "github.com/alnah/go-img2docx"
	"github.com/alnah/go-img2docx/internal/config"
)

// Exit codes for the img2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, unreadable image, write failure
	ExitOCR     = 4 // Recognition service errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Recognition service errors (exit 4)
	if errors.Is(err, img2docx.ErrRecognition) {
		return ExitOCR
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, img2docx.ErrImageDecode) ||
		errors.Is(err, img2docx.ErrPreprocess) ||
		errors.Is(err, img2docx.ErrDocumentWrite) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrOutputConflict) ||
		errors.Is(err, img2docx.ErrMissingAPIKey) ||
		errors.Is(err, img2docx.ErrEmptyImagePath) ||
		errors.Is(err, img2docx.ErrEmptyOutputPath) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidFormat) ||
		errors.Is(err, config.ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
