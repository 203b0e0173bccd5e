package img2docx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alnah/go-img2docx/internal/document"
	"github.com/alnah/go-img2docx/internal/imageprep"
	"github.com/alnah/go-img2docx/internal/markup"
	"github.com/alnah/go-img2docx/internal/ocr"
)

// DefaultTimeout bounds one recognition call when no explicit timeout is
// configured.
const DefaultTimeout = 60 * time.Second

// Converter runs the image-to-document pipeline. It is the single fault
// boundary: Convert reports every failure through ConvertResult and never
// returns an error or panics.
type Converter struct {
	timeout    time.Duration
	recognizer ocr.Recognizer
	newSink    func(path string) document.Sink
	prepare    func(path string) (string, func(), error)
}

// Option configures a Converter.
type Option func(*options)

type options struct {
	apiKey     string
	model      string
	timeout    time.Duration
	recognizer ocr.Recognizer
}

// WithAPIKey sets the recognition service API key. Required unless a
// custom Recognizer is injected with WithRecognizer.
func WithAPIKey(key string) Option {
	return func(o *options) { o.apiKey = key }
}

// WithModel overrides the recognition model. Empty keeps the service
// default.
func WithModel(model string) Option {
	return func(o *options) { o.model = model }
}

// WithTimeout sets the per-conversion recognition timeout.
// Panics if d <= 0: a non-positive timeout is a programming error.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("img2docx: timeout must be positive")
	}
	return func(o *options) { o.timeout = d }
}

// WithRecognizer injects a custom text recognizer, replacing the default
// Gemini-backed one.
func WithRecognizer(r ocr.Recognizer) Option {
	return func(o *options) { o.recognizer = r }
}

// New creates a Converter. Returns ErrMissingAPIKey when no API key is
// given and no custom recognizer is injected.
func New(opts ...Option) (*Converter, error) {
	o := options{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	recognizer := o.recognizer
	if recognizer == nil {
		if o.apiKey == "" {
			return nil, ErrMissingAPIKey
		}
		g, err := ocr.NewGemini(o.apiKey, ocr.WithModel(o.model))
		if err != nil {
			return nil, err
		}
		recognizer = g
	}

	return &Converter{
		timeout:    o.timeout,
		recognizer: recognizer,
		newSink:    document.ForPath,
		prepare:    imageprep.Prepare,
	}, nil
}

// Convert runs the full pipeline for one image: preprocess, recognize,
// parse, assemble, save. It always returns a result; any failure leaves
// no partial output file behind.
func (c *Converter) Convert(ctx context.Context, in Input) (result *ConvertResult) {
	defer func() {
		if r := recover(); r != nil {
			result = failure(fmt.Errorf("internal error: %v", r))
		}
	}()

	if in.ImagePath == "" {
		return failure(ErrEmptyImagePath)
	}
	if in.OutputPath == "" {
		return failure(ErrEmptyOutputPath)
	}

	prepared, cleanup, err := c.prepare(in.ImagePath)
	if err != nil {
		if errors.Is(err, imageprep.ErrDecode) {
			return failure(fmt.Errorf("%w: %v", ErrImageDecode, err))
		}
		return failure(fmt.Errorf("%w: %v", ErrPreprocess, err))
	}
	defer cleanup()

	data, err := os.ReadFile(prepared) // #nosec G304 -- path comes from our own temp file
	if err != nil {
		return failure(fmt.Errorf("%w: %v", ErrPreprocess, err))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	annotated, err := c.recognizer.Recognize(ctx, data, imageprep.MIMEType)
	if err != nil {
		return failure(fmt.Errorf("%w: %v", ErrRecognition, err))
	}

	blocks := markup.Classify(annotated)

	sink := c.newSink(in.OutputPath)
	document.Assemble(blocks, sink)
	if err := sink.Save(in.OutputPath); err != nil {
		os.Remove(in.OutputPath)
		return failure(fmt.Errorf("%w: %v", ErrDocumentWrite, err))
	}

	return &ConvertResult{
		Success:    true,
		Message:    "conversion completed successfully",
		OutputPath: in.OutputPath,
	}
}

func failure(err error) *ConvertResult {
	return &ConvertResult{Message: err.Error(), Err: err}
}
