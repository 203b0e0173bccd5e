package ocr

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Gemini implements Recognizer against the Gemini API. The client is
// created per call: genai clients are cheap and a fresh one keeps every
// conversion independent of the last.
type Gemini struct {
	apiKey string
	model  string
	client *http.Client
}

// GeminiOption configures a Gemini recognizer.
type GeminiOption func(*Gemini)

// WithHTTPClient overrides the HTTP client used by the API, e.g. to route
// through a proxy or record traffic in tests.
func WithHTTPClient(client *http.Client) GeminiOption {
	return func(g *Gemini) {
		g.client = client
	}
}

// WithModel overrides DefaultModel.
func WithModel(model string) GeminiOption {
	return func(g *Gemini) {
		if model != "" {
			g.model = model
		}
	}
}

// NewGemini creates a recognizer with an explicit API key. The key is
// required: it is never read from ambient process state here.
func NewGemini(apiKey string, opts ...GeminiOption) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	g := &Gemini{
		apiKey: apiKey,
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Model returns the configured model identifier.
func (g *Gemini) Model() string {
	return g.model
}

// Recognize sends the image with the markup prompt and returns the
// model's annotated text. Context cancellation and timeouts abort the
// call; a response without any text part is an error.
func (g *Gemini) Recognize(ctx context.Context, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", ErrEmptyImage
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     g.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.client,
	})
	if err != nil {
		return "", fmt.Errorf("creating client: %w", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(Prompt),
		{
			InlineData: &genai.Blob{
				MIMEType: mimeType,
				Data:     image,
			},
		},
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			text.WriteString(part.Text)
		}
		// Only the first candidate carries the transcription.
		break
	}
	if text.Len() == 0 {
		return "", ErrNoText
	}
	return text.String(), nil
}
