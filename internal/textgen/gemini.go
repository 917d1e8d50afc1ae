package textgen

import (
	"context"
	"strings"

	"google.golang.org/genai"
)

// Gemini generates text with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

var _ Generator = (*Gemini)(nil)

// GeminiOptions configures NewGemini. BaseURL is only set in tests.
type GeminiOptions struct {
	APIKey  string
	Model   string
	BaseURL string
}

// NewGemini creates a Gemini client for the given API key and model.
func NewGemini(ctx context.Context, opts GeminiOptions) (*Gemini, error) {
	cfg := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, &GenerateError{Reason: "create gemini client", Wrapped: err}
	}
	return &Gemini{client: client, model: opts.Model}, nil
}

// Generate sends prompt as a single user turn and returns the text parts
// of the first candidate, trimmed.
func (g *Gemini) Generate(ctx context.Context, prompt string) (Result, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return Result{}, &GenerateError{Reason: "gemini request failed", Wrapped: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Result{}, ErrNoText
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return Result{}, ErrNoText
	}
	return Result{Text: text, Model: g.model}, nil
}
