package textgen

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoText is returned when the model answered but produced no text
// (empty candidates, safety block, tool-only output).
var ErrNoText = errors.New("no text produced")

// Generator produces text for a single prompt.
// Implementations call a hosted model, a local OpenAI-compatible server,
// or return canned results (for tests).
type Generator interface {
	Generate(ctx context.Context, prompt string) (Result, error)
}

// Result is the text produced for a prompt and the model that produced it.
type Result struct {
	Text  string
	Model string
}

// GenerateError is returned when the model could not be reached or
// answered with something unusable, so callers can tell it apart from
// ErrNoText.
type GenerateError struct {
	Reason  string
	Wrapped error
}

func (e *GenerateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("text generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("text generation failed: %s", e.Reason)
}

func (e *GenerateError) Unwrap() error {
	return e.Wrapped
}
