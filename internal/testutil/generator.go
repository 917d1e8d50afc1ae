package testutil

import (
	"context"
	"sync"

	"github.com/skillprep/backend/internal/textgen"
)

// FakeGenerator returns canned text and records the prompts it received.
type FakeGenerator struct {
	Text string
	Err  error

	mu      sync.Mutex
	prompts []string
}

var _ textgen.Generator = (*FakeGenerator)(nil)

func (g *FakeGenerator) Generate(_ context.Context, prompt string) (textgen.Result, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()

	if g.Err != nil {
		return textgen.Result{}, g.Err
	}
	return textgen.Result{Text: g.Text, Model: "fake"}, nil
}

// Prompts returns a copy of the prompts received so far.
func (g *FakeGenerator) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.prompts...)
}
