package textgen_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/skillprep/backend/internal/textgen"
)

func newChatServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Model != "qwen3-8b" || len(req.Messages) != 1 || req.Messages[0].Content != "hello" {
			t.Errorf("unexpected request: %+v", req)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAICompatible_Generate(t *testing.T) {
	srv := newChatServer(t, http.StatusOK, `{"model":"qwen3-8b","choices":[{"message":{"content":"  hi there \n"}}]}`)

	res, err := textgen.NewOpenAICompatible(srv.URL+"/", "qwen3-8b").Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "hi there" {
		t.Errorf("expected trimmed text, got %q", res.Text)
	}
	if res.Model != "qwen3-8b" {
		t.Errorf("expected model qwen3-8b, got %q", res.Model)
	}
}

func TestOpenAICompatible_NoText(t *testing.T) {
	for name, body := range map[string]string{
		"no choices":    `{"choices":[]}`,
		"empty content": `{"choices":[{"message":{"content":"   "}}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := newChatServer(t, http.StatusOK, body)
			_, err := textgen.NewOpenAICompatible(srv.URL, "qwen3-8b").Generate(context.Background(), "hello")
			if !errors.Is(err, textgen.ErrNoText) {
				t.Errorf("expected ErrNoText, got %v", err)
			}
		})
	}
}

func TestOpenAICompatible_BadStatus(t *testing.T) {
	srv := newChatServer(t, http.StatusServiceUnavailable, `overloaded`)

	_, err := textgen.NewOpenAICompatible(srv.URL, "qwen3-8b").Generate(context.Background(), "hello")

	var genErr *textgen.GenerateError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerateError, got %v", err)
	}
	if !strings.Contains(genErr.Error(), "503") {
		t.Errorf("expected status in error, got %q", genErr.Error())
	}
	if errors.Is(err, textgen.ErrNoText) {
		t.Error("transport failure must not look like ErrNoText")
	}
}

func TestGemini_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "gemini-2.0-flash:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Paris "},{"text":"is the capital."}]}}]}`))
	}))
	defer srv.Close()

	g, err := textgen.NewGemini(context.Background(), textgen.GeminiOptions{
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash",
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	res, err := g.Generate(context.Background(), "Capital of France?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "Paris is the capital." {
		t.Errorf("unexpected text %q", res.Text)
	}
	if res.Model != "gemini-2.0-flash" {
		t.Errorf("unexpected model %q", res.Model)
	}
}

func TestGemini_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[],"promptFeedback":{"blockReason":"SAFETY"}}`))
	}))
	defer srv.Close()

	g, err := textgen.NewGemini(context.Background(), textgen.GeminiOptions{
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash",
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if _, err := g.Generate(context.Background(), "blocked"); !errors.Is(err, textgen.ErrNoText) {
		t.Errorf("expected ErrNoText, got %v", err)
	}
}

func TestBuildExplanationPrompt(t *testing.T) {
	p := textgen.BuildExplanationPrompt(textgen.ExplanationInput{
		Prompt:        "Capital of France?",
		UserAnswer:    "Lyon",
		CorrectAnswer: "Paris",
	})
	for _, want := range []string{"Capital of France?", "CORRECT ANSWER:\nParis", "LEARNER'S ANSWER:\nLyon"} {
		if !strings.Contains(p, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}

	p = textgen.BuildExplanationPrompt(textgen.ExplanationInput{Prompt: "Describe the Seine."})
	if !strings.Contains(p, "(no answer)") || !strings.Contains(p, "no single reference answer") {
		t.Errorf("unexpected prompt for free-text question: %s", p)
	}
}
