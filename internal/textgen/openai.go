package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// OpenAICompatible generates text by calling an OpenAI-compatible chat
// completions endpoint (Ollama, LM Studio, vLLM, etc.).
type OpenAICompatible struct {
	url    string       // e.g. "http://localhost:1234"
	model  string       // e.g. "qwen3-8b"
	client *http.Client // reused across calls
}

var _ Generator = (*OpenAICompatible)(nil)

// NewOpenAICompatible creates a generator that calls the given endpoint.
func NewOpenAICompatible(url, model string) *OpenAICompatible {
	return &OpenAICompatible{
		url:   strings.TrimRight(url, "/"),
		model: model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends a single user message and returns the first choice.
func (g *OpenAICompatible) Generate(ctx context.Context, prompt string) (Result, error) {
	reqBody := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.2,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return Result{}, &GenerateError{Reason: "LLM request failed", Wrapped: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, &GenerateError{Reason: fmt.Sprintf("LLM returned status %d", resp.StatusCode)}
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return Result{}, &GenerateError{Reason: "failed to decode LLM response", Wrapped: err}
	}

	if len(chatResp.Choices) == 0 {
		return Result{}, ErrNoText
	}

	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if content == "" {
		return Result{}, ErrNoText
	}

	model := chatResp.Model
	if model == "" {
		model = g.model
	}
	return Result{Text: content, Model: model}, nil
}
