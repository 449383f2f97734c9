package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxAnswerTokens caps generation length for concise answers.
const maxAnswerTokens = 256

// LanguageModel generates an answer for a fully rendered prompt.
type LanguageModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// httpModel talks to a text generation service over HTTP.
type httpModel struct {
	endpoint    string
	model       string
	temperature float64
	client      *http.Client
}

// NewHTTPModel creates a language model client for a remote generation
// service. Temperature 0 keeps answers deterministic.
func NewHTTPModel(endpoint, model string, temperature float64) LanguageModel {
	return &httpModel{
		endpoint:    endpoint,
		model:       model,
		temperature: temperature,
		client:      &http.Client{Timeout: 120 * time.Second},
	}
}

// generateRequest represents the JSON request body for the generate endpoint.
type generateRequest struct {
	Model       string  `json:"model,omitempty"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// generateResponse represents the JSON response from the generate endpoint.
type generateResponse struct {
	Text string `json:"text"`
}

func (m *httpModel) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:       m.model,
		Prompt:      prompt,
		Temperature: m.temperature,
		MaxTokens:   maxAnswerTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("generate request failed: status %d: %s", resp.StatusCode, payload)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode generate response: %w", err)
	}
	return decoded.Text, nil
}

// mockModel returns a canned answer and records the prompts it saw.
type mockModel struct {
	answer  string
	prompts []string
}

// NewMockModel creates a language model for testing that always answers with
// the given text.
func NewMockModel(answer string) LanguageModel {
	return &mockModel{answer: answer}
}

func (m *mockModel) Generate(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.answer, nil
}
