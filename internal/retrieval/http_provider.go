package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// httpProvider talks to an embedding service over HTTP. The service exposes
// a health check on its base URL and an embed endpoint accepting a batch of
// texts.
type httpProvider struct {
	endpoint   string
	model      string
	dimensions int
	client     *http.Client
}

// NewHTTPProvider creates an embedding provider backed by a remote service.
// The endpoint is the full embed URL, e.g. "http://127.0.0.1:8121/embed".
func NewHTTPProvider(endpoint, model string, dimensions int) Provider {
	return &httpProvider{
		endpoint:   endpoint,
		model:      model,
		dimensions: dimensions,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Initialize checks that the embedding service is reachable and healthy.
func (p *httpProvider) Initialize(ctx context.Context) error {
	base, err := url.Parse(p.endpoint)
	if err != nil {
		return fmt.Errorf("invalid embedding endpoint: %w", err)
	}
	base.Path = "/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base.String(), nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("embedding service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("embedding service unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// embedRequest represents the JSON request body for the embed endpoint.
type embedRequest struct {
	Model string   `json:"model,omitempty"`
	Texts []string `json:"texts"`
	Mode  string   `json:"mode,omitempty"`
}

// embedResponse represents the JSON response from the embed endpoint.
type embedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

// Embed converts a slice of text strings into their vector representations.
func (p *httpProvider) Embed(ctx context.Context, texts []string, mode EmbedMode) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(embedRequest{
		Model: p.model,
		Texts: texts,
		Mode:  string(mode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("embed request failed: status %d: %s", resp.StatusCode, payload)
	}

	var decoded embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode embed response: %w", err)
	}
	if len(decoded.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embed response carries %d embeddings for %d texts",
			len(decoded.Embeddings), len(texts))
	}
	return decoded.Embeddings, nil
}

// Dimensions returns the configured embedding dimensionality.
func (p *httpProvider) Dimensions() int {
	return p.dimensions
}

// Close is a no-op for the HTTP provider.
func (p *httpProvider) Close() error {
	return nil
}
