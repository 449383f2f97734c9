package retrieval

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
)

// mockProvider generates deterministic embeddings by hashing the input text.
// This ensures reproducible vectors for testing without a running service.
type mockProvider struct {
	dimensions int
}

// NewMockProvider creates a deterministic embedding provider for testing.
func NewMockProvider(dimensions int) Provider {
	return &mockProvider{dimensions: dimensions}
}

func (p *mockProvider) Initialize(ctx context.Context) error {
	return nil
}

func (p *mockProvider) Embed(ctx context.Context, texts []string, mode EmbedMode) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))

	for i, text := range texts {
		hash := sha256.Sum256([]byte(text))

		embedding := make([]float32, p.dimensions)
		for j := 0; j < p.dimensions; j++ {
			offset := (j * 4) % len(hash)
			val := binary.BigEndian.Uint32(hash[offset : offset+4])
			// Normalize to [-1, 1] range
			embedding[j] = (float32(val)/float32(1<<32))*2.0 - 1.0
		}

		embeddings[i] = embedding
	}

	return embeddings, nil
}

func (p *mockProvider) Dimensions() int {
	return p.dimensions
}

func (p *mockProvider) Close() error {
	return nil
}
