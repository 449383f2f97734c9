// Package retrieval implements the question answering side of docsage: it
// persists corpus chunks into a vector index, searches them by similarity,
// maximal marginal relevance or keywords, and prompts a language model with
// the retrieved context.
package retrieval

import "context"

// EmbedMode specifies the type of embedding to generate.
type EmbedMode string

const (
	// EmbedModeQuery generates embeddings optimized for search queries.
	// Use this when embedding user questions.
	EmbedModeQuery EmbedMode = "query"

	// EmbedModePassage generates embeddings optimized for document passages.
	// Use this when embedding corpus chunks.
	EmbedModePassage EmbedMode = "passage"
)

// Provider defines the interface for embedding text into vectors.
// Implementations may use local models, remote APIs, or other embedding
// services.
type Provider interface {
	// Initialize prepares the provider and blocks until ready.
	// Must be called before Embed().
	Initialize(ctx context.Context) error

	// Embed converts a slice of text strings into their vector
	// representations. The mode parameter specifies whether embeddings are
	// for queries or passages.
	Embed(ctx context.Context, texts []string, mode EmbedMode) ([][]float32, error)

	// Dimensions returns the dimensionality of the embedding vectors
	// produced by this provider.
	Dimensions() int

	// Close releases any resources held by the provider.
	Close() error
}
