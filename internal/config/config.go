// Package config loads and validates the docsage configuration from
// .docsage/config.yml with DOCSAGE_* environment variable overrides.
package config

import "fmt"

// Default endpoints for the local inference services the retrieval pipeline
// talks to.
const (
	DefaultEmbedServerHost = "127.0.0.1"
	DefaultEmbedServerPort = 8121

	DefaultModelServerHost = "127.0.0.1"
	DefaultModelServerPort = 8122
)

// Config represents the complete docsage configuration.
type Config struct {
	Introspection IntrospectionConfig `yaml:"introspection" mapstructure:"introspection"`
	Dataset       DatasetConfig       `yaml:"dataset" mapstructure:"dataset"`
	Embedding     EmbeddingConfig     `yaml:"embedding" mapstructure:"embedding"`
	Retrieval     RetrievalConfig     `yaml:"retrieval" mapstructure:"retrieval"`
	Generation    GenerationConfig    `yaml:"generation" mapstructure:"generation"`
}

// IntrospectionConfig selects the Python source tree to document.
type IntrospectionConfig struct {
	SourceRoot string   `yaml:"source_root" mapstructure:"source_root"` // directory containing the root package
	Package    string   `yaml:"package" mapstructure:"package"`         // dotted name of the root package
	Excludes   []string `yaml:"excludes" mapstructure:"excludes"`       // glob patterns over qualified names
}

// DatasetConfig controls corpus generation and split allocation.
type DatasetConfig struct {
	Seed   int64       `yaml:"seed" mapstructure:"seed"`     // allocator seed, 0 by convention
	Output string      `yaml:"output" mapstructure:"output"` // corpus JSON path
	Splits SplitConfig `yaml:"splits" mapstructure:"splits"`
}

// SplitConfig holds the train/validation/test proportions. Each must be
// strictly between 0 and 1 and together they must sum to 1.
type SplitConfig struct {
	Train      float64 `yaml:"train" mapstructure:"train"`
	Validation float64 `yaml:"validation" mapstructure:"validation"`
	Test       float64 `yaml:"test" mapstructure:"test"`
}

// EmbeddingConfig configures the embedding provider.
type EmbeddingConfig struct {
	Provider   string `yaml:"provider" mapstructure:"provider"`     // "local" or "openai"
	Model      string `yaml:"model" mapstructure:"model"`           // e.g., "BAAI/bge-small-en-v1.5"
	Dimensions int    `yaml:"dimensions" mapstructure:"dimensions"` // embedding vector dimensions
	Endpoint   string `yaml:"endpoint" mapstructure:"endpoint"`     // embedding service endpoint URL
}

// RetrievalConfig configures the document search stage.
type RetrievalConfig struct {
	Database   string  `yaml:"database" mapstructure:"database"`       // vector index directory
	SearchType string  `yaml:"search_type" mapstructure:"search_type"` // "similarity", "mmr" or "keyword"
	TopK       int     `yaml:"top_k" mapstructure:"top_k"`             // documents returned to the prompt
	FetchK     int     `yaml:"fetch_k" mapstructure:"fetch_k"`         // candidates fetched before re-ranking
	Lambda     float64 `yaml:"lambda" mapstructure:"lambda"`           // mmr relevance/diversity trade-off
}

// GenerationConfig configures the answering language model.
type GenerationConfig struct {
	Endpoint    string  `yaml:"endpoint" mapstructure:"endpoint"`
	Model       string  `yaml:"model" mapstructure:"model"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Introspection: IntrospectionConfig{
			SourceRoot: "src",
			Excludes:   []string{},
		},
		Dataset: DatasetConfig{
			Seed:   0,
			Output: "dataset.json",
			Splits: SplitConfig{
				Train:      0.6,
				Validation: 0.2,
				Test:       0.2,
			},
		},
		Embedding: EmbeddingConfig{
			Provider:   "local",
			Model:      "BAAI/bge-small-en-v1.5",
			Dimensions: 384,
			Endpoint:   fmt.Sprintf("http://%s:%d/embed", DefaultEmbedServerHost, DefaultEmbedServerPort),
		},
		Retrieval: RetrievalConfig{
			Database:   ".docsage/index",
			SearchType: "mmr",
			TopK:       5,
			FetchK:     10,
			Lambda:     0.5,
		},
		Generation: GenerationConfig{
			Endpoint:    fmt.Sprintf("http://%s:%d/generate", DefaultModelServerHost, DefaultModelServerPort),
			Model:       "gpt-3.5-turbo",
			Temperature: 0,
		},
	}
}
