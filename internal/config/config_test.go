package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsage/docsage/internal/dataset"
)

// Test Plan for Config System:
// - Default() returns valid configuration with all expected defaults
// - Load() uses defaults when no config file exists
// - Load() loads from .docsage/config.yml when present
// - Load() merges config file with defaults
// - Environment variables override config file values
// - Load() returns error for malformed YAML
// - Load() returns error for invalid configuration values
// - Validate() accepts valid configuration
// - Validate() rejects invalid provider, search type, exclude patterns,
//   split proportions and out-of-range retrieval settings
// - Validate() returns multiple errors for multiple invalid fields

func TestDefault_ReturnsValidConfiguration(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)

	assert.Equal(t, "src", cfg.Introspection.SourceRoot)
	assert.Empty(t, cfg.Introspection.Excludes)

	assert.Equal(t, int64(0), cfg.Dataset.Seed)
	assert.Equal(t, "dataset.json", cfg.Dataset.Output)
	assert.Equal(t, 0.6, cfg.Dataset.Splits.Train)
	assert.Equal(t, 0.2, cfg.Dataset.Splits.Validation)
	assert.Equal(t, 0.2, cfg.Dataset.Splits.Test)

	assert.Equal(t, "local", cfg.Embedding.Provider)
	assert.Equal(t, "BAAI/bge-small-en-v1.5", cfg.Embedding.Model)
	assert.Equal(t, 384, cfg.Embedding.Dimensions)
	assert.Equal(t,
		fmt.Sprintf("http://%s:%d/embed", DefaultEmbedServerHost, DefaultEmbedServerPort),
		cfg.Embedding.Endpoint)

	assert.Equal(t, "mmr", cfg.Retrieval.SearchType)
	assert.Equal(t, 5, cfg.Retrieval.TopK)
	assert.Equal(t, 10, cfg.Retrieval.FetchK)
	assert.Equal(t, 0.5, cfg.Retrieval.Lambda)

	assert.NotEmpty(t, cfg.Generation.Endpoint)
	assert.NotEmpty(t, cfg.Generation.Model)

	assert.NoError(t, Validate(cfg))
}

func TestLoadConfig_UsesDefaultsWhenNoConfigFile(t *testing.T) {
	tempDir := t.TempDir()

	cfg, err := NewLoader(tempDir).Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, Default(), cfg)
}

func writeConfig(t *testing.T, rootDir, content string) {
	t.Helper()
	configDir := filepath.Join(rootDir, ".docsage")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(content), 0644))
}

func TestLoadConfig_LoadsFromConfigYml(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, `
introspection:
  source_root: lib
  package: demo
  excludes:
    - "*vendor*"

dataset:
  seed: 7
  output: corpus.json
  splits:
    train: 0.8
    validation: 0.1
    test: 0.1

embedding:
  provider: openai
  model: text-embedding-3-small
  dimensions: 1536
  endpoint: https://api.openai.com/v1/embeddings

retrieval:
  search_type: similarity
  top_k: 3
  fetch_k: 6
  lambda: 0.7
`)

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "lib", cfg.Introspection.SourceRoot)
	assert.Equal(t, "demo", cfg.Introspection.Package)
	assert.Equal(t, []string{"*vendor*"}, cfg.Introspection.Excludes)
	assert.Equal(t, int64(7), cfg.Dataset.Seed)
	assert.Equal(t, "corpus.json", cfg.Dataset.Output)
	assert.Equal(t, 0.8, cfg.Dataset.Splits.Train)
	assert.Equal(t, "openai", cfg.Embedding.Provider)
	assert.Equal(t, 1536, cfg.Embedding.Dimensions)
	assert.Equal(t, "similarity", cfg.Retrieval.SearchType)
	assert.Equal(t, 3, cfg.Retrieval.TopK)
}

func TestLoadConfig_MergesWithDefaults(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, `
dataset:
  output: corpus.json
`)

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)

	// The overridden key takes the file value, the rest stay at defaults.
	assert.Equal(t, "corpus.json", cfg.Dataset.Output)
	assert.Equal(t, 0.6, cfg.Dataset.Splits.Train)
	assert.Equal(t, "local", cfg.Embedding.Provider)
	assert.Equal(t, "mmr", cfg.Retrieval.SearchType)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, `
embedding:
  provider: local
`)

	t.Setenv("DOCSAGE_EMBEDDING_PROVIDER", "openai")
	t.Setenv("DOCSAGE_RETRIEVAL_TOP_K", "2")

	cfg, err := NewLoader(tempDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Embedding.Provider)
	assert.Equal(t, 2, cfg.Retrieval.TopK)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, "embedding: [unclosed")

	_, err := NewLoader(tempDir).Load()
	assert.Error(t, err)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, `
embedding:
  provider: quantum
`)

	_, err := NewLoader(tempDir).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidProvider)
}

func TestValidate_SplitProportions(t *testing.T) {
	cfg := Default()
	cfg.Dataset.Splits = SplitConfig{Train: 0.6, Validation: 0.3, Test: 0.3}

	err := Validate(cfg)
	assert.ErrorIs(t, err, dataset.ErrInvalidProportions)
}

func TestValidate_RejectsInvalidFields(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{
			"empty source root",
			func(c *Config) { c.Introspection.SourceRoot = "  " },
			ErrEmptySourceRoot,
		},
		{
			"bad exclude pattern",
			func(c *Config) { c.Introspection.Excludes = []string{"[unterminated"} },
			ErrInvalidExclude,
		},
		{
			"bad provider",
			func(c *Config) { c.Embedding.Provider = "quantum" },
			ErrInvalidProvider,
		},
		{
			"empty embedding model",
			func(c *Config) { c.Embedding.Model = "" },
			ErrEmptyModel,
		},
		{
			"zero dimensions",
			func(c *Config) { c.Embedding.Dimensions = 0 },
			ErrInvalidDimensions,
		},
		{
			"empty embedding endpoint",
			func(c *Config) { c.Embedding.Endpoint = "" },
			ErrEmptyEndpoint,
		},
		{
			"bad search type",
			func(c *Config) { c.Retrieval.SearchType = "hybrid" },
			ErrInvalidSearchType,
		},
		{
			"zero top_k",
			func(c *Config) { c.Retrieval.TopK = 0 },
			ErrInvalidRetrieval,
		},
		{
			"fetch_k below top_k",
			func(c *Config) { c.Retrieval.FetchK = 1 },
			ErrInvalidRetrieval,
		},
		{
			"lambda above one",
			func(c *Config) { c.Retrieval.Lambda = 1.5 },
			ErrInvalidRetrieval,
		},
		{
			"empty generation model",
			func(c *Config) { c.Generation.Model = "" },
			ErrEmptyModel,
		},
		{
			"negative temperature",
			func(c *Config) { c.Generation.Temperature = -1 },
			ErrInvalidTemperature,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, Validate(cfg), tc.expected)
		})
	}
}

func TestValidate_ReportsMultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.Embedding.Provider = "quantum"
	cfg.Retrieval.TopK = 0

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid embedding provider")
	assert.Contains(t, err.Error(), "invalid retrieval settings")
}
