package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (DOCSAGE_*)
// 2. Config file (.docsage/config.yml or .docsage/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".docsage")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	// Enable environment variable overrides, with . replaced by _ in names
	// (e.g. DOCSAGE_EMBEDDING_PROVIDER).
	v.SetEnvPrefix("DOCSAGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Introspection configuration
	v.BindEnv("introspection.source_root")
	v.BindEnv("introspection.package")

	// Dataset configuration
	v.BindEnv("dataset.seed")
	v.BindEnv("dataset.output")
	v.BindEnv("dataset.splits.train")
	v.BindEnv("dataset.splits.validation")
	v.BindEnv("dataset.splits.test")

	// Embedding configuration
	v.BindEnv("embedding.provider")
	v.BindEnv("embedding.model")
	v.BindEnv("embedding.dimensions")
	v.BindEnv("embedding.endpoint")

	// Retrieval configuration
	v.BindEnv("retrieval.database")
	v.BindEnv("retrieval.search_type")
	v.BindEnv("retrieval.top_k")
	v.BindEnv("retrieval.fetch_k")
	v.BindEnv("retrieval.lambda")

	// Generation configuration
	v.BindEnv("generation.endpoint")
	v.BindEnv("generation.model")
	v.BindEnv("generation.temperature")

	setDefaults(v)

	// Machine-wide service settings sit between built-in defaults and the
	// project file in the override chain.
	if global, err := LoadGlobalConfig(); err == nil {
		v.SetDefault("embedding.provider", global.Embedding.Provider)
		v.SetDefault("embedding.model", global.Embedding.Model)
		v.SetDefault("embedding.dimensions", global.Embedding.Dimensions)
		v.SetDefault("embedding.endpoint", global.Embedding.Endpoint)
		v.SetDefault("generation.endpoint", global.Generation.Endpoint)
		v.SetDefault("generation.model", global.Generation.Model)
		v.SetDefault("generation.temperature", global.Generation.Temperature)
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable; defaults + env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("introspection.source_root", defaults.Introspection.SourceRoot)
	v.SetDefault("introspection.package", defaults.Introspection.Package)
	v.SetDefault("introspection.excludes", defaults.Introspection.Excludes)

	v.SetDefault("dataset.seed", defaults.Dataset.Seed)
	v.SetDefault("dataset.output", defaults.Dataset.Output)
	v.SetDefault("dataset.splits.train", defaults.Dataset.Splits.Train)
	v.SetDefault("dataset.splits.validation", defaults.Dataset.Splits.Validation)
	v.SetDefault("dataset.splits.test", defaults.Dataset.Splits.Test)

	v.SetDefault("embedding.provider", defaults.Embedding.Provider)
	v.SetDefault("embedding.model", defaults.Embedding.Model)
	v.SetDefault("embedding.dimensions", defaults.Embedding.Dimensions)
	v.SetDefault("embedding.endpoint", defaults.Embedding.Endpoint)

	v.SetDefault("retrieval.database", defaults.Retrieval.Database)
	v.SetDefault("retrieval.search_type", defaults.Retrieval.SearchType)
	v.SetDefault("retrieval.top_k", defaults.Retrieval.TopK)
	v.SetDefault("retrieval.fetch_k", defaults.Retrieval.FetchK)
	v.SetDefault("retrieval.lambda", defaults.Retrieval.Lambda)

	v.SetDefault("generation.endpoint", defaults.Generation.Endpoint)
	v.SetDefault("generation.model", defaults.Generation.Model)
	v.SetDefault("generation.temperature", defaults.Generation.Temperature)
}

// LoadConfig is a convenience function that creates a loader and loads config.
// It uses the current working directory as the root.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
