package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/docsage/docsage/internal/dataset"
)

var (
	// ErrEmptySourceRoot indicates a missing introspection source root
	ErrEmptySourceRoot = errors.New("empty source root")

	// ErrInvalidExclude indicates an exclusion pattern that does not compile
	ErrInvalidExclude = errors.New("invalid exclude pattern")

	// ErrInvalidProvider indicates an unsupported embedding provider
	ErrInvalidProvider = errors.New("invalid embedding provider")

	// ErrInvalidDimensions indicates invalid embedding dimensions
	ErrInvalidDimensions = errors.New("invalid embedding dimensions")

	// ErrEmptyEndpoint indicates a missing service endpoint
	ErrEmptyEndpoint = errors.New("empty endpoint")

	// ErrEmptyModel indicates a missing model name
	ErrEmptyModel = errors.New("empty model")

	// ErrInvalidSearchType indicates an unsupported retrieval search type
	ErrInvalidSearchType = errors.New("invalid search type")

	// ErrInvalidRetrieval indicates invalid retrieval tuning values
	ErrInvalidRetrieval = errors.New("invalid retrieval settings")

	// ErrInvalidTemperature indicates an out-of-range sampling temperature
	ErrInvalidTemperature = errors.New("invalid temperature")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateIntrospection(&cfg.Introspection); err != nil {
		errs = append(errs, err)
	}
	if err := validateDataset(&cfg.Dataset); err != nil {
		errs = append(errs, err)
	}
	if err := validateEmbedding(&cfg.Embedding); err != nil {
		errs = append(errs, err)
	}
	if err := validateRetrieval(&cfg.Retrieval); err != nil {
		errs = append(errs, err)
	}
	if err := validateGeneration(&cfg.Generation); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateIntrospection(cfg *IntrospectionConfig) error {
	var errs []error

	if strings.TrimSpace(cfg.SourceRoot) == "" {
		errs = append(errs, fmt.Errorf("%w: source_root is required", ErrEmptySourceRoot))
	}
	for _, pattern := range cfg.Excludes {
		if _, err := glob.Compile(pattern); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidExclude, pattern, err))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateDataset(cfg *DatasetConfig) error {
	proportions := dataset.Proportions{
		Train:      cfg.Splits.Train,
		Validation: cfg.Splits.Validation,
		Test:       cfg.Splits.Test,
	}
	return proportions.Validate()
}

func validateEmbedding(cfg *EmbeddingConfig) error {
	var errs []error

	provider := strings.ToLower(cfg.Provider)
	if provider != "local" && provider != "openai" {
		errs = append(errs, fmt.Errorf("%w: must be 'local' or 'openai', got '%s'", ErrInvalidProvider, cfg.Provider))
	}
	if strings.TrimSpace(cfg.Model) == "" {
		errs = append(errs, fmt.Errorf("%w: embedding model is required", ErrEmptyModel))
	}
	if cfg.Dimensions <= 0 {
		errs = append(errs, fmt.Errorf("%w: dimensions must be positive, got %d", ErrInvalidDimensions, cfg.Dimensions))
	}
	if strings.TrimSpace(cfg.Endpoint) == "" {
		errs = append(errs, fmt.Errorf("%w: embedding endpoint is required", ErrEmptyEndpoint))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateRetrieval(cfg *RetrievalConfig) error {
	var errs []error

	searchType := strings.ToLower(cfg.SearchType)
	if searchType != "similarity" && searchType != "mmr" && searchType != "keyword" {
		errs = append(errs, fmt.Errorf("%w: must be 'similarity', 'mmr' or 'keyword', got '%s'", ErrInvalidSearchType, cfg.SearchType))
	}
	if cfg.TopK <= 0 {
		errs = append(errs, fmt.Errorf("%w: top_k must be positive, got %d", ErrInvalidRetrieval, cfg.TopK))
	}
	if cfg.FetchK < cfg.TopK {
		errs = append(errs, fmt.Errorf("%w: fetch_k (%d) must be at least top_k (%d)", ErrInvalidRetrieval, cfg.FetchK, cfg.TopK))
	}
	if cfg.Lambda < 0 || cfg.Lambda > 1 {
		errs = append(errs, fmt.Errorf("%w: lambda must be within [0, 1], got %v", ErrInvalidRetrieval, cfg.Lambda))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

func validateGeneration(cfg *GenerationConfig) error {
	var errs []error

	if strings.TrimSpace(cfg.Endpoint) == "" {
		errs = append(errs, fmt.Errorf("%w: generation endpoint is required", ErrEmptyEndpoint))
	}
	if strings.TrimSpace(cfg.Model) == "" {
		errs = append(errs, fmt.Errorf("%w: generation model is required", ErrEmptyModel))
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		errs = append(errs, fmt.Errorf("%w: temperature must be within [0, 2], got %v", ErrInvalidTemperature, cfg.Temperature))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}
	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
