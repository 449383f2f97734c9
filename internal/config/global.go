package config

// GlobalConfig holds machine-wide service configuration, loaded from
// ~/.docsage/config.yml (not the project's .docsage/config.yml).
//
// It carries the settings that describe the machine rather than any one
// documented project: where the embedding and generation services listen and
// which models they serve. Project configuration overrides it, environment
// variables override both.
//
// Configuration hierarchy (highest to lowest priority):
//  1. Environment variables (DOCSAGE_*)
//  2. Project config (.docsage/config.yml)
//  3. Global config (~/.docsage/config.yml)
//  4. Built-in defaults
type GlobalConfig struct {
	Embedding  EmbeddingConfig  `yaml:"embedding" mapstructure:"embedding"`
	Generation GenerationConfig `yaml:"generation" mapstructure:"generation"`
}
