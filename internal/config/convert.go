package config

import (
	"log/slog"

	"github.com/docsage/docsage/internal/dataset"
	"github.com/docsage/docsage/internal/introspect"
)

// ToIntrospectConfig converts the introspection section into the walker's
// configuration.
func (c *Config) ToIntrospectConfig(logger *slog.Logger) introspect.Config {
	return introspect.Config{
		SourceRoot: c.Introspection.SourceRoot,
		Excludes:   c.Introspection.Excludes,
		Logger:     logger,
	}
}

// ToProportions converts the split section into allocator proportions.
func (c *Config) ToProportions() dataset.Proportions {
	return dataset.Proportions{
		Train:      c.Dataset.Splits.Train,
		Validation: c.Dataset.Splits.Validation,
		Test:       c.Dataset.Splits.Test,
	}
}
