package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Global Config Loader:
// - LoadGlobalConfig() returns defaults when file doesn't exist (not an error)
// - LoadGlobalConfig() loads from ~/.docsage/config.yml when present
// - LoadGlobalConfig() environment variables override YAML values
// - LoadGlobalConfig() returns error for malformed YAML
// - Project loader prefers project values over global ones

func TestLoadGlobalConfig_MissingFile(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()

	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, err := LoadGlobalConfig()

	require.NoError(t, err)
	require.NotNil(t, cfg)

	defaults := Default()
	assert.Equal(t, defaults.Embedding, cfg.Embedding)
	assert.Equal(t, defaults.Generation, cfg.Generation)
}

func writeGlobalConfig(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".docsage")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0644))
}

func TestLoadGlobalConfig_WithFile(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()

	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	writeGlobalConfig(t, tempHome, `
embedding:
  endpoint: http://embed.internal:9000/embed
  model: custom-embedder
  dimensions: 768

generation:
  endpoint: http://llm.internal:9001/generate
  model: custom-llm
`)

	cfg, err := LoadGlobalConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://embed.internal:9000/embed", cfg.Embedding.Endpoint)
	assert.Equal(t, "custom-embedder", cfg.Embedding.Model)
	assert.Equal(t, 768, cfg.Embedding.Dimensions)
	assert.Equal(t, "http://llm.internal:9001/generate", cfg.Generation.Endpoint)
	assert.Equal(t, "custom-llm", cfg.Generation.Model)

	// Unset keys keep their defaults.
	assert.Equal(t, "local", cfg.Embedding.Provider)
}

func TestLoadGlobalConfig_EnvOverridesFile(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()

	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	writeGlobalConfig(t, tempHome, `
generation:
  model: from-file
`)

	t.Setenv("DOCSAGE_GENERATION_MODEL", "from-env")

	cfg, err := LoadGlobalConfig()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Generation.Model)
}

func TestLoadGlobalConfig_MalformedYAML(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()

	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	writeGlobalConfig(t, tempHome, "embedding: [unclosed")

	_, err := LoadGlobalConfig()
	assert.Error(t, err)
}

func TestLoadConfig_GlobalSeedsProjectDefaults(t *testing.T) {
	// Note: Cannot use t.Parallel() with t.Setenv()

	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	writeGlobalConfig(t, tempHome, `
embedding:
  endpoint: http://embed.internal:9000/embed

generation:
  model: machine-llm
`)

	projectDir := t.TempDir()
	writeConfig(t, projectDir, `
generation:
  model: project-llm
`)

	cfg, err := NewLoader(projectDir).Load()

	require.NoError(t, err)
	// The project file wins where it speaks, the global file fills the rest.
	assert.Equal(t, "project-llm", cfg.Generation.Model)
	assert.Equal(t, "http://embed.internal:9000/embed", cfg.Embedding.Endpoint)
}
