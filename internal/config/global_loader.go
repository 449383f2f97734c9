package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// LoadGlobalConfig loads global configuration from ~/.docsage/config.yml.
// Returns default values if the file doesn't exist (not an error).
// Environment variables override file values (DOCSAGE_* prefix).
func LoadGlobalConfig() (*GlobalConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return loadGlobalConfigFromDir(filepath.Join(home, ".docsage"))
}

func loadGlobalConfigFromDir(dir string) (*GlobalConfig, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("DOCSAGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("embedding.provider")
	v.BindEnv("embedding.model")
	v.BindEnv("embedding.dimensions")
	v.BindEnv("embedding.endpoint")
	v.BindEnv("generation.endpoint")
	v.BindEnv("generation.model")
	v.BindEnv("generation.temperature")

	setGlobalDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &GlobalConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// setGlobalDefaults configures viper with default values for global config.
func setGlobalDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("embedding.provider", defaults.Embedding.Provider)
	v.SetDefault("embedding.model", defaults.Embedding.Model)
	v.SetDefault("embedding.dimensions", defaults.Embedding.Dimensions)
	v.SetDefault("embedding.endpoint", defaults.Embedding.Endpoint)

	v.SetDefault("generation.endpoint", defaults.Generation.Endpoint)
	v.SetDefault("generation.model", defaults.Generation.Model)
	v.SetDefault("generation.temperature", defaults.Generation.Temperature)
}
