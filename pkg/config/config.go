// Package config loads and saves the YAML configuration for the tlvkit
// decode service.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the decode service configuration.
type Config struct {
	Bind    string `yaml:"bind"`
	Port    int    `yaml:"port"`
	DataDir string `yaml:"data_dir"`
	// Schema is an optional path to a YAML tag dictionary.
	Schema string `yaml:"schema,omitempty"`
	// Variant is the default length policy: standard, inclusive or
	// padded4. Requests may override it per call.
	Variant string `yaml:"variant"`
	// APIKey, when set, is required in the X-API-Key header of every
	// API request.
	APIKey string `yaml:"api_key,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Bind:    "127.0.0.1",
		Port:    8080,
		DataDir: "./data",
		Variant: "standard",
	}
}

// Validate checks the configuration for values the server cannot start
// with.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	switch c.Variant {
	case "standard", "inclusive", "padded4":
	default:
		return fmt.Errorf("unknown variant %q (want standard, inclusive or padded4)", c.Variant)
	}
	return nil
}

// Load reads configuration from the given path, applying defaults for
// fields the file omits.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return config, nil
}

// Save writes the configuration to the given path, creating the parent
// directory when needed.
func Save(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
