// Package config provides YAML-based configuration with compiled-in
// defaults.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var embeddedConfig []byte

// OutputConfig controls where and how the JSON document is written
type OutputConfig struct {
	Path    string `yaml:"path"`    // Empty writes to stdout
	Compact bool   `yaml:"compact"` // Single-line output
}

// StoreConfig controls the parse-run archive
type StoreConfig struct {
	Path string `yaml:"path"` // SQLite database path; empty disables archiving
}

// Config is the top-level YAML structure.
//
// Construct via LoadEmbedded or LoadFromFile; both validate every field.
// Command-line flags override individual values after loading.
type Config struct {
	DefaultCurrency string       `yaml:"default_currency"`
	Strict          bool         `yaml:"strict"`
	Output          OutputConfig `yaml:"output"`
	Store           StoreConfig  `yaml:"store"`
}

// New parses and validates a configuration from YAML data
func New(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config (check syntax, indentation, and field names): %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEmbedded loads the compiled-in config.yaml
func LoadEmbedded() (*Config, error) {
	cfg, err := New(embeddedConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded config (possible binary corruption): %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a filesystem path
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := New(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %q: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	// ISO 4217 codes are three upper-case letters. An empty value is
	// allowed and falls back to the parser's own default.
	cur := c.DefaultCurrency
	if cur != "" {
		if len(cur) != 3 || cur != strings.ToUpper(cur) {
			return fmt.Errorf("default_currency must be a three-letter upper-case code, got %q", cur)
		}
		for _, r := range cur {
			if r < 'A' || r > 'Z' {
				return fmt.Errorf("default_currency must be a three-letter upper-case code, got %q", cur)
			}
		}
	}

	if c.Output.Path != "" && c.Output.Path == c.Store.Path {
		return fmt.Errorf("output.path and store.path must differ, both are %q", c.Output.Path)
	}

	return nil
}
