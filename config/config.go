// Package config holds the tunable settings of the parse pipeline.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures a parse pipeline instance.
type Config struct {
	// MaxDepth is the soft nesting-depth bound; rows beyond it are logged as
	// warnings but still parsed (default: 50).
	MaxDepth int `json:"max_depth" yaml:"max_depth"`

	// MaxIdentifierLength bounds derived identifiers; longer names are
	// truncated with a trailing disambiguating hash (default: 50).
	MaxIdentifierLength int `json:"max_identifier_length" yaml:"max_identifier_length"`

	// RepeatMarkerAliases lists additional accepted spellings of the
	// repeat-count marker, on top of the canonical spelling and the known
	// legacy misspelling.
	RepeatMarkerAliases []string `json:"repeat_marker_aliases" yaml:"repeat_marker_aliases"`

	// Logger for warnings and progress messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

// Normalize fills unset fields with defaults.
func (c *Config) Normalize() {
	if c.MaxDepth <= 0 {
		c.MaxDepth = 50
	}
	// Truncation reserves 4 characters for the hash suffix; anything shorter
	// than 8 leaves no usable prefix.
	if c.MaxIdentifierLength < 8 {
		c.MaxIdentifierLength = 50
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// DefaultConfig returns a Config with every field at its default.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Normalize()
	return cfg
}

// Load reads a YAML config file and applies defaults for unset fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}
