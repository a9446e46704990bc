package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
)

// Config is the file-level configuration of the CLI. Flags override it.
type Config struct {
	// Criterion is the default weight dimension: distance, time or cost.
	Criterion string `yaml:"criterion"`

	// Alternatives is the default K for the alternatives command.
	Alternatives int `yaml:"alternatives"`

	// MaxDepth bounds alternative routes to this many edges; negative is unlimited.
	MaxDepth int `yaml:"max_depth"`

	// SearchTimeout bounds each alternatives enumeration; zero is unlimited.
	SearchTimeout time.Duration `yaml:"search_timeout"`

	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// Data is the records file loaded at start-up.
	Data string `yaml:"data"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Criterion:     core.Distance.String(),
		Alternatives:  3,
		MaxDepth:      -1,
		SearchTimeout: 10 * time.Second,
		LogLevel:      "warn",
	}
}

// LoadConfig reads path over the defaults. An empty path or a missing file
// yields the defaults; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if _, err := core.ParseCriterion(c.Criterion); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Alternatives < 1 {
		return fmt.Errorf("config: alternatives must be at least 1, got %d", c.Alternatives)
	}
	if c.SearchTimeout < 0 {
		return fmt.Errorf("config: search_timeout must be non-negative, got %s", c.SearchTimeout)
	}

	return nil
}
