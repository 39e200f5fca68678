// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values when set.
const (
	EnvLogLevel = "RESUME_CONVERT_LOG_LEVEL"
	EnvLayout   = "RESUME_CONVERT_LAYOUT"
	EnvWorkers  = "RESUME_CONVERT_WORKERS"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; zero values are filled from Default().
type Config struct {
	// Parsing
	SectionOrder []string `json:"section_order,omitempty" yaml:"section_order,omitempty" validate:"omitempty,unique,dive,required"` // Ordered section headers

	// Extraction
	Layout string `json:"layout,omitempty" yaml:"layout,omitempty" validate:"omitempty,oneof=rows plain"` // PDF text layout

	// Output
	Indent int  `json:"indent,omitempty" yaml:"indent,omitempty" validate:"gte=1,lte=16"` // Spaces per JSON nesting level, 1-16; 0 in a file means unset
	Quiet  bool `json:"quiet,omitempty" yaml:"quiet,omitempty"`                         // Suppress diagnostic stdout

	// Runtime
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Workers  int    `json:"workers,omitempty" yaml:"workers,omitempty" validate:"gte=0,lte=64"` // Batch concurrency
}

// Default returns the configuration used when no file or environment is given.
func Default() Config {
	return Config{
		Layout:   "rows",
		Indent:   4,
		LogLevel: "info",
		Workers:  4,
	}
}

// LoadConfig loads configuration from a JSON (.json) or YAML (.yaml, .yml) file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from the RESUME_CONVERT_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLayout); v != "" {
		c.Layout = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %w", EnvWorkers, err)
		}
		c.Workers = n
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if len(result.SectionOrder) == 0 {
		result.SectionOrder = defaults.SectionOrder
	}
	if result.Layout == "" {
		result.Layout = defaults.Layout
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.Indent == 0 {
		result.Indent = defaults.Indent
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Load resolves the effective configuration: the optional file at path, then
// environment overrides, then defaults, then validation.
func Load(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	merged := cfg.MergeWithDefaults(Default())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}
