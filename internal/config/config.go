// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/aprl-tools/internal/filter"
)

// Environment variables consulted when neither a flag nor the config file sets a value.
const (
	EnvPath    = "APRL_PATH"
	EnvOutput  = "APRL_OUTPUT"
	EnvBaseURL = "APRL_BASE_URL"
	EnvSchema  = "APRL_SCHEMA"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Paths      []string `json:"paths,omitempty" yaml:"paths,omitempty"`   // Resource roots to walk
	SchemaPath string   `json:"schema,omitempty" yaml:"schema,omitempty"` // Schema file for validation

	// Filtering
	ImpactLevel        string `json:"impact_level,omitempty" yaml:"impact_level,omitempty"`                 // High, Medium, Low or All
	IncludeNonVerified bool   `json:"include_non_verified,omitempty" yaml:"include_non_verified,omitempty"` // Export non-PG verified records too

	// Output
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty"` // xlsx file to write
	BaseURL    string `json:"base_url,omitempty" yaml:"base_url,omitempty"`       // Documentation site root

	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Debug logging
}

// LoadConfig loads configuration from a file. Files ending in .yaml or .yml are
// parsed as YAML, everything else as JSON.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// FromEnv builds a Config from the APRL_* environment variables.
// APRL_PATH may hold several roots separated by the OS path list separator.
func FromEnv() Config {
	var cfg Config
	if v := os.Getenv(EnvPath); v != "" {
		for _, p := range filepath.SplitList(v) {
			if p != "" {
				cfg.Paths = append(cfg.Paths, p)
			}
		}
	}
	cfg.OutputFile = os.Getenv(EnvOutput)
	cfg.BaseURL = os.Getenv(EnvBaseURL)
	cfg.SchemaPath = os.Getenv(EnvSchema)
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging. The schema path is not checked here
// because only the validate command reads it.
func (c *Config) Validate() error {
	if c.ImpactLevel != "" {
		if _, err := filter.ParseImpactLevel(c.ImpactLevel); err != nil {
			return fmt.Errorf("config error: 'impact_level': %w", err)
		}
	}

	if c.OutputFile != "" && !strings.EqualFold(filepath.Ext(c.OutputFile), ".xlsx") {
		return fmt.Errorf("config error: 'output_file' must end in .xlsx: %s", c.OutputFile)
	}

	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config error: 'base_url' must be an absolute URL: %s", c.BaseURL)
		}
	}

	for _, p := range c.Paths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("config error: 'paths' must not contain empty entries")
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if len(result.Paths) == 0 {
		result.Paths = append([]string(nil), defaults.Paths...)
	}
	if result.SchemaPath == "" {
		result.SchemaPath = defaults.SchemaPath
	}
	if result.ImpactLevel == "" {
		result.ImpactLevel = defaults.ImpactLevel
	}
	if result.OutputFile == "" {
		result.OutputFile = defaults.OutputFile
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
