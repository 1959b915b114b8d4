// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Behavior
	EnableFallback bool   `json:"enable_fallback,omitempty"` // Allow one AI extraction call for missing fields
	FallbackURL    string `json:"fallback_url,omitempty"`    // AI extraction endpoint
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key (used when no fallback URL is set)
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed diagnostics
	JSONOutput     bool   `json:"json,omitempty"`            // Emit the parse result as JSON

	// Limits
	MaxConcurrent int `json:"max_concurrent,omitempty"` // Parallel document limit for multi-file runs

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for run storage
}

// LoadConfig loads configuration from a JSON file.
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MaxConcurrent < 0 {
		return fmt.Errorf("config error: 'max_concurrent' must be non-negative")
	}

	if c.FallbackURL != "" {
		u, err := url.Parse(c.FallbackURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config error: 'fallback_url' is not a valid URL: %s", c.FallbackURL)
		}
	}

	if c.EnableFallback && c.FallbackURL == "" && c.APIKey == "" {
		return fmt.Errorf("config error: 'enable_fallback' requires 'fallback_url' or 'api_key'")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.FallbackURL == "" {
		result.FallbackURL = defaults.FallbackURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.MaxConcurrent == 0 {
		result.MaxConcurrent = defaults.MaxConcurrent
	}
	if !result.EnableFallback {
		result.EnableFallback = defaults.EnableFallback
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.JSONOutput {
		result.JSONOutput = defaults.JSONOutput
	}

	return result
}
