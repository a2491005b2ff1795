// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Catalog sources (mutually exclusive)
	Catalog     string `json:"catalog,omitempty"`      // Path to job catalog CSV
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Embedding provider
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name

	// Ranking behavior
	TopN          int     `json:"top_n,omitempty"`           // Result list bound
	MinSkillMatch float64 `json:"min_skill_match,omitempty"` // Skill threshold (0-100)
	Policy        string  `json:"policy,omitempty"`          // "penalize" or "exclude"

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: required fields are checked by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Catalog != "" && c.DatabaseURL != "" {
		return fmt.Errorf("config error: 'catalog' and 'database_url' are mutually exclusive")
	}

	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.MinSkillMatch < 0 || c.MinSkillMatch > 100 {
		return fmt.Errorf("config error: 'min_skill_match' must be in [0,100]")
	}
	if c.Policy != "" && c.Policy != "penalize" && c.Policy != "exclude" {
		return fmt.Errorf("config error: 'policy' must be 'penalize' or 'exclude'")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.Policy == "" {
		result.Policy = defaults.Policy
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.MinSkillMatch == 0 {
		result.MinSkillMatch = defaults.MinSkillMatch
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
