// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
// The similarity thresholds and pool cap are long-standing production
// defaults carried as configuration, not constants baked into the engine.
type Config struct {
	// Connections
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the reference directory

	// Normalizer
	KeywordsFile string `json:"keywords_file,omitempty"` // Path to keyword-list JSON overriding the built-in lists

	// Matching
	MinSimilarity       float64 `json:"min_similarity,omitempty"`        // Default minimum similarity threshold (0.0-1.0)
	HighConfidenceMin   float64 `json:"high_confidence_min,omitempty"`   // Score floor for the high confidence tier
	MediumConfidenceMin float64 `json:"medium_confidence_min,omitempty"` // Score floor for the medium confidence tier
	CandidatePoolCap    int     `json:"candidate_pool_cap,omitempty"`    // Max candidate records scored per match call

	// Search
	DefaultSearchLimit int     `json:"default_search_limit,omitempty"` // Result cap when criteria omit a limit
	DefaultRadiusMiles float64 `json:"default_radius_miles,omitempty"` // Radius when nearby calls omit one

	// Behavior
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
func (c *Config) Validate() error {
	if c.MinSimilarity < 0 || c.MinSimilarity > 1 {
		return fmt.Errorf("config error: 'min_similarity' must be between 0 and 1")
	}
	if c.HighConfidenceMin < 0 || c.HighConfidenceMin > 1 {
		return fmt.Errorf("config error: 'high_confidence_min' must be between 0 and 1")
	}
	if c.MediumConfidenceMin < 0 || c.MediumConfidenceMin > 1 {
		return fmt.Errorf("config error: 'medium_confidence_min' must be between 0 and 1")
	}
	if c.HighConfidenceMin != 0 && c.MediumConfidenceMin != 0 && c.HighConfidenceMin < c.MediumConfidenceMin {
		return fmt.Errorf("config error: 'high_confidence_min' must be at least 'medium_confidence_min'")
	}
	if c.CandidatePoolCap < 0 {
		return fmt.Errorf("config error: 'candidate_pool_cap' must be non-negative")
	}
	if c.DefaultSearchLimit < 0 {
		return fmt.Errorf("config error: 'default_search_limit' must be non-negative")
	}
	if c.DefaultRadiusMiles < 0 {
		return fmt.Errorf("config error: 'default_radius_miles' must be non-negative")
	}

	if c.KeywordsFile != "" {
		if _, err := os.Stat(c.KeywordsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: keywords file not found: %s", c.KeywordsFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.KeywordsFile == "" {
		result.KeywordsFile = defaults.KeywordsFile
	}

	// Numeric fields: use default if zero
	if result.MinSimilarity == 0 {
		result.MinSimilarity = defaults.MinSimilarity
	}
	if result.HighConfidenceMin == 0 {
		result.HighConfidenceMin = defaults.HighConfidenceMin
	}
	if result.MediumConfidenceMin == 0 {
		result.MediumConfidenceMin = defaults.MediumConfidenceMin
	}
	if result.CandidatePoolCap == 0 {
		result.CandidatePoolCap = defaults.CandidatePoolCap
	}
	if result.DefaultSearchLimit == 0 {
		result.DefaultSearchLimit = defaults.DefaultSearchLimit
	}
	if result.DefaultRadiusMiles == 0 {
		result.DefaultRadiusMiles = defaults.DefaultRadiusMiles
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
