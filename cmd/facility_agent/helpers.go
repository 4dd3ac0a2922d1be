package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/facility-resolver/internal/config"
	"github.com/jonathan/facility-resolver/internal/matcher"
	"github.com/jonathan/facility-resolver/internal/normalize"
)

// resolveConfig loads the optional config file and applies flag and
// environment fallbacks in that order: flag > config file > env.
func resolveConfig(configPath, dbURLFlag string) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	if dbURLFlag != "" {
		cfg.DatabaseURL = dbURLFlag
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newNormalizer builds the name normalizer, honoring a keyword-list
// override file when configured.
func newNormalizer(cfg config.Config) (*normalize.Normalizer, error) {
	if cfg.KeywordsFile == "" {
		return normalize.Default(), nil
	}
	kw, err := normalize.LoadKeywords(cfg.KeywordsFile)
	if err != nil {
		return nil, err
	}
	return normalize.NewNormalizer(kw), nil
}

// matcherConfig translates CLI config into matcher defaults, leaving
// zero values to the engine's own defaults.
func matcherConfig(cfg config.Config) matcher.Config {
	mc := matcher.DefaultConfig()
	if cfg.MinSimilarity > 0 {
		mc.MinSimilarity = cfg.MinSimilarity
	}
	if cfg.HighConfidenceMin > 0 {
		mc.HighConfidenceMin = cfg.HighConfidenceMin
	}
	if cfg.MediumConfidenceMin > 0 {
		mc.MediumConfidenceMin = cfg.MediumConfidenceMin
	}
	if cfg.CandidatePoolCap > 0 {
		mc.CandidatePoolCap = cfg.CandidatePoolCap
	}
	return mc
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// requireDatabaseURL rejects commands that cannot run without a store.
func requireDatabaseURL(cfg config.Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or use --db-url)")
	}
	return nil
}
