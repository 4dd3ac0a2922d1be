package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/facility-resolver/internal/db"
	"github.com/jonathan/facility-resolver/internal/matcher"
	"github.com/jonathan/facility-resolver/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Resolve a free-text facility name to directory candidates",
	Long:  "Normalize a raw facility name, score it against the reference directory, and print the best match or the top-N candidates with confidence tiers.",
	RunE:  runMatch,
}

var (
	matchName          string
	matchCity          string
	matchState         string
	matchMinSimilarity float64
	matchTop           int
	matchConfigPath    string
	matchDatabaseURL   string
	matchVerbose       bool
)

func init() {
	matchCmd.Flags().StringVar(&matchName, "name", "", "Raw facility name to resolve (required)")
	matchCmd.Flags().StringVar(&matchCity, "city", "", "City hint to narrow the candidate pool")
	matchCmd.Flags().StringVar(&matchState, "state", "", "Two-letter state hint to narrow the candidate pool")
	matchCmd.Flags().Float64Var(&matchMinSimilarity, "min-similarity", 0, "Minimum similarity threshold (default from config)")
	matchCmd.Flags().IntVar(&matchTop, "top", 0, "Return the top N candidates instead of only the best match")
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to JSON config file")
	matchCmd.Flags().StringVar(&matchDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if matchName == "" {
		return fmt.Errorf("--name is required")
	}

	cfg, err := resolveConfig(matchConfigPath, matchDatabaseURL)
	if err != nil {
		return err
	}
	if err := requireDatabaseURL(cfg); err != nil {
		return err
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	normalizer, err := newNormalizer(cfg)
	if err != nil {
		return err
	}
	m := matcher.New(database, normalizer, matcherConfig(cfg))

	if matchTop > 0 {
		candidates, err := m.MatchTopN(ctx, matchName, matchCity, matchState, matchMinSimilarity, matchTop)
		if err != nil {
			return err
		}
		if matchVerbose {
			observability.NewPrinter(os.Stderr).PrintMatchCandidates(matchName, candidates)
		}
		return printJSON(candidates)
	}

	best, err := m.MatchBest(ctx, matchName, matchCity, matchState, matchMinSimilarity)
	if err != nil {
		return err
	}
	if best == nil {
		fmt.Fprintln(os.Stderr, "No match at or above the similarity threshold.")
		return printJSON(nil)
	}
	return printJSON(best)
}
