package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/facility-resolver/internal/db"
	"github.com/jonathan/facility-resolver/internal/search"
	"github.com/jonathan/facility-resolver/internal/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Structured multi-criteria search over the reference directory",
	RunE:  runSearch,
}

var (
	searchName        string
	searchCity        string
	searchState       string
	searchZip         string
	searchMinCapacity int
	searchMaxCapacity int
	searchLimit       int
	searchConfigPath  string
	searchDatabaseURL string
)

func init() {
	searchCmd.Flags().StringVar(&searchName, "name", "", "Facility name substring (case-insensitive)")
	searchCmd.Flags().StringVar(&searchCity, "city", "", "Exact city")
	searchCmd.Flags().StringVar(&searchState, "state", "", "Two-letter state")
	searchCmd.Flags().StringVar(&searchZip, "zip", "", "Exact zip code")
	searchCmd.Flags().IntVar(&searchMinCapacity, "min-capacity", 0, "Minimum bed count (inclusive)")
	searchCmd.Flags().IntVar(&searchMaxCapacity, "max-capacity", 0, "Maximum bed count (inclusive)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Result cap (default 50)")
	searchCmd.Flags().StringVar(&searchConfigPath, "config", "", "Path to JSON config file")
	searchCmd.Flags().StringVar(&searchDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(searchConfigPath, searchDatabaseURL)
	if err != nil {
		return err
	}
	if err := requireDatabaseURL(cfg); err != nil {
		return err
	}

	criteria := types.SearchCriteria{
		Name:  searchName,
		City:  searchCity,
		State: searchState,
		Zip:   searchZip,
		Limit: searchLimit,
	}
	if criteria.Limit == 0 && cfg.DefaultSearchLimit > 0 {
		criteria.Limit = cfg.DefaultSearchLimit
	}
	// Capacity bounds only count when the flag was actually set, so a
	// legitimate 0 bound is distinguishable from "not supplied".
	if cmd.Flags().Changed("min-capacity") {
		criteria.MinCapacity = &searchMinCapacity
	}
	if cmd.Flags().Changed("max-capacity") {
		criteria.MaxCapacity = &searchMaxCapacity
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	records, err := search.NewService(database).Search(ctx, criteria)
	if err != nil {
		return err
	}
	return printJSON(records)
}
