package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/facility-resolver/internal/db"
	"github.com/jonathan/facility-resolver/internal/geosearch"
	"github.com/jonathan/facility-resolver/internal/observability"
)

var nearbyCmd = &cobra.Command{
	Use:   "nearby",
	Short: "Find facilities within a radius of a coordinate",
	RunE:  runNearby,
}

var (
	nearbyLat         float64
	nearbyLon         float64
	nearbyRadius      float64
	nearbyLimit       int
	nearbyConfigPath  string
	nearbyDatabaseURL string
	nearbyVerbose     bool
)

func init() {
	nearbyCmd.Flags().Float64Var(&nearbyLat, "lat", 0, "Latitude of the search center (required)")
	nearbyCmd.Flags().Float64Var(&nearbyLon, "lon", 0, "Longitude of the search center (required)")
	nearbyCmd.Flags().Float64Var(&nearbyRadius, "radius", 0, "Search radius in miles (default 25)")
	nearbyCmd.Flags().IntVar(&nearbyLimit, "limit", 0, "Result cap (default 50)")
	nearbyCmd.Flags().StringVar(&nearbyConfigPath, "config", "", "Path to JSON config file")
	nearbyCmd.Flags().StringVar(&nearbyDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL)")
	nearbyCmd.Flags().BoolVarP(&nearbyVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	rootCmd.AddCommand(nearbyCmd)
}

func runNearby(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
		return fmt.Errorf("--lat and --lon are required")
	}

	cfg, err := resolveConfig(nearbyConfigPath, nearbyDatabaseURL)
	if err != nil {
		return err
	}
	if err := requireDatabaseURL(cfg); err != nil {
		return err
	}

	radius := nearbyRadius
	if radius == 0 && cfg.DefaultRadiusMiles > 0 {
		radius = cfg.DefaultRadiusMiles
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	results, err := geosearch.NewService(database).Nearby(ctx, nearbyLat, nearbyLon, radius, nearbyLimit)
	if err != nil {
		return err
	}
	if nearbyVerbose {
		observability.NewPrinter(os.Stderr).PrintGeoResults(nearbyLat, nearbyLon, radius, results)
	}
	return printJSON(results)
}
