// Package main provides the entry point for the facility resolver CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "facility_agent",
	Short: "Facility identity resolution and geospatial search",
	Long:  "Facility Resolver matches free-text facility names against the reference directory and runs structured and radius-based searches over it.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
