// Package main provides the entry point for the job recommender CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobrecd",
	Short: "Job recommendation engine",
	Long:  "jobrecd ranks job postings for a seeker profile by blending semantic text similarity with skill-overlap and location signals, serving results via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
