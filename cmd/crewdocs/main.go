// Package main provides the entry point for the crew document screener.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crewdocs",
	Short: "Crew document screener",
	Long:  "Crewdocs reconciles candidate training certificates against vacancy requirement matrices, producing per-requirement verdicts and adherence summaries for compliance review.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
