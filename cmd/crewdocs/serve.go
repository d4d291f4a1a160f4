package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gabriel/crewdocs/internal/server"
)

var (
	servePort      int
	serveHierarchy string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for candidates, vacancies, requirement matrices and comparison runs.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveHierarchy, "hierarchy", "", "Path to a custom code hierarchy JSON file (optional)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Get database URL from environment
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// The API key is optional: without it the AI name comparer is skipped
	// and only the deterministic strategies run.
	apiKey := os.Getenv("GEMINI_API_KEY")

	cfg := server.Config{
		Port:          servePort,
		DatabaseURL:   databaseURL,
		GeminiAPIKey:  apiKey,
		HierarchyFile: serveHierarchy,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
