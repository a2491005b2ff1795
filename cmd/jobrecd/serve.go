package main

import (
	"context"
	"fmt"

	"github.com/jonathan/job-recommender/internal/config"
	"github.com/jonathan/job-recommender/internal/ranking"
	"github.com/jonathan/job-recommender/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveConfigPath  string
	serveCatalogPath string
	serveDatabaseURL string
	serveAPIKey      string
	serveModel       string
	servePort        int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Load the job catalog, embed it once, and serve recommendation requests over HTTP.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().StringVar(&serveCatalogPath, "catalog", "", "Path to job catalog CSV (mutually exclusive with --database-url)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "database-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Embedding model name")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigPath, config.Config{
		Catalog:        serveCatalogPath,
		DatabaseURL:    serveDatabaseURL,
		APIKey:         serveAPIKey,
		EmbeddingModel: serveModel,
		Port:           servePort,
	})
	if err != nil {
		return err
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	cat, provider, err := buildCatalog(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	srv := server.New(server.Config{Port: cfg.Port}, cat, ranking.New(cat, provider))
	return srv.Start()
}
