package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/job-recommender/internal/catalog"
	"github.com/jonathan/job-recommender/internal/config"
	"github.com/jonathan/job-recommender/internal/embedding"
)

// resolveConfig loads the optional config file and layers it under the
// supplied flag values, so flags win over file values and file values win
// over defaults.
func resolveConfig(configPath string, flags config.Config) (config.Config, error) {
	merged := flags

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		merged = flags.MergeWithDefaults(*fileCfg)
	}

	if merged.APIKey == "" {
		merged.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if merged.DatabaseURL == "" && merged.Catalog == "" {
		merged.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// buildCatalog loads jobs from the configured source and embeds them. This
// is the load-once startup step; any failure here is fatal to the command.
func buildCatalog(ctx context.Context, cfg config.Config) (*catalog.Catalog, embedding.Provider, error) {
	provider, err := embedding.NewProvider(ctx, &embedding.Config{
		Provider: embedding.ProviderGemini,
		Model:    cfg.EmbeddingModel,
	}, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create embedding provider: %w", err)
	}

	var jobs []catalog.Job
	switch {
	case cfg.Catalog != "":
		jobs, err = catalog.LoadCSV(cfg.Catalog)
	case cfg.DatabaseURL != "":
		jobs, err = catalog.LoadPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, nil, fmt.Errorf("no job source configured: set --catalog or --database-url")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load job catalog: %w", err)
	}

	cat, err := catalog.New(ctx, jobs, provider)
	if err != nil {
		return nil, nil, err
	}
	return cat, provider, nil
}
