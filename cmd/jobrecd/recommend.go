package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-recommender/internal/config"
	"github.com/jonathan/job-recommender/internal/observability"
	"github.com/jonathan/job-recommender/internal/ranking"
	"github.com/jonathan/job-recommender/internal/types"
	"github.com/spf13/cobra"
)

var (
	recConfigPath    string
	recCatalogPath   string
	recDatabaseURL   string
	recAPIKey        string
	recModel         string
	recSkills        string
	recExperience    string
	recLocation      string
	recTopN          int
	recMinSkillMatch float64
	recPolicy        string
	recVerbose       bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank the job catalog for a single seeker profile",
	Long: `Embed a seeker profile (skills, experience, location) and print the
top matching jobs as JSON. With --verbose the profile and shortlist are also
printed in a readable form.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	recommendCmd.Flags().StringVar(&recCatalogPath, "catalog", "", "Path to job catalog CSV (mutually exclusive with --database-url)")
	recommendCmd.Flags().StringVar(&recDatabaseURL, "database-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	recommendCmd.Flags().StringVar(&recAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	recommendCmd.Flags().StringVar(&recModel, "model", "", "Embedding model name")
	recommendCmd.Flags().StringVarP(&recSkills, "skills", "s", "", "Comma-separated skills, e.g. \"python, sql\"")
	recommendCmd.Flags().StringVarP(&recExperience, "experience", "e", "", "Experience text or years")
	recommendCmd.Flags().StringVarP(&recLocation, "location", "l", "", "Preferred location")
	recommendCmd.Flags().IntVar(&recTopN, "top-n", ranking.DefaultTopN, "Maximum number of results")
	recommendCmd.Flags().Float64Var(&recMinSkillMatch, "min-skill-match", -1, "Skill match threshold in [0,100] (default depends on policy)")
	recommendCmd.Flags().StringVar(&recPolicy, "policy", "", "Adjustment policy: penalize or exclude (default penalize)")
	recommendCmd.Flags().BoolVarP(&recVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(recConfigPath, config.Config{
		Catalog:        recCatalogPath,
		DatabaseURL:    recDatabaseURL,
		APIKey:         recAPIKey,
		EmbeddingModel: recModel,
		Verbose:        recVerbose,
	})
	if err != nil {
		return err
	}

	policy, err := ranking.ParsePolicy(recPolicy)
	if err != nil {
		return err
	}
	opts := ranking.DefaultOptions(policy)
	opts.TopN = recTopN
	if recMinSkillMatch >= 0 {
		opts.MinSkillMatch = recMinSkillMatch
	}

	ctx := context.Background()
	cat, provider, err := buildCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	profile := types.Profile{
		Skills:     recSkills,
		Experience: recExperience,
		Location:   recLocation,
	}

	printer := observability.NewPrinter(os.Stderr)
	if cfg.Verbose {
		printer.PrintProfile(profile)
	}

	results, err := ranking.New(cat, provider).Recommend(ctx, profile, opts)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	if cfg.Verbose {
		printer.PrintResults(results)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
