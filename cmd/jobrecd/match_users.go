package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-recommender/internal/catalog"
	"github.com/jonathan/job-recommender/internal/config"
	"github.com/jonathan/job-recommender/internal/ranking"
	"github.com/jonathan/job-recommender/internal/types"
	"github.com/spf13/cobra"
)

var (
	muConfigPath    string
	muCatalogPath   string
	muDatabaseURL   string
	muAPIKey        string
	muModel         string
	muSeekersPath   string
	muTopN          int
	muMinSkillMatch float64
)

var matchUsersCmd = &cobra.Command{
	Use:   "match-users",
	Short: "Batch-rank the catalog for stored seeker profiles",
	Long: `Load stored seeker profiles from a CSV, embed their resumes into the
same space as the job catalog, and print each seeker's shortlist. This mode
uses the hard-filter policy: jobs failing the location or skill criterion are
excluded rather than penalized, so a seeker's list may be short or empty.`,
	RunE: runMatchUsers,
}

// seekerMatches is one seeker's shortlist in the batch output.
type seekerMatches struct {
	SeekerID int            `json:"seeker_id"`
	Results  []types.Result `json:"results"`
}

func init() {
	matchUsersCmd.Flags().StringVar(&muConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	matchUsersCmd.Flags().StringVar(&muCatalogPath, "catalog", "", "Path to job catalog CSV (mutually exclusive with --database-url)")
	matchUsersCmd.Flags().StringVar(&muDatabaseURL, "database-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	matchUsersCmd.Flags().StringVar(&muAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	matchUsersCmd.Flags().StringVar(&muModel, "model", "", "Embedding model name")
	matchUsersCmd.Flags().StringVar(&muSeekersPath, "seekers", "", "Path to seeker profiles CSV (required)")
	matchUsersCmd.Flags().IntVar(&muTopN, "top-n", ranking.DefaultTopN, "Maximum number of results per seeker")
	matchUsersCmd.Flags().Float64Var(&muMinSkillMatch, "min-skill-match", ranking.DefaultExcludeMinSkillMatch, "Skill match threshold in [0,100]")
	_ = matchUsersCmd.MarkFlagRequired("seekers")
	rootCmd.AddCommand(matchUsersCmd)
}

func runMatchUsers(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(muConfigPath, config.Config{
		Catalog:        muCatalogPath,
		DatabaseURL:    muDatabaseURL,
		APIKey:         muAPIKey,
		EmbeddingModel: muModel,
	})
	if err != nil {
		return err
	}

	seekers, err := catalog.LoadSeekersCSV(muSeekersPath)
	if err != nil {
		return fmt.Errorf("failed to load seekers: %w", err)
	}

	ctx := context.Background()
	cat, provider, err := buildCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	// Seeker resumes embed in one batch, mirroring the job catalog load.
	resumes := make([]string, len(seekers))
	for i, seeker := range seekers {
		resumes[i] = seeker.Resume
	}
	seekerVectors, err := provider.Embed(ctx, resumes)
	if err != nil {
		return fmt.Errorf("failed to embed seeker resumes: %w", err)
	}
	if len(seekerVectors) != len(seekers) {
		return fmt.Errorf("seeker embedding count mismatch: got %d vectors for %d seekers", len(seekerVectors), len(seekers))
	}

	opts := ranking.Options{
		TopN:          muTopN,
		MinSkillMatch: muMinSkillMatch,
		Policy:        ranking.PolicyExclude,
	}
	engine := ranking.New(cat, provider)

	output := make([]seekerMatches, 0, len(seekers))
	for i, seeker := range seekers {
		profile := types.Profile{Skills: seeker.Skills, Location: seeker.Location}
		results, err := engine.RecommendVector(seekerVectors[i], profile, opts)
		if err != nil {
			return fmt.Errorf("failed to rank jobs for seeker %d: %w", seeker.ID, err)
		}
		output = append(output, seekerMatches{SeekerID: seeker.ID, Results: results})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
