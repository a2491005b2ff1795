// Package ranking implements the recommendation engine: it blends semantic
// similarity with skill-overlap and location signals and turns raw scores
// into a bounded, ordered shortlist.
package ranking

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/job-recommender/internal/catalog"
	"github.com/jonathan/job-recommender/internal/embedding"
	"github.com/jonathan/job-recommender/internal/similarity"
	"github.com/jonathan/job-recommender/internal/skills"
	"github.com/jonathan/job-recommender/internal/types"
)

// Penalty multipliers for the soft-penalty policy. Both can stack on the
// same job.
const (
	locationPenalty = 0.8
	skillPenalty    = 0.7
)

// Engine ranks catalog jobs for a query profile. It holds only immutable
// shared state (the catalog and the provider), so one Engine serves any
// number of concurrent requests; every call allocates its own score and
// result slices.
type Engine struct {
	catalog  *catalog.Catalog
	provider embedding.Provider
}

// New creates a ranking engine over an already-loaded catalog.
func New(cat *catalog.Catalog, provider embedding.Provider) *Engine {
	return &Engine{catalog: cat, provider: provider}
}

// scored is the per-job, per-request scoring record. Ordering uses the
// unrounded adjusted score; raw similarity and skill match survive into the
// projected result.
type scored struct {
	jobIdx     int
	raw        float64
	skillMatch float64
	adjusted   float64
}

// Recommend embeds the profile's query text and ranks the whole catalog
// against it. An embedding failure is returned to the caller as an error,
// never translated into an empty result list.
func (e *Engine) Recommend(ctx context.Context, profile types.Profile, opts Options) ([]types.Result, error) {
	vectors, err := e.provider.Embed(ctx, []string{profile.QueryText()})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query profile: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("query embedding count mismatch: got %d vectors", len(vectors))
	}

	return e.RecommendVector(vectors[0], profile, opts)
}

// RecommendVector ranks the catalog for an already-embedded query vector.
// It is the entry point for the offline batch mode, where stored seekers are
// pre-embedded into the same space as the jobs; Recommend delegates here
// after the embedding call. The computation is pure and synchronous.
func (e *Engine) RecommendVector(queryVec []float32, profile types.Profile, opts Options) ([]types.Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	rawScores := similarity.Against(queryVec, e.catalog.Vectors())

	profileLocation := strings.ToLower(profile.Location)

	records := make([]scored, 0, len(rawScores))
	for i, raw := range rawScores {
		job := e.catalog.Job(i)

		locationMiss := profileLocation != "" &&
			!strings.Contains(strings.ToLower(job.Location), profileLocation)
		skillMatch := skills.MatchPercent(profile.Skills, job.Description)
		skillMiss := skillMatch < opts.MinSkillMatch

		adjusted := raw
		switch opts.Policy {
		case PolicyExclude:
			if locationMiss || skillMiss {
				continue
			}
		default: // PolicyPenalize
			if locationMiss {
				adjusted *= locationPenalty
			}
			if skillMiss {
				adjusted *= skillPenalty
			}
		}

		records = append(records, scored{
			jobIdx:     i,
			raw:        raw,
			skillMatch: skillMatch,
			adjusted:   adjusted,
		})
	}

	// Stable sort: jobs tying on adjusted score keep catalog order, so a
	// rerun with identical inputs reproduces the same list byte for byte.
	sort.SliceStable(records, func(a, b int) bool {
		return records[a].adjusted > records[b].adjusted
	})

	count := min(opts.TopN, len(records))
	if count < 0 {
		count = 0
	}

	results := make([]types.Result, 0, count)
	for _, rec := range records[:count] {
		job := e.catalog.Job(rec.jobIdx)
		results = append(results, types.Result{
			JobID:      job.ID,
			Title:      job.Title,
			Location:   job.Location,
			Skills:     profile.Skills,
			Similarity: round(rec.raw, 3),
			SkillMatch: round(rec.skillMatch, 2),
		})
	}
	return results, nil
}

// round rounds half away from zero to the given number of decimal digits.
func round(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}
