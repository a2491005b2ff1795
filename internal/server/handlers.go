package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/job-recommender/internal/catalog"
	"github.com/jonathan/job-recommender/internal/ranking"
	"github.com/jonathan/job-recommender/internal/types"
)

// RecommendRequest represents the request body for /recommend. Profile
// fields are all optional; empty fields are valid inputs per the ranking
// policy. Ranking knobs use pointers so "absent" and "zero" stay
// distinguishable: an absent top_n means the default, an explicit 0 means an
// empty result list.
type RecommendRequest struct {
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Location   string `json:"location"`

	TopN          *int     `json:"top_n,omitempty"`
	MinSkillMatch *float64 `json:"min_skill_match,omitempty" validate:"omitempty,gte=0,lte=100"`
	Policy        string   `json:"policy,omitempty" validate:"omitempty,oneof=penalize exclude"`
}

// RecommendResponse represents the response for /recommend
type RecommendResponse struct {
	RequestID string         `json:"request_id"`
	Policy    string         `json:"policy"`
	Count     int            `json:"count"`
	Results   []types.Result `json:"results"`
}

// JobSummary is the catalog projection returned by the jobs endpoints.
type JobSummary struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

// handleRecommend ranks the catalog for the submitted profile.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			verr := &ErrValidation{Field: invalid[0].Field(), Message: "failed " + invalid[0].Tag() + " validation"}
			s.errorResponse(w, HTTPStatus(verr), verr.Error())
			return
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	policy, err := ranking.ParsePolicy(req.Policy)
	if err != nil {
		verr := &ErrValidation{Field: "policy", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	opts := ranking.DefaultOptions(policy)
	if req.TopN != nil {
		opts.TopN = *req.TopN
	}
	if req.MinSkillMatch != nil {
		opts.MinSkillMatch = *req.MinSkillMatch
	}

	profile := types.Profile{
		Skills:     req.Skills,
		Experience: req.Experience,
		Location:   req.Location,
	}

	// Bound the embedding call; the ranking itself is in-memory and fast.
	ctx, cancel := context.WithTimeout(r.Context(), s.embedTimeout)
	defer cancel()

	results, err := s.engine.Recommend(ctx, profile, opts)
	if err != nil {
		// An embedding failure must reach the caller as an error, never as
		// an empty success.
		eerr := &ErrEmbedding{Cause: err}
		log.Printf("[%s] recommend failed: %v", requestID, err)
		s.errorResponse(w, HTTPStatus(eerr), eerr.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, RecommendResponse{
		RequestID: requestID,
		Policy:    string(opts.Policy),
		Count:     len(results),
		Results:   results,
	})
}

// handleListJobs returns the catalog as summaries.
func (s *Server) handleListJobs(w http.ResponseWriter, _ *http.Request) {
	jobs := s.catalog.Jobs()
	summaries := make([]JobSummary, 0, len(jobs))
	for _, job := range jobs {
		summaries = append(summaries, summarize(job))
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"count": len(summaries),
		"jobs":  summaries,
	})
}

// handleGetJob returns a single job by its catalog ID.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		verr := &ErrValidation{Field: "id", Message: "must be an integer"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	if id < 0 || id >= s.catalog.Len() {
		nferr := &ErrJobNotFound{JobID: id}
		s.errorResponse(w, HTTPStatus(nferr), nferr.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, summarize(s.catalog.Job(id)))
}

func summarize(job catalog.Job) JobSummary {
	return JobSummary{ID: job.ID, Title: job.Title, Location: job.Location}
}
