// Package catalog provides the load-once, immutable job catalog with
// precomputed text embeddings.
package catalog

import (
	"context"
	"fmt"

	"github.com/jonathan/job-recommender/internal/embedding"
)

// Job is one posting in the catalog. ID is the zero-based load-order ordinal
// and is stable for the process lifetime. Fields are never mutated after
// load; the ranking engine reads jobs by index only.
type Job struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"-"`
}

// Catalog owns the loaded jobs and their embedding vectors. It is read-only
// after New returns, so any number of concurrent requests may share it
// without locking.
type Catalog struct {
	jobs    []Job
	vectors [][]float32
}

// New builds a catalog from loaded jobs, embedding every description in one
// batch pass through the provider. An embedding failure here is a startup
// failure: the process must not serve requests with a partially embedded
// catalog.
func New(ctx context.Context, jobs []Job, provider embedding.Provider) (*Catalog, error) {
	texts := make([]string, len(jobs))
	for i, job := range jobs {
		texts[i] = job.Description
	}

	vectors, err := provider.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed job catalog: %w", err)
	}
	if len(vectors) != len(jobs) {
		return nil, fmt.Errorf("catalog embedding count mismatch: got %d vectors for %d jobs", len(vectors), len(jobs))
	}

	return &Catalog{jobs: jobs, vectors: vectors}, nil
}

// Len returns the number of jobs in the catalog.
func (c *Catalog) Len() int {
	return len(c.jobs)
}

// Job returns the job at index i.
func (c *Catalog) Job(i int) Job {
	return c.jobs[i]
}

// Jobs returns all jobs in load order. Callers must treat the slice as
// read-only.
func (c *Catalog) Jobs() []Job {
	return c.jobs
}

// Vectors returns the precomputed embedding vectors in job order. Callers
// must treat the slice as read-only.
func (c *Catalog) Vectors() [][]float32 {
	return c.vectors
}
