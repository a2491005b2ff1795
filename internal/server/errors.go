// Package server provides the HTTP REST API for the job recommender.
package server

import (
	"fmt"
	"net/http"
)

// ErrEmbedding indicates the embedding provider failed or timed out for a
// request. This is a request-level failure surfaced to the caller; it must
// never be flattened into an empty result list.
type ErrEmbedding struct {
	Cause error
}

func (e *ErrEmbedding) Error() string {
	return fmt.Sprintf("embedding provider failed: %v", e.Cause)
}

func (e *ErrEmbedding) Unwrap() error {
	return e.Cause
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrJobNotFound indicates a catalog lookup for an unknown job ID
type ErrJobNotFound struct {
	JobID int
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %d", e.JobID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrJobNotFound:
		return http.StatusNotFound
	case *ErrEmbedding:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
