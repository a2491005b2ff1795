package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/job-recommender/internal/embedding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingProvider struct{}

func (failingProvider) Embed(context.Context, []string) ([][]float32, error) {
	return nil, errors.New("model unavailable")
}

func TestNew_EmbedsEveryJob(t *testing.T) {
	jobs := []Job{
		{ID: 0, Title: "Data Analyst", Location: "Hyderabad", Description: "python sql"},
		{ID: 1, Title: "Chef", Location: "Mumbai", Description: "cooking"},
	}

	cat, err := New(context.Background(), jobs, embedding.NewHashingProvider(64))
	require.NoError(t, err)

	assert.Equal(t, 2, cat.Len())
	assert.Len(t, cat.Vectors(), 2)
	assert.Equal(t, "Chef", cat.Job(1).Title)
}

func TestNew_EmbeddingFailureIsFatal(t *testing.T) {
	jobs := []Job{{ID: 0, Title: "Chef", Description: "cooking"}}

	_, err := New(context.Background(), jobs, failingProvider{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to embed job catalog")
}

func TestNew_EmptyCatalog(t *testing.T) {
	cat, err := New(context.Background(), nil, embedding.NewHashingProvider(16))
	require.NoError(t, err)
	assert.Zero(t, cat.Len())
}
