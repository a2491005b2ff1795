package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashingProvider_OneVectorPerTextInOrder(t *testing.T) {
	p := NewHashingProvider(64)

	vectors, err := p.Embed(context.Background(), []string{"python sql", "cooking", ""})
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	for _, vec := range vectors {
		assert.Len(t, vec, 64)
	}
}

func TestHashingProvider_Deterministic(t *testing.T) {
	p := NewHashingProvider(128)

	a, err := p.Embed(context.Background(), []string{"python sql analysis"})
	require.NoError(t, err)
	b, err := p.Embed(context.Background(), []string{"python sql analysis"})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestHashingProvider_EmptyTextIsZeroVector(t *testing.T) {
	p := NewHashingProvider(32)

	vectors, err := p.Embed(context.Background(), []string{""})
	require.NoError(t, err)

	for _, v := range vectors[0] {
		assert.Zero(t, v)
	}
}

func TestHashingProvider_DistinctTextsDiffer(t *testing.T) {
	p := NewHashingProvider(256)

	vectors, err := p.Embed(context.Background(), []string{"python sql", "cooking baking"})
	require.NoError(t, err)

	assert.NotEqual(t, vectors[0], vectors[1])
}

func TestHashingProvider_NonPositiveDimensionsFallBack(t *testing.T) {
	p := NewHashingProvider(0)

	vectors, err := p.Embed(context.Background(), []string{"go"})
	require.NoError(t, err)
	assert.Len(t, vectors[0], DefaultHashingDimensions)
}

func TestNewProvider_FallsBackWithoutAPIKey(t *testing.T) {
	p, err := NewProvider(context.Background(), DefaultConfig(), "")
	require.NoError(t, err)

	_, ok := p.(*HashingProvider)
	assert.True(t, ok)
}
