package embedding

import (
	"context"
	"hash/fnv"
	"regexp"
	"strings"
)

// DefaultHashingDimensions is the vector length for the hashing provider.
const DefaultHashingDimensions = 256

var hashingTokenPattern = regexp.MustCompile(`\w+`)

// HashingProvider is a deterministic, offline bag-of-words provider using
// the hashing trick: every lower-cased word token increments a bucket chosen
// by its FNV-1a hash. Identical input always produces identical vectors, so
// rankings computed with it are reproducible byte for byte. It exists for
// environments without an API key and for tests; the semantic quality is
// deliberately modest.
type HashingProvider struct {
	dimensions int
}

// NewHashingProvider creates a hashing provider with the given vector length.
// Non-positive lengths fall back to DefaultHashingDimensions.
func NewHashingProvider(dimensions int) *HashingProvider {
	if dimensions <= 0 {
		dimensions = DefaultHashingDimensions
	}
	return &HashingProvider{dimensions: dimensions}
}

// Embed returns one vector per text. Text with no word tokens embeds to
// the zero vector, which the similarity layer scores as 0.
func (p *HashingProvider) Embed(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = p.embedOne(text)
	}
	return vectors, nil
}

func (p *HashingProvider) embedOne(text string) []float32 {
	vec := make([]float32, p.dimensions)
	for _, token := range hashingTokenPattern.FindAllString(strings.ToLower(text), -1) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(token))
		vec[int(h.Sum32())%p.dimensions]++
	}
	return vec
}
