// Package similarity computes cosine similarity between embedding vectors.
package similarity

import "math"

// Cosine returns the cosine similarity between two vectors.
//
// A zero-norm vector (including the zero-length vector) yields 0 rather than
// a division-by-zero; a neutral document should score as unrelated, not fail.
// Vectors of different lengths also yield 0 since they cannot come from the
// same embedding space.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Against scores a query vector against every catalog vector in one pass,
// returning one score per vector in catalog order. The ranking step needs
// the full score distribution, so there is no early exit.
func Against(query []float32, vectors [][]float32) []float64 {
	scores := make([]float64, len(vectors))
	for i, vec := range vectors {
		scores[i] = Cosine(query, vec)
	}
	return scores
}
