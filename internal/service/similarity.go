package service

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// similarity maps the euclidean distance of two embeddings onto [0, 1]:
// max(0, 1 - d). Identical vectors score 1.
func similarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyEmbedding
	}
	if len(a) != len(b) {
		return 0, ErrEmbeddingLengthMismatch
	}

	d := floats.Distance(widen(a), widen(b), 2)
	if math.IsNaN(d) {
		return 0, ErrInvalidEmbedding
	}
	return math.Max(0, 1-d), nil
}

// confidence is the similarity as a rounded percentage.
func confidence(similarity float64) int {
	return int(math.Round(similarity * 100))
}

func widen(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}
