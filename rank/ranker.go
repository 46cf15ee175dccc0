// Package rank scores chunks against a query embedding by cosine similarity
// and selects the top results. It performs no I/O.
package rank

import (
	"math"
	"sort"

	"contractwise-backend/models"
)

const (
	// InvalidScore is assigned to chunks whose stored embedding cannot be
	// scored (empty, mismatched dimension, or zero norm). It equals the
	// minimum of the cosine range so invalid chunks always sort last.
	InvalidScore = -1.0

	// DefaultTopK is the number of chunks returned when no explicit limit
	// is configured.
	DefaultTopK = 3
)

// ScoredChunk pairs a chunk with its relevance score. Valid is false when
// the score is the sentinel rather than a real cosine similarity.
type ScoredChunk struct {
	Chunk models.Chunk
	Score float64
	Valid bool
}

// Ranker computes top-K cosine rankings.
type Ranker struct {
	k int
}

// New creates a ranker returning at most k results. Non-positive k falls
// back to DefaultTopK.
func New(k int) *Ranker {
	if k <= 0 {
		k = DefaultTopK
	}
	return &Ranker{k: k}
}

// TopK returns the configured result limit.
func (r *Ranker) TopK() int {
	return r.k
}

// Rank scores every chunk against the query vector and returns the top-K in
// descending score order. Ties keep input order (stable sort), which makes
// rankings deterministic for a fixed chunk ordering. Chunks with unscorable
// embeddings receive InvalidScore and sort last; they are only included when
// fewer than K valid candidates exist.
func (r *Ranker) Rank(query []float64, chunks []models.Chunk) []ScoredChunk {
	scored := make([]ScoredChunk, 0, len(chunks))
	for _, c := range chunks {
		score, ok := Cosine(query, c.Embedding)
		if !ok {
			score = InvalidScore
		}
		scored = append(scored, ScoredChunk{Chunk: c, Score: score, Valid: ok})
	}

	// Sort on full precision; rounding is applied only when responses are
	// assembled.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > r.k {
		scored = scored[:r.k]
	}
	return scored
}

// Cosine computes the cosine similarity of a and b. ok is false when either
// vector is empty, the dimensions differ, or either norm is zero; the caller
// decides what an unscorable pair is worth.
func Cosine(a, b []float64) (float64, bool) {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}

	score := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Guard against floating-point drift outside [-1, 1]
	if score > 1 {
		score = 1
	} else if score < -1 {
		score = -1
	}
	return score, true
}

// Round3 rounds a score to 3 decimal digits for presentation.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
