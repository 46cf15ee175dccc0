// Package embedding maps text to fixed-dimension vectors. The retrieval core
// only depends on the Provider interface so a real embedding model can
// replace the deterministic stand-in without touching callers.
package embedding

import (
	"hash/fnv"
	"math/rand"
)

// Provider converts text into a numeric vector representation. Embed must be
// deterministic for a given text and provider version, must not fail, and
// must not depend on mutable state.
type Provider interface {
	Embed(text string) []float64
	Dimension() int
}

// DefaultDimension matches the stand-in chunker's stored embeddings.
const DefaultDimension = 4

// HashProvider is a deterministic stand-in embedding model: the text hash
// seeds a PRNG that emits the vector components. Same text, same vector,
// across processes and restarts.
type HashProvider struct {
	dim int
}

// NewHashProvider creates a hash-seeded provider of the given dimension.
// Non-positive dimensions fall back to DefaultDimension.
func NewHashProvider(dim int) *HashProvider {
	if dim <= 0 {
		dim = DefaultDimension
	}
	return &HashProvider{dim: dim}
}

// Embed returns a deterministic pseudo-random vector for the text. Empty
// text still yields a valid vector.
func (p *HashProvider) Embed(text string) []float64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	vec := make([]float64, p.dim)
	for i := range vec {
		vec[i] = rng.Float64()
	}
	return vec
}

// Dimension returns the fixed vector length this provider emits.
func (p *HashProvider) Dimension() int {
	return p.dim
}
