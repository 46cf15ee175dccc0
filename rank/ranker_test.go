package rank

import (
	"testing"

	"contractwise-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunkWithVector(text string, vec []float64) models.Chunk {
	return models.Chunk{
		ID:        uuid.New(),
		Text:      text,
		Embedding: models.Embedding(vec),
	}
}

func TestCosineIdenticalVectors(t *testing.T) {
	score, ok := Cosine([]float64{0.3, 0.7, 0.1}, []float64{0.3, 0.7, 0.1})
	require.True(t, ok)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestCosineOppositeVectors(t *testing.T) {
	score, ok := Cosine([]float64{1, 2}, []float64{-1, -2})
	require.True(t, ok)
	assert.InDelta(t, -1.0, score, 1e-9)
}

func TestCosineOrthogonalVectors(t *testing.T) {
	score, ok := Cosine([]float64{1, 0}, []float64{0, 1})
	require.True(t, ok)
	assert.InDelta(t, 0.0, score, 1e-9)
}

func TestCosineBounds(t *testing.T) {
	pairs := [][2][]float64{
		{{0.12, -0.45, 0.91, 0.33}, {0.5, 0.1, 0.9, 0.2}},
		{{0.01, 0.22, -0.87, 0.44}, {1, 1, 1, 1}},
		{{-3, 2, -7, 0.5}, {4, -9, 0.01, 2}},
		{{1e-8, 1e8, -1e-8, 1e8}, {1e8, -1e-8, 1e8, 1e-8}},
	}
	for _, p := range pairs {
		score, ok := Cosine(p[0], p[1])
		require.True(t, ok)
		assert.GreaterOrEqual(t, score, -1.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestCosineUnscorable(t *testing.T) {
	query := []float64{1, 2, 3}

	cases := map[string][]float64{
		"empty vector":       {},
		"dimension mismatch": {1, 2},
		"zero norm":          {0, 0, 0},
	}
	for name, vec := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := Cosine(query, vec)
			assert.False(t, ok)
		})
	}

	_, ok := Cosine(nil, []float64{1, 2})
	assert.False(t, ok, "empty query must not be scorable")
	_, ok = Cosine([]float64{0, 0}, []float64{1, 2})
	assert.False(t, ok, "zero-norm query must not be scorable")
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	query := []float64{1, 0}
	chunks := []models.Chunk{
		chunkWithVector("anti", []float64{-1, 0}),
		chunkWithVector("aligned", []float64{2, 0}),
		chunkWithVector("orthogonal", []float64{0, 1}),
	}

	ranked := New(3).Rank(query, chunks)
	require.Len(t, ranked, 3)
	assert.Equal(t, "aligned", ranked[0].Chunk.Text)
	assert.Equal(t, "orthogonal", ranked[1].Chunk.Text)
	assert.Equal(t, "anti", ranked[2].Chunk.Text)
}

func TestRankInvalidChunksExcludedWhenEnoughValid(t *testing.T) {
	query := []float64{1, 0}
	chunks := []models.Chunk{
		chunkWithVector("broken", nil),
		chunkWithVector("a", []float64{1, 0.1}),
		chunkWithVector("b", []float64{1, 0.2}),
		chunkWithVector("c", []float64{1, 0.3}),
	}

	ranked := New(3).Rank(query, chunks)
	require.Len(t, ranked, 3)
	for _, sc := range ranked {
		assert.True(t, sc.Valid)
		assert.NotEqual(t, "broken", sc.Chunk.Text)
	}
}

func TestRankSentinelFillsShortResults(t *testing.T) {
	// One valid and one invalid chunk: top-3 returns both, valid first,
	// invalid carrying the sentinel instead of failing the request.
	query := []float64{0.5, 0.1, 0.9, 0.2}
	valid := chunkWithVector("termination clause", []float64{0.12, -0.45, 0.91, 0.33})
	invalid := chunkWithVector("corrupted", nil)

	ranked := New(3).Rank(query, []models.Chunk{valid, invalid})
	require.Len(t, ranked, 2)

	assert.Equal(t, "termination clause", ranked[0].Chunk.Text)
	assert.True(t, ranked[0].Valid)
	assert.Greater(t, ranked[0].Score, InvalidScore)

	assert.Equal(t, "corrupted", ranked[1].Chunk.Text)
	assert.False(t, ranked[1].Valid)
	assert.Equal(t, InvalidScore, ranked[1].Score)
}

func TestRankResultCountIsMinOfKAndChunks(t *testing.T) {
	query := []float64{1, 0}
	chunks := []models.Chunk{
		chunkWithVector("a", []float64{1, 0}),
		chunkWithVector("b", []float64{0, 1}),
	}

	assert.Len(t, New(3).Rank(query, chunks), 2)
	assert.Len(t, New(1).Rank(query, chunks), 1)
	assert.Len(t, New(3).Rank(query, nil), 0)
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	query := []float64{1, 0}
	first := chunkWithVector("first", []float64{3, 0})
	second := chunkWithVector("second", []float64{5, 0}) // same cosine as first

	for i := 0; i < 10; i++ {
		ranked := New(2).Rank(query, []models.Chunk{first, second})
		require.Len(t, ranked, 2)
		assert.Equal(t, "first", ranked[0].Chunk.Text)
		assert.Equal(t, "second", ranked[1].Chunk.Text)
	}
}

func TestRankDeterministic(t *testing.T) {
	query := []float64{0.4, -0.2, 0.9, 0.1}
	chunks := []models.Chunk{
		chunkWithVector("a", []float64{0.12, -0.45, 0.91, 0.33}),
		chunkWithVector("b", []float64{0.01, 0.22, -0.87, 0.44}),
		chunkWithVector("c", nil),
	}

	first := New(3).Rank(query, chunks)
	second := New(3).Rank(query, chunks)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Chunk.ID, second[i].Chunk.ID)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}

func TestNewFallsBackToDefaultTopK(t *testing.T) {
	assert.Equal(t, DefaultTopK, New(0).TopK())
	assert.Equal(t, DefaultTopK, New(-5).TopK())
	assert.Equal(t, 7, New(7).TopK())
}

func TestRound3(t *testing.T) {
	assert.Equal(t, 0.913, Round3(0.91251))
	assert.Equal(t, -1.0, Round3(-1.0))
	assert.Equal(t, 0.0, Round3(0.0001))
	assert.Equal(t, 1.0, Round3(0.9999))
}
