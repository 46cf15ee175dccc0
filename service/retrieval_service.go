package service

import (
	"context"
	"fmt"
	"log"

	"contractwise-backend/embedding"
	"contractwise-backend/rank"

	"github.com/google/uuid"
)

// RetrievalService answers natural-language questions by ranking the
// caller's chunks against the question embedding.
type RetrievalService struct {
	chunks   ChunkStore
	embedder embedding.Provider
	ranker   *rank.Ranker
}

// RetrievalServiceOption is a functional option for RetrievalService
type RetrievalServiceOption func(*RetrievalService)

// RetrievalWithChunkStore sets the chunk store
func RetrievalWithChunkStore(store ChunkStore) RetrievalServiceOption {
	return func(s *RetrievalService) {
		s.chunks = store
	}
}

// RetrievalWithEmbedder sets the embedding provider
func RetrievalWithEmbedder(p embedding.Provider) RetrievalServiceOption {
	return func(s *RetrievalService) {
		s.embedder = p
	}
}

// RetrievalWithRanker sets the similarity ranker
func RetrievalWithRanker(r *rank.Ranker) RetrievalServiceOption {
	return func(s *RetrievalService) {
		s.ranker = r
	}
}

// NewRetrievalService creates a new retrieval service
func NewRetrievalService(opts ...RetrievalServiceOption) *RetrievalService {
	s := &RetrievalService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.ranker == nil {
		s.ranker = rank.New(rank.DefaultTopK)
	}
	return s
}

// RankedChunk is one retrieved chunk in an answer. Similarity is rounded to
// 3 decimal digits for presentation.
type RankedChunk struct {
	Text       string                 `json:"text"`
	Similarity float64                `json:"similarity"`
	Metadata   map[string]interface{} `json:"metadata"`
}

// AnswerResult is a templated answer summary plus the ranked chunks backing
// it.
type AnswerResult struct {
	Answer string        `json:"answer"`
	Chunks []RankedChunk `json:"chunks"`
}

const previewLength = 100

// Answer embeds the question, loads the caller's chunks, ranks them, and
// assembles the response. A user with zero chunks yields ErrNoDocuments.
func (s *RetrievalService) Answer(ctx context.Context, userID uuid.UUID, question string) (*AnswerResult, error) {
	queryVec := s.embedder.Embed(question)

	chunks, err := s.chunks.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chunks: %w", err)
	}
	if len(chunks) == 0 {
		return nil, ErrNoDocuments
	}

	ranked := s.ranker.Rank(queryVec, chunks)

	invalid := 0
	for _, sc := range ranked {
		if !sc.Valid {
			invalid++
		}
	}
	if invalid > 0 {
		log.Printf("Warning: %d of %d ranked chunks for user %s had unscorable embeddings", invalid, len(ranked), userID)
	}

	result := &AnswerResult{
		Answer: fmt.Sprintf(
			"Based on your query, I found %d relevant clauses. Most relevant: '%s...'",
			len(ranked), preview(ranked[0].Chunk.Text),
		),
		Chunks: make([]RankedChunk, 0, len(ranked)),
	}
	for _, sc := range ranked {
		result.Chunks = append(result.Chunks, RankedChunk{
			Text:       sc.Chunk.Text,
			Similarity: rank.Round3(sc.Score),
			Metadata:   sc.Chunk.Metadata,
		})
	}

	return result, nil
}

// preview returns the first previewLength characters of the text
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength])
}
