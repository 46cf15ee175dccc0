package repository

import (
	"context"
	"fmt"

	"contractwise-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChunkRepository handles database operations for document chunks
type ChunkRepository struct {
	db *pgxpool.Pool
}

// NewChunkRepository creates a new chunk repository
func NewChunkRepository(db *pgxpool.Pool) *ChunkRepository {
	return &ChunkRepository{db: db}
}

// Create appends one chunk record tagged with its owning document and user
func (r *ChunkRepository) Create(ctx context.Context, chunk *models.Chunk) error {
	query := `
		INSERT INTO chunks (
			chunk_id, doc_id, user_id, text_chunk, embedding, metadata
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRow(
		ctx, query,
		chunk.ID,
		chunk.DocID,
		chunk.UserID,
		chunk.Text,
		chunk.Embedding,
		chunk.Metadata,
	).Scan(&chunk.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create chunk: %w", err)
	}

	return nil
}

// ListByUserID retrieves all chunks belonging to a user. The ordering is
// fixed within a call (insertion order) so repeated rankings of the same
// data break ties identically.
func (r *ChunkRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Chunk, error) {
	query := `
		SELECT chunk_id, doc_id, user_id, text_chunk, embedding, metadata, created_at
		FROM chunks
		WHERE user_id = $1
		ORDER BY created_at, chunk_id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunks: %w", err)
	}
	defer rows.Close()

	var chunks []models.Chunk
	for rows.Next() {
		var chunk models.Chunk
		err := rows.Scan(
			&chunk.ID,
			&chunk.DocID,
			&chunk.UserID,
			&chunk.Text,
			&chunk.Embedding,
			&chunk.Metadata,
			&chunk.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chunk: %w", err)
		}
		chunks = append(chunks, chunk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chunks: %w", err)
	}

	return chunks, nil
}
