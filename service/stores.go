package service

import (
	"context"

	"contractwise-backend/models"

	"github.com/google/uuid"
)

// The services depend on store interfaces rather than the concrete pgx
// repositories so the durable store stays an external collaborator. The
// repository package satisfies all three.

// UserStore persists user accounts. GetByUsername returns (nil, nil) when no
// such user exists.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// DocumentStore persists contract documents scoped to their owner. GetByID
// returns (nil, nil) when the document is absent or owned by another user.
type DocumentStore interface {
	Create(ctx context.Context, doc *models.Document) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Document, error)
	GetByID(ctx context.Context, docID, userID uuid.UUID) (*models.Document, error)
}

// ChunkStore persists document chunks. ListByUserID must return chunks in a
// stable order within a single call.
type ChunkStore interface {
	Create(ctx context.Context, chunk *models.Chunk) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Chunk, error)
}
