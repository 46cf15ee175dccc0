package repository

import (
	"context"
	"errors"
	"fmt"

	"contractwise-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepository handles database operations for contract documents
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document record
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (
			doc_id, user_id, filename, expiry_date, status, risk_score, storage_path
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING uploaded_on`

	err := r.db.QueryRow(
		ctx, query,
		doc.ID,
		doc.UserID,
		doc.Filename,
		doc.ExpiryDate,
		doc.Status,
		doc.RiskScore,
		doc.StoragePath,
	).Scan(&doc.UploadedOn)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	return nil
}

// ListByUserID retrieves all documents owned by a user
func (r *DocumentRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Document, error) {
	query := `
		SELECT doc_id, user_id, filename, uploaded_on, expiry_date, status, risk_score, storage_path
		FROM documents
		WHERE user_id = $1
		ORDER BY uploaded_on DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	docs := make([]*models.Document, 0)
	for rows.Next() {
		doc := &models.Document{}
		err := rows.Scan(
			&doc.ID,
			&doc.UserID,
			&doc.Filename,
			&doc.UploadedOn,
			&doc.ExpiryDate,
			&doc.Status,
			&doc.RiskScore,
			&doc.StoragePath,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// GetByID retrieves a document by ID, scoped to its owner. Returns
// (nil, nil) when the document does not exist or belongs to another user.
func (r *DocumentRepository) GetByID(ctx context.Context, docID, userID uuid.UUID) (*models.Document, error) {
	doc := &models.Document{}
	query := `
		SELECT doc_id, user_id, filename, uploaded_on, expiry_date, status, risk_score, storage_path
		FROM documents
		WHERE doc_id = $1 AND user_id = $2`

	err := r.db.QueryRow(ctx, query, docID, userID).Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Filename,
		&doc.UploadedOn,
		&doc.ExpiryDate,
		&doc.Status,
		&doc.RiskScore,
		&doc.StoragePath,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	return doc, nil
}
