package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"contractwise-backend/chunker"
	"contractwise-backend/embedding"
	"contractwise-backend/models"
	"contractwise-backend/storage"

	"github.com/google/uuid"
)

// IngestService runs the document ingestion pipeline: persist the document,
// split it into chunks, embed each chunk, and persist the chunks tagged with
// the owning document and user.
type IngestService struct {
	documents DocumentStore
	chunks    ChunkStore
	chunker   chunker.Chunker
	embedder  embedding.Provider
	archive   storage.Storage
}

// IngestServiceOption is a functional option for IngestService
type IngestServiceOption func(*IngestService)

// IngestWithDocumentStore sets the document store
func IngestWithDocumentStore(store DocumentStore) IngestServiceOption {
	return func(s *IngestService) {
		s.documents = store
	}
}

// IngestWithChunkStore sets the chunk store
func IngestWithChunkStore(store ChunkStore) IngestServiceOption {
	return func(s *IngestService) {
		s.chunks = store
	}
}

// IngestWithChunker sets the document chunker
func IngestWithChunker(c chunker.Chunker) IngestServiceOption {
	return func(s *IngestService) {
		s.chunker = c
	}
}

// IngestWithEmbedder sets the embedding provider
func IngestWithEmbedder(p embedding.Provider) IngestServiceOption {
	return func(s *IngestService) {
		s.embedder = p
	}
}

// IngestWithArchive sets the raw-content archive storage. Optional: when
// unset, uploads with inline content skip archival.
func IngestWithArchive(store storage.Storage) IngestServiceOption {
	return func(s *IngestService) {
		s.archive = store
	}
}

// NewIngestService creates a new ingest service
func NewIngestService(opts ...IngestServiceOption) *IngestService {
	s := &IngestService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UploadRequest describes one contract upload.
type UploadRequest struct {
	Filename   string
	ExpiryDate *string
	Status     string
	RiskScore  string
	Content    string
}

// IngestResult is the persisted document plus the chunk records that were
// successfully written.
type IngestResult struct {
	Document *models.Document
	Chunks   []models.Chunk
}

// Ingest persists a new document and its chunks for the given user. Document
// persistence failure aborts with ErrIngestion. Chunk writes are best-effort:
// a failed write is logged and skipped, without rolling back the document or
// the other chunks.
func (s *IngestService) Ingest(ctx context.Context, userID uuid.UUID, req UploadRequest) (*IngestResult, error) {
	doc := &models.Document{
		ID:         uuid.New(),
		UserID:     userID,
		Filename:   req.Filename,
		ExpiryDate: req.ExpiryDate,
		Status:     req.Status,
		RiskScore:  req.RiskScore,
	}
	if doc.Status == "" {
		doc.Status = models.DefaultDocumentStatus
	}
	if doc.RiskScore == "" {
		doc.RiskScore = models.DefaultRiskScore
	}

	if req.Content != "" && s.archive != nil {
		storagePath, err := s.archive.Upload(ctx, doc.ID, req.Filename, strings.NewReader(req.Content))
		if err != nil {
			return nil, fmt.Errorf("%w: archiving raw content: %v", ErrIngestion, err)
		}
		doc.StoragePath = &storagePath
	}

	if err := s.documents.Create(ctx, doc); err != nil {
		if doc.StoragePath != nil {
			// Clean up archived content
			if delErr := s.archive.Delete(ctx, *doc.StoragePath); delErr != nil {
				log.Printf("Warning: failed to clean up archived content %s: %v", *doc.StoragePath, delErr)
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrIngestion, err)
	}

	result := &IngestResult{Document: doc}
	for _, data := range s.chunker.Chunk(req.Filename) {
		vec := data.Embedding
		if len(vec) == 0 {
			vec = s.embedder.Embed(data.Text)
		}

		chunk := &models.Chunk{
			ID:        uuid.New(),
			DocID:     doc.ID,
			UserID:    userID,
			Text:      data.Text,
			Embedding: models.Embedding(vec),
			Metadata:  models.Metadata(data.Metadata),
		}

		if err := s.chunks.Create(ctx, chunk); err != nil {
			log.Printf("Warning: failed to persist chunk for document %s: %v", doc.ID, err)
			continue
		}
		result.Chunks = append(result.Chunks, *chunk)
	}

	return result, nil
}
