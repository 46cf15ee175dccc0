package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage archives the raw content of uploaded contracts. The retrieval core
// never reads archived content; it exists so the original artifact can be
// re-parsed when a real chunker replaces the stand-in.
type Storage interface {
	// Upload stores raw content and returns the storage path
	Upload(ctx context.Context, docID uuid.UUID, filename string, data io.Reader) (string, error)

	// Download retrieves archived content by storage path
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes archived content by storage path
	Delete(ctx context.Context, storagePath string) error
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// StorageConfig holds configuration for storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorageFromEnv creates a storage instance from environment variables
func NewStorageFromEnv() (Storage, error) {
	storageType := os.Getenv("STORAGE_TYPE")
	if storageType == "" {
		storageType = "local" // Default to local for development
	}

	switch StorageType(storageType) {
	case StorageTypeLocal:
		localPath := os.Getenv("STORAGE_LOCAL_PATH")
		if localPath == "" {
			localPath = "./storage/contracts"
		}
		return NewLocalStorage(localPath)

	case StorageTypeS3:
		cfg := StorageConfig{
			Type:         StorageTypeS3,
			S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
			S3Region:     os.Getenv("AWS_REGION"),
			AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}
		return NewS3Storage(cfg)

	default:
		return nil, fmt.Errorf("unknown storage type: %s", storageType)
	}
}

// generateStoragePath generates a unique storage path for a document
func generateStoragePath(docID uuid.UUID, filename string) string {
	ext := filepath.Ext(filename)
	baseName := strings.TrimSuffix(filename, ext)
	// Sanitize filename
	baseName = strings.ReplaceAll(baseName, " ", "_")
	baseName = strings.ReplaceAll(baseName, "/", "_")
	baseName = strings.ReplaceAll(baseName, "\\", "_")

	// Prefix with the document ID to ensure uniqueness
	return fmt.Sprintf("%s/%s_%s%s", docID.String()[:2], docID.String(), baseName, ext)
}
