package models

import (
	"time"

	"github.com/google/uuid"
)

// Default labels applied when an upload omits them.
const (
	DefaultDocumentStatus = "Active"
	DefaultRiskScore      = "Low"
)

// Document represents one uploaded contract. The owning user ID is immutable
// after creation; chunks derived from the document carry the same user ID.
type Document struct {
	ID          uuid.UUID `json:"doc_id"`
	UserID      uuid.UUID `json:"user_id"`
	Filename    string    `json:"filename"`
	UploadedOn  time.Time `json:"uploaded_on"`
	ExpiryDate  *string   `json:"expiry_date,omitempty"`
	Status      string    `json:"status"`
	RiskScore   string    `json:"risk_score"`
	StoragePath *string   `json:"storage_path,omitempty"`
}
