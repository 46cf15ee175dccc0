package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated tenant. All documents and chunks are
// scoped to a user ID.
type User struct {
	ID           uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	CreatedAt    time.Time `json:"created_at"`
}
