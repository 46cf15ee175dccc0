package models

import (
	"database/sql/driver"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Chunk represents one retrievable unit of text derived from a document.
// Chunks are written once at ingestion time and never mutated. The user ID
// duplicates the parent document's owner so tenant-scoped queries hit the
// chunks table directly.
type Chunk struct {
	ID        uuid.UUID `json:"chunk_id"`
	DocID     uuid.UUID `json:"doc_id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	Embedding Embedding `json:"embedding"`
	Metadata  Metadata  `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Embedding is a stored vector. The storage layer may hand back either a
// native JSON float array or a stringified list ("[0.12, -0.45]"); Scan
// accepts both. Anything that cannot be parsed becomes the empty vector so
// ranking can assign a sentinel score instead of failing the whole batch.
type Embedding []float64

// Valid reports whether the embedding can be scored.
func (e Embedding) Valid() bool {
	return len(e) > 0
}

// Value implements driver.Valuer for JSONB
func (e Embedding) Value() (driver.Value, error) {
	if e == nil {
		return json.Marshal([]float64{})
	}
	return json.Marshal([]float64(e))
}

// Scan implements sql.Scanner. It never returns an error: malformed stored
// embeddings coerce to the empty vector.
func (e *Embedding) Scan(value interface{}) error {
	*e = Embedding{}
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case []float64:
		*e = append(Embedding{}, v...)
	case []byte:
		*e = parseEmbedding(string(v))
	case string:
		*e = parseEmbedding(v)
	}
	return nil
}

// parseEmbedding converts a textual embedding to floats. Tries JSON first,
// then a bracketed comma-separated list. Any unparseable element invalidates
// the whole vector.
func parseEmbedding(s string) Embedding {
	s = strings.TrimSpace(s)
	if s == "" {
		return Embedding{}
	}

	var vec []float64
	if err := json.Unmarshal([]byte(s), &vec); err == nil {
		return Embedding(vec)
	}

	// JSON may also carry the list as a quoted string ("[0.1, 0.2]")
	var quoted string
	if err := json.Unmarshal([]byte(s), &quoted); err == nil {
		s = strings.TrimSpace(quoted)
	}

	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return Embedding{}
	}

	parts := strings.Split(s, ",")
	vec = make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Embedding{}
		}
		vec = append(vec, f)
	}
	return Embedding(vec)
}

// Metadata is a free-form key-value map attached to a chunk (source page,
// contract name, ...).
type Metadata map[string]interface{}

// Value implements driver.Valuer for JSONB
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(Metadata{})
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB
func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = make(Metadata)
		return nil
	}

	// Handle different types that pgx might return for JSONB
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*m = make(Metadata)
		return nil
	}

	if len(bytes) == 0 {
		*m = make(Metadata)
		return nil
	}

	return json.Unmarshal(bytes, m)
}
