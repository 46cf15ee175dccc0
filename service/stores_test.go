package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"contractwise-backend/models"

	"github.com/google/uuid"
)

// In-memory fakes for the store interfaces. They mimic the repository
// conventions: IDs and timestamps are filled on create, lookups return
// (nil, nil) on miss, and chunk listings keep insertion order.

type fakeUserStore struct {
	users     []*models.User
	createErr error
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	stored := *user
	s.users = append(s.users, &stored)
	return nil
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeDocumentStore struct {
	docs      []*models.Document
	createErr error
}

func (s *fakeDocumentStore) Create(_ context.Context, doc *models.Document) error {
	if s.createErr != nil {
		return s.createErr
	}
	doc.UploadedOn = time.Now()
	stored := *doc
	s.docs = append(s.docs, &stored)
	return nil
}

func (s *fakeDocumentStore) ListByUserID(_ context.Context, userID uuid.UUID) ([]*models.Document, error) {
	result := make([]*models.Document, 0)
	for _, d := range s.docs {
		if d.UserID == userID {
			copied := *d
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *fakeDocumentStore) GetByID(_ context.Context, docID, userID uuid.UUID) (*models.Document, error) {
	for _, d := range s.docs {
		if d.ID == docID && d.UserID == userID {
			copied := *d
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeChunkStore struct {
	chunks   []models.Chunk
	failNext int // fail this many Create calls before succeeding
	listErr  error
}

func (s *fakeChunkStore) Create(_ context.Context, chunk *models.Chunk) error {
	if s.failNext > 0 {
		s.failNext--
		return fmt.Errorf("store rejected write")
	}
	chunk.CreatedAt = time.Now()
	s.chunks = append(s.chunks, *chunk)
	return nil
}

func (s *fakeChunkStore) ListByUserID(_ context.Context, userID uuid.UUID) ([]models.Chunk, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var result []models.Chunk
	for _, c := range s.chunks {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

// fakeArchive implements storage.Storage in memory.
type fakeArchive struct {
	objects   map[string][]byte
	uploadErr error
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{objects: make(map[string][]byte)}
}

func (a *fakeArchive) Upload(_ context.Context, docID uuid.UUID, filename string, data io.Reader) (string, error) {
	if a.uploadErr != nil {
		return "", a.uploadErr
	}
	content, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	path := fmt.Sprintf("%s/%s", docID, filename)
	a.objects[path] = content
	return path, nil
}

func (a *fakeArchive) Download(_ context.Context, storagePath string) (io.ReadCloser, error) {
	content, ok := a.objects[storagePath]
	if !ok {
		return nil, fmt.Errorf("content not found: %s", storagePath)
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (a *fakeArchive) Delete(_ context.Context, storagePath string) error {
	delete(a.objects, storagePath)
	return nil
}
