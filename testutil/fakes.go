// Package testutil provides in-memory fakes for the paper store, blob
// storage and AI capabilities used across service and handler tests.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tieubaoca/paperdesk-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemPaperRepo is an in-memory repository.PaperRepo.
type MemPaperRepo struct {
	mu     sync.Mutex
	papers []*types.Paper

	InsertErr  error
	InsertCall int
}

func NewMemPaperRepo() *MemPaperRepo {
	return &MemPaperRepo{}
}

func (r *MemPaperRepo) Insert(_ context.Context, paper *types.Paper) (*types.Paper, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.InsertCall++
	if r.InsertErr != nil {
		return nil, r.InsertErr
	}
	stored := *paper
	stored.ID = bson.NewObjectID().Hex()
	stored.CreatedAt = time.Now().Unix()
	r.papers = append(r.papers, &stored)
	return &stored, nil
}

func (r *MemPaperRepo) ListByUser(_ context.Context, userID string) ([]*types.Paper, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*types.Paper, 0)
	// newest first: reverse insertion order
	for i := len(r.papers) - 1; i >= 0; i-- {
		if r.papers[i].UserID == userID {
			copied := *r.papers[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *MemPaperRepo) GetByID(_ context.Context, id, userID string) (*types.Paper, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.papers {
		if p.ID == id && p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, &types.NotFoundError{Resource: "paper", Key: id}
}

func (r *MemPaperRepo) FindByTitle(_ context.Context, title, userID string) ([]*types.Paper, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*types.Paper, 0)
	for i := len(r.papers) - 1; i >= 0; i-- {
		if r.papers[i].UserID == userID && r.papers[i].Title == title {
			copied := *r.papers[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *MemPaperRepo) DeleteByID(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.papers {
		if p.ID == id && p.UserID == userID {
			r.papers = append(r.papers[:i], r.papers[i+1:]...)
			return nil
		}
	}
	return &types.NotFoundError{Resource: "paper", Key: id}
}

// MemStorage is an in-memory service.BlobStorage.
type MemStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte
	seq   int

	ReadCall int
}

func NewMemStorage() *MemStorage {
	return &MemStorage{blobs: make(map[string][]byte)}
}

func (s *MemStorage) Save(filename string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	path := fmt.Sprintf("mem://%d/%s", s.seq, filename)
	s.blobs[path] = append([]byte(nil), data...)
	return path, nil
}

func (s *MemStorage) Read(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ReadCall++
	data, ok := s.blobs[path]
	if !ok {
		return nil, &types.NotFoundError{Resource: "blob", Key: path}
	}
	return append([]byte(nil), data...), nil
}

func (s *MemStorage) Delete(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, path)
	return nil
}

func (s *MemStorage) Has(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[path]
	return ok
}

// StubAI is a scripted service.AIService. Responses are consumed in order;
// the last one repeats once the script runs out.
type StubAI struct {
	mu        sync.Mutex
	Responses []string
	Err       error
	Prompts   []string
}

func (a *StubAI) Chat(_ context.Context, prompt string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Prompts = append(a.Prompts, prompt)
	if a.Err != nil {
		return "", a.Err
	}
	if len(a.Responses) == 0 {
		return "", errors.New("stub ai: no scripted response")
	}
	resp := a.Responses[0]
	if len(a.Responses) > 1 {
		a.Responses = a.Responses[1:]
	}
	return resp, nil
}

func (a *StubAI) ChatStream(ctx context.Context, prompt string, handler types.StreamHandler) error {
	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return err
	}
	handler(resp)
	return nil
}

// StubExtractor is a canned service.TextExtractor.
type StubExtractor struct {
	Text  string
	Err   error
	Calls int
}

func (e *StubExtractor) ExtractText(_ []byte) (string, error) {
	e.Calls++
	if e.Err != nil {
		return "", e.Err
	}
	return e.Text, nil
}

// StubMetadata is a canned service.MetadataExtractor.
type StubMetadata struct {
	Metadata *types.PaperMetadata
	Err      error
	Calls    int
	LastText string
}

func (m *StubMetadata) Extract(_ context.Context, text string) (*types.PaperMetadata, error) {
	m.Calls++
	m.LastText = text
	if m.Err != nil {
		return nil, m.Err
	}
	copied := *m.Metadata
	return &copied, nil
}
