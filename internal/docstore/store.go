// Package docstore keeps processed documents in memory for the
// lifetime of a session. Nothing is persisted: entries expire after a
// TTL and the whole store is lost on restart.
package docstore

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lexhaven/lexidoc/internal/entity"
)

// Document is one processed upload: extracted text plus derived data.
type Document struct {
	ID          string          `json:"document_id"`
	Filename    string          `json:"filename"`
	Title       string          `json:"title,omitempty"`
	Text        string          `json:"-"`
	Entities    entity.Entities `json:"entities,omitempty"`
	Summary     string          `json:"summary,omitempty"`
	WordCount   int             `json:"word_count"`
	ContentHash string          `json:"content_hash"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewID returns a fresh document identifier.
func NewID() string { return uuid.NewString() }

// ContentHashHex computes the SHA-256 of content as a hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}

// Store is a thread-safe in-memory document registry with TTL eviction.
type Store struct {
	mu   sync.Mutex
	docs map[string]*Document
	ttl  time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{
		docs: make(map[string]*Document),
		ttl:  ttl,
	}
}

func (s *Store) Put(doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
}

func (s *Store) Get(id string) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[id]
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return false
	}
	delete(s.docs, id)
	return true
}

// List returns all live documents, unordered.
func (s *Store) List() []*Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Document, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc)
	}
	return out
}

// Cleanup removes expired documents.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, doc := range s.docs {
		if now.Sub(doc.CreatedAt) > s.ttl {
			delete(s.docs, id)
		}
	}
}

// Start launches the background eviction janitor.
func (s *Store) Start(ctx context.Context) {
	janitorCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-janitorCtx.Done():
				return
			case <-ticker.C:
				s.Cleanup()
			}
		}
	}()
}

// Stop shuts the janitor down and waits for it to exit.
func (s *Store) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}
