// Package store persists computed layout documents so hosts can reload a
// gallery's geometry without recomputing it.
//
// Two backends are available:
//   - memory: process-local map, used by default and in tests
//   - mongo: MongoDB-backed storage for server deployments
package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	apperrors "github.com/tilecraft/mosaic/pkg/errors"
	"github.com/tilecraft/mosaic/pkg/gallery"
)

// Store persists layout documents keyed by ID.
type Store interface {
	// Save stores a document, assigning a new UUID when the document has no
	// ID, and returns the stored document.
	Save(ctx context.Context, doc gallery.LayoutDocument) (gallery.LayoutDocument, error)

	// Get retrieves a document by ID. Returns a LAYOUT_NOT_FOUND error when
	// the ID is unknown.
	Get(ctx context.Context, id string) (gallery.LayoutDocument, error)

	// List returns all stored documents.
	List(ctx context.Context) ([]gallery.LayoutDocument, error)

	// Delete removes a document by ID. Returns a LAYOUT_NOT_FOUND error
	// when the ID is unknown.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// notFound builds the sentinel error shared by both backends.
func notFound(id string) error {
	return apperrors.New(apperrors.ErrCodeLayoutNotFound, "layout %s not found", id)
}

// =============================================================================
// MemoryStore
// =============================================================================

// MemoryStore is a process-local store backed by a map.
// It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]gallery.LayoutDocument
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]gallery.LayoutDocument)}
}

// Save stores a document, assigning a UUID when needed.
func (s *MemoryStore) Save(ctx context.Context, doc gallery.LayoutDocument) (gallery.LayoutDocument, error) {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
	return doc, nil
}

// Get retrieves a document by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (gallery.LayoutDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return gallery.LayoutDocument{}, notFound(id)
	}
	return doc, nil
}

// List returns all stored documents.
func (s *MemoryStore) List(ctx context.Context) ([]gallery.LayoutDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]gallery.LayoutDocument, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	return docs, nil
}

// Delete removes a document by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return notFound(id)
	}
	delete(s.docs, id)
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
