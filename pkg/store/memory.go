package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/matzehuels/composite/pkg/codec"
)

// MemoryStore keeps documents in a map, for the CLI and tests.
// It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]codec.Graph
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]codec.Graph)}
}

// Save stores doc under name, overwriting any previous document.
func (s *MemoryStore) Save(ctx context.Context, name string, doc codec.Graph) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = doc
	return nil
}

// Load returns the document stored under name.
func (s *MemoryStore) Load(ctx context.Context, name string) (codec.Graph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[name]
	if !ok {
		return codec.Graph{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return doc, nil
}

// Delete removes the document stored under name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	delete(s.docs, name)
	return nil
}

// List returns the stored names in sorted order.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.docs)), nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
