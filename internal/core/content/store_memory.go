// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package content

import (
	"context"
	"sync"

	"github.com/violetaproject/violeta/internal/platform/apperr"
)

// MemoryStore is the in-memory [Repository] implementation.
//
// # Ordering
//
// Insertion order is significant: unsorted search results must come back in
// collection order, and stable sorts rely on it for tie-breaking. The store
// therefore keeps a slice as the primary structure and maps only as indexes.
type MemoryStore struct {
	mu      sync.RWMutex
	records []*Content
	byID    map[string]int
}

// NewMemoryStore creates an empty in-memory content store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]int),
	}
}

// Replace swaps the entire working collection. The swap is all-or-nothing:
// on a duplicate ID the store keeps serving the previous collection.
func (store *MemoryStore) Replace(_ context.Context, records []*Content) error {
	next := make([]*Content, len(records))
	copy(next, records)

	byID := make(map[string]int, len(records))
	for i, record := range next {
		if _, exists := byID[record.ID]; exists {
			return apperr.Conflict("Duplicate content id: " + record.ID)
		}
		byID[record.ID] = i
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	store.records = next
	store.byID = byID
	return nil
}

// List returns the full collection (admin view) in insertion order.
func (store *MemoryStore) List(_ context.Context) ([]*Content, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	out := make([]*Content, len(store.records))
	copy(out, store.records)
	return out, nil
}

// ListPublic returns only publicly visible records in insertion order.
func (store *MemoryStore) ListPublic(_ context.Context) ([]*Content, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	var out []*Content
	for _, record := range store.records {
		if record.EsPublico() {
			out = append(out, record)
		}
	}
	return out, nil
}

// FindByID resolves a record by its opaque ID.
func (store *MemoryStore) FindByID(_ context.Context, id string) (*Content, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	if i, ok := store.byID[id]; ok {
		return store.records[i], nil
	}
	return nil, apperr.NotFound("Contenido")
}

// FindBySlug resolves a record by slug.
//
// Slugs are unique within a tipo, not globally; when two tipos share a slug
// the first match in insertion order wins, which matches how the public site
// builds links (tipo-scoped paths).
func (store *MemoryStore) FindBySlug(_ context.Context, slug string) (*Content, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for _, record := range store.records {
		if record.Slug == slug {
			return record, nil
		}
	}
	return nil, apperr.NotFound("Contenido")
}

// Update overwrites a stored record, keyed by ID.
func (store *MemoryStore) Update(_ context.Context, record *Content) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	i, ok := store.byID[record.ID]
	if !ok {
		return apperr.NotFound("Contenido")
	}
	store.records[i] = record
	return nil
}
