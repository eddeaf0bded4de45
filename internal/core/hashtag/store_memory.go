// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package hashtag

import (
	"context"
	"sync"

	"github.com/violetaproject/violeta/internal/platform/apperr"
)

// MemoryStore is the in-memory [Repository] implementation.
//
// The registry is loaded wholesale at startup and never mutated afterwards;
// the RWMutex only guards the Replace/read boundary.
type MemoryStore struct {
	mu       sync.RWMutex
	hashtags []Hashtag
	byID     map[string]int
	bySlug   map[string]int
}

// NewMemoryStore creates an empty in-memory hashtag registry.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:   make(map[string]int),
		bySlug: make(map[string]int),
	}
}

// Replace swaps the entire registry, rebuilding lookup indexes.
func (store *MemoryStore) Replace(_ context.Context, hashtags []Hashtag) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.hashtags = make([]Hashtag, len(hashtags))
	copy(store.hashtags, hashtags)

	store.byID = make(map[string]int, len(hashtags))
	store.bySlug = make(map[string]int, len(hashtags))
	for i, h := range store.hashtags {
		if _, exists := store.bySlug[h.Slug]; exists {
			return apperr.Conflict("Duplicate hashtag slug: " + h.Slug)
		}
		store.byID[h.ID] = i
		store.bySlug[h.Slug] = i
	}

	return nil
}

// List returns a copy of the registry in insertion order.
func (store *MemoryStore) List(_ context.Context) ([]Hashtag, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	out := make([]Hashtag, len(store.hashtags))
	copy(out, store.hashtags)
	return out, nil
}

// GetByID resolves a hashtag by its opaque ID.
func (store *MemoryStore) GetByID(_ context.Context, id string) (*Hashtag, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	if i, ok := store.byID[id]; ok {
		h := store.hashtags[i]
		return &h, nil
	}
	return nil, apperr.NotFound("Hashtag")
}

// GetBySlug resolves a hashtag by its URL slug.
func (store *MemoryStore) GetBySlug(_ context.Context, slug string) (*Hashtag, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	if i, ok := store.bySlug[slug]; ok {
		h := store.hashtags[i]
		return &h, nil
	}
	return nil, apperr.NotFound("Hashtag")
}
