// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package session

import (
	"context"
	"sync"
	"time"

	"github.com/violetaproject/violeta/internal/platform/constants"
)

type memoryEntry struct {
	preferences Preferences
	expiresAt   time.Time
}

// MemoryStore keeps visitor preferences in process memory. Entries expire
// after [constants.SessionTTL]; expired entries are dropped lazily on read.
type MemoryStore struct {
	mutex   sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns the stored preferences, or the defaults when the session is
// unknown or expired.
func (store *MemoryStore) Get(_ context.Context, sessionID string, defaults Preferences) (Preferences, bool) {
	store.mutex.RLock()
	entry, found := store.entries[sessionID]
	store.mutex.RUnlock()

	if !found {
		return defaults, false
	}

	if store.now().After(entry.expiresAt) {
		store.mutex.Lock()
		delete(store.entries, sessionID)
		store.mutex.Unlock()
		return defaults, false
	}

	return entry.preferences, true
}

// Set stores the preferences and refreshes the session TTL.
func (store *MemoryStore) Set(_ context.Context, sessionID string, preferences Preferences) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	store.entries[sessionID] = memoryEntry{
		preferences: preferences,
		expiresAt:   store.now().Add(constants.SessionTTL),
	}
	return nil
}
