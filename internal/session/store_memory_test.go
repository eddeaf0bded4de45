// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/violetaproject/violeta/internal/core/i18n"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	testContext := context.Background()
	defaults := DefaultPreferences(i18n.ES)

	preferences, found := store.Get(testContext, "sess-1", defaults)
	assert.False(t, found)
	assert.Equal(t, defaults, preferences)

	require.NoError(t, store.Set(testContext, "sess-1", Preferences{Lang: i18n.EU, CookieConsent: true}))

	preferences, found = store.Get(testContext, "sess-1", defaults)
	assert.True(t, found)
	assert.Equal(t, i18n.EU, preferences.Lang)
	assert.True(t, preferences.CookieConsent)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	testContext := context.Background()
	defaults := DefaultPreferences(i18n.ES)

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	require.NoError(t, store.Set(testContext, "sess-1", Preferences{Lang: i18n.FR}))

	current = current.Add(31 * 24 * time.Hour)

	preferences, found := store.Get(testContext, "sess-1", defaults)
	assert.False(t, found)
	assert.Equal(t, defaults, preferences)
}
