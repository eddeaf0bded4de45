// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package session

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/violetaproject/violeta/internal/platform/constants"
)

// RedisStore persists visitor preferences in Redis with a per-session TTL,
// sharing them across instances. Redis failures degrade to the defaults so
// a cache outage never breaks a page load.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisStore creates a [RedisStore] over an established client.
func NewRedisStore(client *redis.Client, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

func sessionKey(sessionID string) string {
	return constants.RedisPrefixSession + sessionID
}

// Get returns the stored preferences, or the defaults when the session is
// unknown, expired, or Redis is unreachable.
func (store *RedisStore) Get(getContext context.Context, sessionID string, defaults Preferences) (Preferences, bool) {
	raw, err := store.client.Get(getContext, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return defaults, false
	}
	if err != nil {
		store.logger.Warn("session_get_failed", slog.String("error", err.Error()))
		return defaults, false
	}

	var preferences Preferences
	if err := json.Unmarshal([]byte(raw), &preferences); err != nil {
		store.logger.Warn("session_decode_failed", slog.String("error", err.Error()))
		return defaults, false
	}

	return preferences, true
}

// Set stores the preferences and refreshes the session TTL.
func (store *RedisStore) Set(setContext context.Context, sessionID string, preferences Preferences) error {
	raw, err := json.Marshal(preferences)
	if err != nil {
		return err
	}

	return store.client.Set(setContext, sessionKey(sessionID), raw, constants.SessionTTL).Err()
}
