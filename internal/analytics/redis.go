// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package analytics

import (
	"context"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/violetaproject/violeta/internal/platform/constants"
)

// RedisReporter persists search counters in Redis so popular-query rankings
// survive process restarts and are shared across instances.
//
// Query popularity lives in a sorted set and the running total in a plain
// counter. Redis failures are logged and swallowed.
type RedisReporter struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisReporter creates a [RedisReporter] over an established client.
func NewRedisReporter(client *redis.Client, logger *slog.Logger) *RedisReporter {
	return &RedisReporter{client: client, logger: logger}
}

// RecordSearch increments the query's popularity score and the running total.
func (reporter *RedisReporter) RecordSearch(recordContext context.Context, query string, _ int) {
	if err := reporter.client.Incr(recordContext, constants.RedisKeySearchEventOrd).Err(); err != nil {
		reporter.logger.Warn("analytics_incr_failed", slog.String("error", err.Error()))
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return
	}

	if err := reporter.client.ZIncrBy(recordContext, constants.RedisKeyPopularQueries, 1, query).Err(); err != nil {
		reporter.logger.Warn("analytics_zincrby_failed", slog.String("error", err.Error()))
	}
}

// PopularQueries returns the highest-scored queries. On Redis failure it
// returns nil, which the suggestion blend treats as "no popular queries".
func (reporter *RedisReporter) PopularQueries(queryContext context.Context, limit int) []string {
	if limit <= 0 {
		limit = constants.DefaultSuggestionLimit
	}

	queries, err := reporter.client.ZRevRange(queryContext, constants.RedisKeyPopularQueries, 0, int64(limit-1)).Result()
	if err != nil {
		reporter.logger.Warn("analytics_zrevrange_failed", slog.String("error", err.Error()))
		return nil
	}

	return queries
}
