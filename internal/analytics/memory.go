// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package analytics

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/violetaproject/violeta/internal/platform/constants"
)

/*
MemoryReporter keeps search counts in process memory.

It remembers the last [constants.PopularQueryWindow] recorded queries in a
ring buffer, so popularity reflects recent activity rather than the whole
process lifetime. All methods are safe for concurrent use.
*/
type MemoryReporter struct {
	mutex  sync.Mutex
	window []string
	next   int
	full   bool
	total  int64
}

// NewMemoryReporter creates an empty [MemoryReporter].
func NewMemoryReporter() *MemoryReporter {
	return &MemoryReporter{
		window: make([]string, constants.PopularQueryWindow),
	}
}

// RecordSearch stores a search event. Blank queries (structured-filter-only
// searches) count toward the total but not toward query popularity.
func (reporter *MemoryReporter) RecordSearch(_ context.Context, query string, _ int) {
	reporter.mutex.Lock()
	defer reporter.mutex.Unlock()

	reporter.total++

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return
	}

	reporter.window[reporter.next] = query
	reporter.next++
	if reporter.next == len(reporter.window) {
		reporter.next = 0
		reporter.full = true
	}
}

// PopularQueries returns the most frequent queries in the window, most
// frequent first, ties broken lexicographically.
func (reporter *MemoryReporter) PopularQueries(_ context.Context, limit int) []string {
	reporter.mutex.Lock()
	defer reporter.mutex.Unlock()

	size := reporter.next
	if reporter.full {
		size = len(reporter.window)
	}

	frequency := make(map[string]int, size)
	for index := 0; index < size; index++ {
		frequency[reporter.window[index]]++
	}

	queries := make([]string, 0, len(frequency))
	for query := range frequency {
		queries = append(queries, query)
	}
	sort.Slice(queries, func(i, j int) bool {
		if frequency[queries[i]] != frequency[queries[j]] {
			return frequency[queries[i]] > frequency[queries[j]]
		}
		return queries[i] < queries[j]
	})

	if limit > 0 && len(queries) > limit {
		queries = queries[:limit]
	}
	return queries
}

// TotalSearches returns the number of search events seen by this process.
func (reporter *MemoryReporter) TotalSearches() int64 {
	reporter.mutex.Lock()
	defer reporter.mutex.Unlock()

	return reporter.total
}
