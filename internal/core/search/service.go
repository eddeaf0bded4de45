// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package search

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/violetaproject/violeta/internal/core/content"
	"github.com/violetaproject/violeta/internal/core/hashtag"
	"github.com/violetaproject/violeta/internal/core/i18n"
	"github.com/violetaproject/violeta/internal/platform/constants"
	"github.com/violetaproject/violeta/pkg/slice"
)

// # Collaborators

// Reporter receives search events and serves back the most frequent queries.
// Implementations must be best-effort: a failing reporter never fails a
// search.
type Reporter interface {
	RecordSearch(context context.Context, query string, filteredCount int)
	PopularQueries(context context.Context, limit int) []string
}

// # Service

// Service runs the search pipeline over the public content collection and
// holds the per-process current-filter snapshot.
type Service struct {
	repo      content.Repository
	lexicon   *Lexicon
	expander  *Expander
	analytics Reporter
	logger    *slog.Logger

	// mutex guards the current-filter snapshot. Searches themselves are
	// pure reads over the repository and need no locking.
	mutex   sync.RWMutex
	current Criteria
}

// NewService constructs a search [Service]. analytics may be nil.
func NewService(repo content.Repository, lexicon *Lexicon, analytics Reporter, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		lexicon:   lexicon,
		expander:  NewExpander(lexicon),
		analytics: analytics,
		logger:    logger,
	}
}

// # Search Pipeline

/*
Search runs the filter pipeline over the publicly visible collection.

Filters apply in sequence: tipo, free-text query (expanded through the
lexicon), hashtag membership (OR across the requested ids), year range, and
resource subtipo. Records without a year are excluded whenever either year
bound is set. A sort key, when valid, orders the final result; otherwise
insertion order is preserved.

The call is synchronous and side-effect-free except for two things: the
current-filter snapshot is overwritten (last writer wins) and, when any
filter dimension is active, the search is reported to the analytics
collaborator fire-and-forget.
*/
func (service *Service) Search(searchContext context.Context, criteria Criteria) (*Result, error) {
	criteria.Lang = i18n.Normalize(string(criteria.Lang))

	records, err := service.repo.ListPublic(searchContext)
	if err != nil {
		return nil, err
	}
	totalCount := len(records)

	if len(criteria.Tipos) > 0 {
		records = slice.Filter(records, func(record *content.Content) bool {
			return slice.Contains(criteria.Tipos, record.Tipo)
		})
	}

	if criteria.HasQuery() {
		expandedTerms := service.expander.Expand(criteria.Query)
		records = slice.Filter(records, func(record *content.Content) bool {
			return matches(record, expandedTerms, criteria.Lang)
		})
	}

	if len(criteria.HashtagIDs) > 0 {
		records = slice.Filter(records, func(record *content.Content) bool {
			return hasAnyHashtag(record, criteria.HashtagIDs)
		})
	}

	if criteria.AnioDesde != nil || criteria.AnioHasta != nil {
		records = slice.Filter(records, func(record *content.Content) bool {
			return withinYearRange(record, criteria.AnioDesde, criteria.AnioHasta)
		})
	}

	if len(criteria.Subtipos) > 0 {
		records = slice.Filter(records, func(record *content.Content) bool {
			return record.Tipo == content.TipoRecurso && slice.Contains(criteria.Subtipos, record.Subtipo)
		})
	}

	if criteria.Orden.IsValid() {
		sortResults(records, criteria.Orden, criteria.Lang)
	}

	service.setCurrent(criteria)
	service.report(searchContext, criteria, len(records))

	return &Result{
		Items:          records,
		TotalCount:     totalCount,
		FilteredCount:  len(records),
		AppliedFilters: criteria,
	}, nil
}

// hasAnyHashtag reports whether the record carries at least one of the
// requested hashtags, matched by id or slug.
func hasAnyHashtag(record *content.Content, hashtagIDs []string) bool {
	for _, tag := range record.Hashtags {
		for _, requested := range hashtagIDs {
			if tag.ID == requested || tag.Slug == requested {
				return true
			}
		}
	}
	return false
}

// withinYearRange applies the closed year-range predicate. Records without a
// year never satisfy a bounded range.
func withinYearRange(record *content.Content, desde, hasta *int) bool {
	if record.Anio == nil {
		return false
	}
	if desde != nil && *record.Anio < *desde {
		return false
	}
	if hasta != nil && *record.Anio > *hasta {
		return false
	}
	return true
}

// report notifies the analytics collaborator without ever blocking or
// failing the search call.
func (service *Service) report(searchContext context.Context, criteria Criteria, filteredCount int) {
	if service.analytics == nil || !criteria.HasFilters() {
		return
	}

	query := strings.TrimSpace(criteria.Query)
	reportContext := context.WithoutCancel(searchContext)

	go func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				service.logger.Warn("search_report_panic", slog.Any("panic", recovered))
			}
		}()
		service.analytics.RecordSearch(reportContext, query, filteredCount)
	}()
}

// # Current-Filter Snapshot

// UpdateFilters merges a partial update into the current-filter snapshot and
// returns the merged criteria.
func (service *Service) UpdateFilters(patch Patch) Criteria {
	service.mutex.Lock()
	defer service.mutex.Unlock()

	service.current = patch.applyTo(service.current)
	return service.current
}

// CurrentFilters returns the latest snapshot.
func (service *Service) CurrentFilters() Criteria {
	service.mutex.RLock()
	defer service.mutex.RUnlock()

	return service.current
}

// ClearFilters resets the snapshot to the zero criteria.
func (service *Service) ClearFilters() {
	service.mutex.Lock()
	defer service.mutex.Unlock()

	service.current = Criteria{}
}

func (service *Service) setCurrent(criteria Criteria) {
	service.mutex.Lock()
	defer service.mutex.Unlock()

	service.current = criteria
}

// # Aggregates

// AllHashtags returns the distinct hashtags embedded across the public
// collection, sorted by localized display name.
func (service *Service) AllHashtags(searchContext context.Context, lang i18n.Code) ([]hashtag.Hashtag, error) {
	records, err := service.repo.ListPublic(searchContext)
	if err != nil {
		return nil, err
	}
	return collectHashtags(records, i18n.Normalize(string(lang))), nil
}

// YearSpan returns the min/max year across the public collection, or nil when
// no record carries a year.
func (service *Service) YearSpan(searchContext context.Context) (*YearRange, error) {
	records, err := service.repo.ListPublic(searchContext)
	if err != nil {
		return nil, err
	}
	return collectYearRange(records), nil
}

/*
Suggestions returns search suggestions for a partial query.

The blend leads with the most frequent historical queries from analytics,
then lexicon terms matching the partial input (or the fixed fallback list
when the input is empty), then keywords extracted from the collection.
*/
func (service *Service) Suggestions(searchContext context.Context, partial string, limit int, lang i18n.Code) ([]string, error) {
	if limit <= 0 {
		limit = constants.DefaultSuggestionLimit
	}

	records, err := service.repo.ListPublic(searchContext)
	if err != nil {
		return nil, err
	}

	var popular []string
	if service.analytics != nil {
		popular = service.analytics.PopularQueries(searchContext, limit)
	}

	return buildSuggestions(service.lexicon, records, popular, partial, limit, i18n.Normalize(string(lang))), nil
}

// RelatedTerms returns related concepts and synonyms for a confirmed query
// term, excluding the term itself.
func (service *Service) RelatedTerms(term string, limit int) []string {
	if limit <= 0 {
		limit = constants.DefaultRelatedTermLimit
	}
	return relatedTerms(service.lexicon, term, limit)
}
