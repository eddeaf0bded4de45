// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/violetaproject/violeta/internal/core/i18n"
)

func TestSuggestionsEmptyPartialLeadsWithFallback(t *testing.T) {
	service := newSearchService(t, nil)

	suggestions, err := service.Suggestions(context.Background(), "", 5, i18n.ES)
	require.NoError(t, err)

	require.Len(t, suggestions, 5)
	assert.Equal(t, "feminismo", suggestions[0])
}

func TestSuggestionsPopularQueriesRankFirst(t *testing.T) {
	reporter := &fakeReporter{popular: []string{"brecha salarial", "sufragio"}}
	service := newSearchService(t, reporter)

	suggestions, err := service.Suggestions(context.Background(), "", 4, i18n.ES)
	require.NoError(t, err)

	require.NotEmpty(t, suggestions)
	assert.Equal(t, "brecha salarial", suggestions[0])
	assert.Equal(t, "sufragio", suggestions[1])
}

func TestSuggestionsPartialMatchesLexicon(t *testing.T) {
	service := newSearchService(t, nil)

	suggestions, err := service.Suggestions(context.Background(), "femin", 10, i18n.ES)
	require.NoError(t, err)

	assert.Contains(t, suggestions, "feminismo")
	assert.Contains(t, suggestions, "feminicidio")
	assert.NotContains(t, suggestions, "igualdad")
}

func TestSuggestionsAreDeduplicatedAndCapped(t *testing.T) {
	reporter := &fakeReporter{popular: []string{"feminismo", "feminismo"}}
	service := newSearchService(t, reporter)

	suggestions, err := service.Suggestions(context.Background(), "feminismo", 3, i18n.ES)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(suggestions), 3)
	seen := make(map[string]bool)
	for _, suggestion := range suggestions {
		assert.False(t, seen[suggestion], suggestion)
		seen[suggestion] = true
	}
}

func TestSuggestionsDefaultLimit(t *testing.T) {
	service := newSearchService(t, nil)

	suggestions, err := service.Suggestions(context.Background(), "", 0, i18n.ES)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(suggestions), 8)
	assert.NotEmpty(t, suggestions)
}

func TestRelatedTermsExcludeTheTermItself(t *testing.T) {
	service := newSearchService(t, nil)

	related := service.RelatedTerms("violencia", 10)

	require.NotEmpty(t, related)
	assert.NotContains(t, related, "violencia")
	assert.Contains(t, related, "maltrato")
}

func TestRelatedTermsUnknownTerm(t *testing.T) {
	service := newSearchService(t, nil)

	assert.Empty(t, service.RelatedTerms("zzyzx", 10))
	assert.Empty(t, service.RelatedTerms("", 10))
}

func TestKeywordSuggestionsSkipStopwords(t *testing.T) {
	service := newSearchService(t, nil)

	suggestions, err := service.Suggestions(context.Background(), "", 50, i18n.ES)
	require.NoError(t, err)

	assert.NotContains(t, suggestions, "de")
	assert.NotContains(t, suggestions, "los")
}
