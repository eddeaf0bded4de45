// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package search

import (
	"strings"
	"unicode/utf8"

	"github.com/violetaproject/violeta/internal/core/content"
	"github.com/violetaproject/violeta/internal/core/i18n"
)

// smallTermSetSize is the expanded-set size at or below which a single
// matching term is enough. Larger sets come from heavy synonym expansion and
// demand proportional evidence.
const smallTermSetSize = 3

/*
matches reports whether a content record satisfies the expanded term set.

The title is the highest-relevance field and short-circuits: a term that
equals, contains, or is contained in the title is an immediate match, as is
any title word within fuzzy distance of a term.

Failing that, the title, description, easy-read description, and hashtag
display names (all resolved in the active language with es fallback) are
joined into one searchable blob, and each term counts as a hit when

  - the blob contains the term as a substring, or
  - any blob word fuzzy-matches the term, or
  - for terms longer than four runes, the blob contains the term's truncated
    prefix of length max(4, len-2), which absorbs plural and conjugation
    suffixes.

A record matches when the hit count reaches the minimum for the set size.
*/
func matches(record *content.Content, expandedTerms []string, lang i18n.Code) bool {
	if len(expandedTerms) == 0 {
		return false
	}

	title := strings.ToLower(record.Titulo.Resolve(lang))
	titleWords := strings.Fields(title)

	for _, term := range expandedTerms {
		if bidirectionalContains(title, term) {
			return true
		}
		for _, titleWord := range titleWords {
			if fuzzyMatch(titleWord, term) {
				return true
			}
		}
	}

	blob := searchableBlob(record, lang)
	blobWords := strings.Fields(blob)

	hits := 0
	for _, term := range expandedTerms {
		if termHitsBlob(term, blob, blobWords) {
			hits++
		}
	}

	return hits >= requiredHits(len(expandedTerms))
}

// termHitsBlob applies the three body-text match strategies in cost order.
func termHitsBlob(term, blob string, blobWords []string) bool {
	if strings.Contains(blob, term) {
		return true
	}

	for _, blobWord := range blobWords {
		if fuzzyMatch(blobWord, term) {
			return true
		}
	}

	if utf8.RuneCountInString(term) > 4 {
		if strings.Contains(blob, truncatedPrefix(term)) {
			return true
		}
	}

	return false
}

// searchableBlob joins the record's localized text fields and hashtag names
// into a single lowercase haystack.
func searchableBlob(record *content.Content, lang i18n.Code) string {
	parts := []string{
		record.Titulo.Resolve(lang),
		record.Descripcion.Resolve(lang),
		record.DescripcionFacil.Resolve(lang),
	}
	for _, tag := range record.Hashtags {
		parts = append(parts, tag.Nombre.Resolve(lang))
	}

	return strings.ToLower(strings.Join(parts, " "))
}

// truncatedPrefix shortens a term to max(4, len-2) runes.
func truncatedPrefix(term string) string {
	runes := []rune(term)

	cut := len(runes) - 2
	if cut < 4 {
		cut = 4
	}
	if cut >= len(runes) {
		return term
	}

	return string(runes[:cut])
}

// requiredHits returns the minimum matching term count for a set of the given
// size: one for small sets, 30 percent (rounded up, floored at one) for sets
// inflated by synonym expansion.
func requiredHits(termCount int) int {
	if termCount <= smallTermSetSize {
		return 1
	}

	required := (termCount*3 + 9) / 10 // ceil(0.3 * termCount)
	if required < 1 {
		required = 1
	}
	return required
}
