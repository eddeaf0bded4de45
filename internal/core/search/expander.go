// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package search

import (
	"sort"
	"strings"
)

// Expander turns a raw search phrase into the expanded term set used by the
// content matcher, pulling in synonyms and related concepts from the lexicon.
type Expander struct {
	lexicon *Lexicon
}

// NewExpander creates an [Expander] over the given lexicon.
func NewExpander(lexicon *Lexicon) *Expander {
	return &Expander{lexicon: lexicon}
}

/*
Expand produces the expanded term set for a query.

The set seeds with every whitespace token plus the full phrase (when the query
has more than one token, so exact phrases still match). Each token is then
checked against every canonical term and its synonyms, in both substring
directions; a hit pulls in the canonical term and its whole synonym list.
Finally the full query is scanned for embedded canonical terms, and each hit
pulls in its related concepts and their synonyms. Expansion never recurses
past that single hop.

The result is deduplicated and sorted, so identical queries always expand to
the identical slice.
*/
func (expander *Expander) Expand(query string) []string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil
	}

	terms := make(map[string]bool)

	tokens := strings.Fields(normalized)
	for _, token := range tokens {
		terms[token] = true
	}
	if len(tokens) > 1 {
		terms[normalized] = true
	}

	for _, token := range tokens {
		expander.expandToken(token, terms)
	}
	expander.expandRelated(normalized, terms)

	expanded := make([]string, 0, len(terms))
	for term := range terms {
		expanded = append(expanded, term)
	}
	sort.Strings(expanded)

	return expanded
}

// expandToken adds the canonical term and all its synonyms whenever the token
// matches the canonical or a synonym exactly or by substring in either
// direction.
func (expander *Expander) expandToken(token string, terms map[string]bool) {
	for _, canonical := range expander.lexicon.Canonicals() {
		if !expander.tokenHits(token, canonical) {
			continue
		}

		terms[canonical] = true
		for _, synonym := range expander.lexicon.Synonyms(canonical) {
			terms[synonym] = true
		}
	}
}

// tokenHits reports whether the token matches the canonical term or any of
// its synonyms.
func (expander *Expander) tokenHits(token, canonical string) bool {
	if bidirectionalContains(token, canonical) {
		return true
	}
	for _, synonym := range expander.lexicon.Synonyms(canonical) {
		if bidirectionalContains(token, synonym) {
			return true
		}
	}
	return false
}

// expandRelated scans the whole query for embedded canonical terms and adds
// each hit's related concepts together with their synonyms (one hop only).
func (expander *Expander) expandRelated(query string, terms map[string]bool) {
	for _, canonical := range expander.lexicon.Canonicals() {
		if !strings.Contains(query, canonical) {
			continue
		}

		terms[canonical] = true
		for _, relatedCanonical := range expander.lexicon.Related(canonical) {
			terms[relatedCanonical] = true
			for _, synonym := range expander.lexicon.Synonyms(relatedCanonical) {
				terms[synonym] = true
			}
		}
	}
}

// bidirectionalContains reports whether either string contains the other.
func bidirectionalContains(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
