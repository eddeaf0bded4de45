// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/violetaproject/violeta/internal/core/content"
	"github.com/violetaproject/violeta/internal/core/i18n"
)

// # Search Suggestions

// fallbackSuggestions is shown when the visitor has typed nothing yet.
var fallbackSuggestions = []string{
	"feminismo",
	"igualdad",
	"violencia de género",
	"sufragio",
	"brecha salarial",
	"derechos de las mujeres",
	"empoderamiento",
	"techo de cristal",
}

// stopwords are excluded from keyword extraction, covering the six supported
// languages' most frequent function words.
var stopwords = map[string]bool{
	// es
	"de": true, "la": true, "el": true, "en": true, "y": true, "a": true,
	"los": true, "las": true, "del": true, "un": true, "una": true,
	"que": true, "con": true, "por": true, "para": true, "su": true,
	"se": true, "es": true, "al": true, "como": true, "más": true,
	// en
	"the": true, "of": true, "and": true, "in": true, "to": true,
	"for": true, "on": true, "with": true, "as": true, "at": true,
	// ca / gl
	"els": true, "les": true, "amb": true, "per": true, "dels": true,
	"das": true, "dos": true, "unha": true, "nas": true, "nos": true,
	// eu
	"eta": true, "da": true, "dira": true, "bat": true,
	// fr
	"le": true, "des": true, "et": true, "dans": true, "une": true,
	"du": true, "sur": true, "aux": true, "est": true,
}

/*
buildSuggestions blends suggestion sources into one deduplicated list.

Source order fixes the ranking: popular historical queries first, then lexicon
terms matching the partial input, then frequency-ranked keywords extracted
from hashtag names and titles. With no partial input the fixed fallback list
leads instead of the lexicon scan. The list is capped at limit entries.
*/
func buildSuggestions(lexicon *Lexicon, records []*content.Content, popular []string, partial string, limit int, lang i18n.Code) []string {
	partial = strings.ToLower(strings.TrimSpace(partial))

	var candidates []string
	candidates = append(candidates, matchingPopular(popular, partial)...)

	if partial == "" {
		candidates = append(candidates, fallbackSuggestions...)
	} else {
		candidates = append(candidates, lexiconSuggestions(lexicon, partial)...)
	}

	candidates = append(candidates, keywordSuggestions(records, partial, lang)...)

	return dedupeCapped(candidates, limit)
}

// matchingPopular filters historical queries by the partial input. An empty
// partial keeps them all.
func matchingPopular(popular []string, partial string) []string {
	if partial == "" {
		return popular
	}

	var matched []string
	for _, query := range popular {
		if strings.Contains(strings.ToLower(query), partial) {
			matched = append(matched, query)
		}
	}
	return matched
}

// lexiconSuggestions returns canonical terms and synonyms containing the
// partial input, canonicals first.
func lexiconSuggestions(lexicon *Lexicon, partial string) []string {
	var suggestions []string

	for _, canonical := range lexicon.Canonicals() {
		if strings.Contains(canonical, partial) {
			suggestions = append(suggestions, canonical)
		}
		for _, synonym := range lexicon.Synonyms(canonical) {
			if strings.Contains(synonym, partial) {
				suggestions = append(suggestions, synonym)
			}
		}
	}

	return suggestions
}

/*
keywordSuggestions extracts keywords from hashtag names and titles across the
collection, ranked by frequency.

Words shorter than four runes and stopwords are skipped. Ties break
lexicographically so the ranking is deterministic.
*/
func keywordSuggestions(records []*content.Content, partial string, lang i18n.Code) []string {
	frequency := make(map[string]int)

	for _, record := range records {
		countKeywords(record.Titulo.Resolve(lang), partial, frequency)
		for _, tag := range record.Hashtags {
			countKeywords(tag.Nombre.Resolve(lang), partial, frequency)
		}
	}

	keywords := make([]string, 0, len(frequency))
	for keyword := range frequency {
		keywords = append(keywords, keyword)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if frequency[keywords[i]] != frequency[keywords[j]] {
			return frequency[keywords[i]] > frequency[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	return keywords
}

func countKeywords(text, partial string, frequency map[string]int) {
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if utf8.RuneCountInString(word) < 4 || stopwords[word] {
			continue
		}
		if partial != "" && !strings.Contains(word, partial) {
			continue
		}
		frequency[word]++
	}
}

// # Related Search Terms

// relatedTerms returns related concepts and synonyms for a confirmed query
// term, excluding the term itself, capped at limit.
func relatedTerms(lexicon *Lexicon, term string, limit int) []string {
	normalized := strings.ToLower(strings.TrimSpace(term))
	if normalized == "" {
		return nil
	}

	var candidates []string
	for _, canonical := range lexicon.Canonicals() {
		if !bidirectionalContains(normalized, canonical) {
			continue
		}

		candidates = append(candidates, canonical)
		candidates = append(candidates, lexicon.Synonyms(canonical)...)
		for _, relatedCanonical := range lexicon.Related(canonical) {
			candidates = append(candidates, relatedCanonical)
			candidates = append(candidates, lexicon.Synonyms(relatedCanonical)...)
		}
	}

	var filtered []string
	for _, candidate := range candidates {
		if candidate != normalized {
			filtered = append(filtered, candidate)
		}
	}

	return dedupeCapped(filtered, limit)
}

// dedupeCapped removes duplicates preserving first occurrence and truncates
// to limit entries.
func dedupeCapped(values []string, limit int) []string {
	seen := make(map[string]bool)
	var result []string

	for _, value := range values {
		normalized := strings.ToLower(strings.TrimSpace(value))
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true

		result = append(result, value)
		if limit > 0 && len(result) >= limit {
			break
		}
	}

	return result
}
