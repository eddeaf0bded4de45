// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

/*
Package i18n defines the supported language codes and the multilingual text
type shared by all content entities.

Every user-facing text field on the platform (titles, descriptions, easy-read
descriptions, hashtag names) is a [Text]: a mapping from language code to
translation in which the Spanish entry is mandatory and acts as the fallback
for any absent translation. Access always goes through [Text.Resolve] so the
fallback rule lives in exactly one place.
*/
package i18n

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Code is a supported language code (BCP-47 primary subtag).
type Code string

// The six languages the platform publishes in. Spanish is the mandatory
// fallback language for every multilingual field.
const (
	ES Code = "es" // Spanish (fallback)
	EN Code = "en" // English
	CA Code = "ca" // Catalan
	GL Code = "gl" // Galician
	EU Code = "eu" // Basque
	FR Code = "fr" // French
)

// Supported lists every recognised language code, fallback first.
var Supported = []Code{ES, EN, CA, GL, EU, FR}

// IsSupported reports whether c is one of the platform languages.
func IsSupported(c Code) bool {
	for _, s := range Supported {
		if c == s {
			return true
		}
	}
	return false
}

// Normalize maps a raw language string (query parameter, cookie, Accept-Language
// subtag) onto a supported [Code]. Unknown or empty input degrades to Spanish
// rather than failing — a missing language preference is never an error.
func Normalize(raw string) Code {
	code := Code(strings.ToLower(strings.TrimSpace(raw)))
	if IsSupported(code) {
		return code
	}
	return ES
}

// Text is a multilingual string keyed by language code.
//
// # Invariant
//
// A valid Text has a non-empty Spanish entry; [Text.Resolve] relies on it.
// The content service enforces this when a collection is loaded.
type Text map[Code]string

// Resolve returns the translation for lang, falling back to Spanish when the
// requested entry is absent or empty.
func (t Text) Resolve(lang Code) string {
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	return t[ES]
}

// HasFallback reports whether the mandatory Spanish entry is present.
func (t Text) HasFallback() bool {
	return strings.TrimSpace(t[ES]) != ""
}

// NewCollator returns a locale-aware collator for the given language, used for
// ordering titles and hashtag names the way a native reader expects
// (e.g. "ñ" after "n" in Spanish, accent-insensitive ties).
func NewCollator(lang Code) *collate.Collator {
	return collate.New(language.Make(string(lang)))
}
