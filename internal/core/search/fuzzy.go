// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package search

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// fuzzyMinTermLength is the minimum term length (in runes) for edit-distance
// matching. Shorter terms require exact equality, since tolerating even one
// edit on a three-letter word matches half the dictionary.
const fuzzyMinTermLength = 4

/*
fuzzyMatch reports whether word approximately matches term.

Tolerance scales with the term length and is capped at two edits:

	tolerance = min(2, len(term)/4)

so a 4 to 7 rune term tolerates one edit and anything longer tolerates two.
Comparison is over runes, not bytes, so accented characters count as a single
edit.
*/
func fuzzyMatch(word, term string) bool {
	termLength := utf8.RuneCountInString(term)
	if termLength < fuzzyMinTermLength {
		return word == term
	}

	tolerance := termLength / 4
	if tolerance > 2 {
		tolerance = 2
	}

	return edlib.LevenshteinDistance(word, term) <= tolerance
}
