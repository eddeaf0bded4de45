// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyMatch(t *testing.T) {
	cases := []struct {
		name  string
		word  string
		term  string
		match bool
	}{
		{name: "one substitution within tolerance", word: "feminismo", term: "feminisno", match: true},
		{name: "exact match", word: "igualdad", term: "igualdad", match: true},
		{name: "short terms require equality", word: "cat", term: "bat", match: false},
		{name: "short exact term", word: "sos", term: "sos", match: true},
		{name: "two edits on a long term", word: "violencia", term: "vialencla", match: true},
		{name: "three edits exceed the cap", word: "violencia", term: "vialenclo", match: false},
		{name: "four rune term tolerates one edit", word: "voto", term: "vota", match: true},
		{name: "four rune term rejects two edits", word: "voto", term: "bota", match: false},
		{name: "accented rune counts as one edit", word: "agresion", term: "agresión", match: true},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.match, fuzzyMatch(testCase.word, testCase.term))
		})
	}
}
