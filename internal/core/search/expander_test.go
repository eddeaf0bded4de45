// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpanderIncludesSynonymsOfMatchedCanonical(t *testing.T) {
	expander := NewExpander(NewLexicon())

	expanded := expander.Expand("mujer")

	assert.Contains(t, expanded, "mujer")
	assert.Contains(t, expanded, "mujeres")
	assert.Contains(t, expanded, "femenino")
	assert.Contains(t, expanded, "woman")
}

func TestExpanderFollowsRelatedConceptsOneHop(t *testing.T) {
	expander := NewExpander(NewLexicon())

	expanded := expander.Expand("violencia")

	// Related concept plus its synonyms.
	assert.Contains(t, expanded, "feminicidio")
	assert.Contains(t, expanded, "femicidio")
	// One hop only: "patriarcado" relates to "machismo" which relates to
	// "violencia", but the reverse chain must not be followed twice.
	assert.NotContains(t, expanded, "patriarcal")
}

func TestExpanderSeedsTokensAndFullPhrase(t *testing.T) {
	expander := NewExpander(NewLexicon())

	expanded := expander.Expand("  Brecha Salarial  ")

	assert.Contains(t, expanded, "brecha")
	assert.Contains(t, expanded, "salarial")
	assert.Contains(t, expanded, "brecha salarial")
}

func TestExpanderMatchesSynonymsBySubstring(t *testing.T) {
	expander := NewExpander(NewLexicon())

	// "sufragistas" contains the synonym "sufragista".
	expanded := expander.Expand("sufragistas")

	assert.Contains(t, expanded, "sufragio")
	assert.Contains(t, expanded, "voto")
}

func TestExpanderIsDeterministic(t *testing.T) {
	expander := NewExpander(NewLexicon())

	first := expander.Expand("violencia machista")
	second := expander.Expand("violencia machista")

	assert.Equal(t, first, second)
	assert.IsIncreasing(t, first)
}

func TestExpanderEmptyQuery(t *testing.T) {
	expander := NewExpander(NewLexicon())

	assert.Nil(t, expander.Expand(""))
	assert.Nil(t, expander.Expand("   "))
}

func TestExpanderUnknownTermStaysItself(t *testing.T) {
	expander := NewExpander(NewLexicon())

	expanded := expander.Expand("zzyzx")

	assert.Equal(t, []string{"zzyzx"}, expanded)
}
