// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/violetaproject/violeta/pkg/slug"
)

/*
TestFrom verifies accent stripping and hyphenation for the languages
the platform publishes in.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"spanish_accents", "Violencia de género", "violencia-de-genero"},
		{"leading_trailing_space", "  El Segundo Sexo  ", "el-segundo-sexo"},
		{"catalan", "Dret a vot femení", "dret-a-vot-femeni"},
		{"french_accents", "Déclaration des droits de la femme", "declaration-des-droits-de-la-femme"},
		{"basque", "Emakumeen berdintasuna", "emakumeen-berdintasuna"},
		{"punctuation", "¿Qué es el patriarcado?", "que-es-el-patriarcado"},
		{"hash_symbol", "#MeToo", "metoo"},
		{"multiple_separators", "igualdad -- salarial", "igualdad-salarial"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}
