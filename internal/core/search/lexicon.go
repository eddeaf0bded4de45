// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package search

import (
	"sort"
	"strings"
)

/*
Lexicon is the static cross-lingual synonym dictionary and related-concept
graph that drives query expansion.

Synonym lists are flat: each canonical term maps to one list spanning all six
supported languages, because a visitor searching in Catalan still expects to
find records whose text only exists in Spanish. Related concepts are semantic
neighbours rather than synonyms ("violencia" relates to "feminicidio" but does
not mean it), and expansion follows them exactly one hop.

The tables are immutable after construction. All lookups are case-insensitive
over lowercased keys.
*/
type Lexicon struct {
	synonyms map[string][]string
	related  map[string][]string

	// canonicals caches the sorted key set so iteration order is stable.
	canonicals []string
}

// NewLexicon builds the built-in feminist-domain lexicon.
func NewLexicon() *Lexicon {
	lexicon := &Lexicon{
		synonyms: defaultSynonyms(),
		related:  defaultRelated(),
	}

	lexicon.canonicals = make([]string, 0, len(lexicon.synonyms))
	for canonical := range lexicon.synonyms {
		lexicon.canonicals = append(lexicon.canonicals, canonical)
	}
	sort.Strings(lexicon.canonicals)

	return lexicon
}

// Canonicals returns the canonical terms in lexicographic order.
func (lexicon *Lexicon) Canonicals() []string {
	return lexicon.canonicals
}

// Synonyms returns the synonym list for a canonical term, or nil.
func (lexicon *Lexicon) Synonyms(canonical string) []string {
	return lexicon.synonyms[strings.ToLower(canonical)]
}

// Related returns the related canonical terms for a canonical term, or nil.
func (lexicon *Lexicon) Related(canonical string) []string {
	return lexicon.related[strings.ToLower(canonical)]
}

/*
defaultSynonyms returns the canonical → synonyms table.

Each list mixes Spanish, English, Catalan, Galician, Basque, and French forms
plus common inflections. Keep entries lowercase.
*/
func defaultSynonyms() map[string][]string {
	return map[string][]string{
		"mujer": {
			"mujeres", "femenino", "femenina", "woman", "women",
			"dona", "dones", "muller", "mulleres", "emakume", "emakumeak",
			"femme", "femmes",
		},
		"feminismo": {
			"feminista", "feministas", "feminism", "feminist",
			"feminisme", "feminismoa", "féminisme",
		},
		"igualdad": {
			"equidad", "paridad", "equality", "equity",
			"igualtat", "igualdade", "berdintasuna", "égalité",
		},
		"violencia": {
			"maltrato", "abuso", "agresión", "agresiones",
			"violence", "abuse", "violència", "maltractament",
			"indarkeria", "tratu txarrak", "violences",
		},
		"feminicidio": {
			"femicidio", "asesinato machista", "femicide", "feminicide",
			"feminicidi", "feminizidioa", "féminicide",
		},
		"machismo": {
			"machista", "sexismo", "sexista", "misoginia",
			"sexism", "misogyny", "masclisme", "machismoa", "sexisme",
		},
		"patriarcado": {
			"patriarcal", "patriarchy", "patriarchal",
			"patriarcat", "patriarcado social", "patriarkatua",
		},
		"derechos": {
			"derecho", "rights", "drets", "dereitos", "eskubideak", "droits",
		},
		"sufragio": {
			"voto", "sufragista", "sufragistas", "suffrage", "vote",
			"sufragi", "sufragioa", "votación",
		},
		"brecha salarial": {
			"brecha de género", "desigualdad salarial", "pay gap",
			"wage gap", "bretxa salarial", "soldata arrakala",
			"écart salarial",
		},
		"acoso": {
			"hostigamiento", "harassment", "assetjament",
			"acoso sexual", "acoso laboral", "jazarpena", "harcèlement",
		},
		"techo de cristal": {
			"glass ceiling", "sostre de vidre", "teito de cristal",
			"kristalezko sabaia", "plafond de verre",
		},
		"empoderamiento": {
			"empoderar", "empowerment", "apoderament",
			"ahalduntzea", "autonomía", "emancipación", "émancipation",
		},
		"consentimiento": {
			"consent", "consentiment", "adostasuna", "consentement",
		},
		"cuidados": {
			"trabajo doméstico", "conciliación", "care work",
			"cures", "coidados", "zaintza", "soins",
		},
		"aborto": {
			"interrupción del embarazo", "abortion", "avortament",
			"abortua", "avortement", "derechos reproductivos",
		},
		"trata": {
			"explotación sexual", "trafficking", "tràfic de persones",
			"explotación", "emakumeen salerosketa", "traite",
		},
		"lgtbi": {
			"lgbt", "lgtbiq", "lesbiana", "gay", "bisexual",
			"transexual", "trans", "queer", "diversidad sexual",
		},
		"interseccionalidad": {
			"intersectionality", "interseccionalitat",
			"intersekzionalitatea", "intersectionnalité",
		},
		"techo": {
			"límite", "barrera", "ceiling",
		},
	}
}

/*
defaultRelated returns the canonical → related-concepts graph.

Values must themselves be canonical terms of the synonym table so expansion
can pull their synonyms in the same pass.
*/
func defaultRelated() map[string][]string {
	return map[string][]string{
		"violencia":       {"feminicidio", "acoso", "machismo", "trata"},
		"feminicidio":     {"violencia", "machismo"},
		"feminismo":       {"igualdad", "derechos", "empoderamiento"},
		"igualdad":        {"brecha salarial", "techo de cristal", "derechos"},
		"machismo":        {"patriarcado", "violencia"},
		"patriarcado":     {"machismo", "feminismo"},
		"mujer":           {"feminismo", "igualdad", "derechos"},
		"sufragio":        {"derechos", "igualdad"},
		"brecha salarial": {"igualdad", "techo de cristal", "cuidados"},
		"acoso":           {"violencia", "machismo"},
		"cuidados":        {"igualdad", "brecha salarial"},
		"aborto":          {"derechos", "consentimiento"},
		"trata":           {"violencia"},
		"empoderamiento":  {"feminismo", "igualdad"},
	}
}
