// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package search

import (
	"slices"

	"github.com/violetaproject/violeta/internal/core/content"
	"github.com/violetaproject/violeta/internal/core/hashtag"
	"github.com/violetaproject/violeta/internal/core/i18n"
)

// # Aggregates

// collectHashtags returns the distinct hashtags embedded across all records,
// sorted by localized display name.
func collectHashtags(records []*content.Content, lang i18n.Code) []hashtag.Hashtag {
	seen := make(map[string]bool)
	var distinct []hashtag.Hashtag

	for _, record := range records {
		for _, tag := range record.Hashtags {
			if seen[tag.ID] {
				continue
			}
			seen[tag.ID] = true
			distinct = append(distinct, tag)
		}
	}

	collator := i18n.NewCollator(lang)
	slices.SortStableFunc(distinct, func(a, b hashtag.Hashtag) int {
		return collator.CompareString(a.Nombre.Resolve(lang), b.Nombre.Resolve(lang))
	})

	return distinct
}

// collectYearRange returns the min and max of all present years, or nil when
// no record carries a year.
func collectYearRange(records []*content.Content) *YearRange {
	var yearRange *YearRange

	for _, record := range records {
		if record.Anio == nil {
			continue
		}

		year := *record.Anio
		if yearRange == nil {
			yearRange = &YearRange{Min: year, Max: year}
			continue
		}
		if year < yearRange.Min {
			yearRange.Min = year
		}
		if year > yearRange.Max {
			yearRange.Max = year
		}
	}

	return yearRange
}
