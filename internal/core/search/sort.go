// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package search

import (
	"slices"
	"time"

	"github.com/violetaproject/violeta/internal/core/content"
	"github.com/violetaproject/violeta/internal/core/i18n"
)

/*
sortResults orders items in place by the given sort key.

Title keys compare the resolved active-language title with a locale-aware
collator. Year keys treat a missing anio as 0. fecha_publicacion is always
most-recent-first regardless of any ascending intent; records never published
sort last. Every sort is stable, so tied records keep their insertion order.
*/
func sortResults(items []*content.Content, orden Orden, lang i18n.Code) {
	switch orden {
	case OrdenTituloAsc, OrdenTituloDesc:
		collator := i18n.NewCollator(lang)
		direction := 1
		if orden == OrdenTituloDesc {
			direction = -1
		}
		slices.SortStableFunc(items, func(a, b *content.Content) int {
			return direction * collator.CompareString(a.Titulo.Resolve(lang), b.Titulo.Resolve(lang))
		})

	case OrdenAnioAsc:
		slices.SortStableFunc(items, func(a, b *content.Content) int {
			return yearOf(a) - yearOf(b)
		})

	case OrdenAnioDesc:
		slices.SortStableFunc(items, func(a, b *content.Content) int {
			return yearOf(b) - yearOf(a)
		})

	case OrdenFechaPublicacion:
		slices.SortStableFunc(items, func(a, b *content.Content) int {
			return publishedAt(b).Compare(publishedAt(a))
		})
	}
}

func yearOf(record *content.Content) int {
	if record.Anio == nil {
		return 0
	}
	return *record.Anio
}

func publishedAt(record *content.Content) time.Time {
	if record.PublicadoEn == nil {
		return time.Time{}
	}
	return *record.PublicadoEn
}
