// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package search

import (
	"strings"

	"github.com/violetaproject/violeta/internal/core/content"
	"github.com/violetaproject/violeta/internal/core/i18n"
)

// # Sort Keys

// Orden identifies a result sort key.
type Orden string

const (
	OrdenTituloAsc        Orden = "titulo_asc"
	OrdenTituloDesc       Orden = "titulo_desc"
	OrdenAnioAsc          Orden = "anio_asc"
	OrdenAnioDesc         Orden = "anio_desc"
	OrdenFechaPublicacion Orden = "fecha_publicacion"
)

// IsValid reports whether the sort key is one of the five supported values.
func (o Orden) IsValid() bool {
	switch o {
	case OrdenTituloAsc, OrdenTituloDesc, OrdenAnioAsc, OrdenAnioDesc, OrdenFechaPublicacion:
		return true
	}
	return false
}

// # Filter Criteria

/*
Criteria is the ephemeral filter set for one search call.

Empty fields mean "no filter on this dimension". A blank or whitespace-only
query, an empty tipo set, and so on all degrade to the unfiltered collection
rather than erroring. An unrecognised Orden is ignored the same way.
*/
type Criteria struct {
	Query      string            `json:"query,omitempty"`
	Tipos      []content.Tipo    `json:"tipos,omitempty"`
	HashtagIDs []string          `json:"hashtag_ids,omitempty"`
	AnioDesde  *int              `json:"anio_desde,omitempty"`
	AnioHasta  *int              `json:"anio_hasta,omitempty"`
	Subtipos   []content.Subtipo `json:"subtipos,omitempty"`
	Orden      Orden             `json:"orden,omitempty"`
	Lang       i18n.Code         `json:"lang,omitempty"`
}

// HasQuery reports whether the criteria carry a usable free-text query.
func (c Criteria) HasQuery() bool {
	return strings.TrimSpace(c.Query) != ""
}

// HasFilters reports whether any filtering dimension is active. Sort key and
// language alone do not count, since they never narrow the result.
func (c Criteria) HasFilters() bool {
	return c.HasQuery() ||
		len(c.Tipos) > 0 ||
		len(c.HashtagIDs) > 0 ||
		c.AnioDesde != nil ||
		c.AnioHasta != nil ||
		len(c.Subtipos) > 0
}

/*
Patch is a partial criteria update for the current-filter snapshot.

Pointer and nil-slice semantics distinguish "leave unchanged" from "clear":
a nil slice leaves the dimension as it is, an empty non-nil slice clears it.
*/
type Patch struct {
	Query      *string           `json:"query,omitempty"`
	Tipos      []content.Tipo    `json:"tipos,omitempty"`
	HashtagIDs []string          `json:"hashtag_ids,omitempty"`
	AnioDesde  *int              `json:"anio_desde,omitempty"`
	AnioHasta  *int              `json:"anio_hasta,omitempty"`
	Subtipos   []content.Subtipo `json:"subtipos,omitempty"`
	Orden      *Orden            `json:"orden,omitempty"`
	Lang       *i18n.Code        `json:"lang,omitempty"`
}

// applyTo merges the patch into a criteria value, last writer wins per field.
func (p Patch) applyTo(criteria Criteria) Criteria {
	if p.Query != nil {
		criteria.Query = *p.Query
	}
	if p.Tipos != nil {
		criteria.Tipos = p.Tipos
	}
	if p.HashtagIDs != nil {
		criteria.HashtagIDs = p.HashtagIDs
	}
	if p.AnioDesde != nil {
		criteria.AnioDesde = p.AnioDesde
	}
	if p.AnioHasta != nil {
		criteria.AnioHasta = p.AnioHasta
	}
	if p.Subtipos != nil {
		criteria.Subtipos = p.Subtipos
	}
	if p.Orden != nil {
		criteria.Orden = *p.Orden
	}
	if p.Lang != nil {
		criteria.Lang = i18n.Normalize(string(*p.Lang))
	}
	return criteria
}

// # Results

// Result is the outcome of one search call. Items is a view over the working
// collection, not a copy of the records.
type Result struct {
	Items          []*content.Content `json:"items"`
	TotalCount     int                `json:"total_count"`
	FilteredCount  int                `json:"filtered_count"`
	AppliedFilters Criteria           `json:"applied_filters"`
}

// YearRange is the min/max aggregate over all present years.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
