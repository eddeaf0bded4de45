// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

/*
Package hashtag defines the canonical hashtag registry.

Hashtags classify contents thematically (#igualdad, #violencia-de-genero) and
drive the structured hashtag filter of the search pipeline.

# Ownership contract

Hashtags live in two places: this canonical registry (authoritative
for browsing and management) and as denormalized copies embedded inside content
records (read by the search matcher and aggregates). The seed dataset builds
content records from registry entries so the two start in sync; nothing at
runtime mutates either side.
*/
package hashtag

import "github.com/violetaproject/violeta/internal/core/i18n"

// Hashtag is a thematic classifier applied to contents.
//
// It is small and immutable, so it is passed and embedded by value.
type Hashtag struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"` // unique, URL-safe
	Nombre      i18n.Text `json:"nombre"`
	Descripcion i18n.Text `json:"descripcion,omitempty"`
}

// NombreEn returns the display name in the given language (es-fallback).
func (h Hashtag) NombreEn(lang i18n.Code) string {
	return h.Nombre.Resolve(lang)
}
