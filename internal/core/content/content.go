// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

/*
Package content defines the core domain entities of the Violeta catalogue.

It manages the multilingual content records the platform publishes: historical
milestones, feminist concepts, violence-awareness guides, recommended
resources, testimonies, and support institutions — all with easy-read
descriptions and sign-language video support.

Core Responsibility:

  - Catalogue: The tagged-union [Content] record and its per-tipo payloads.
  - Lifecycle: The editorial estado machine (borrador → revisado → publicado)
    and the activo soft-delete flag.
  - Discovery inputs: hashtags, years, and resource subtypes consumed by the
    search filter pipeline.

This package acts as the source of truth for all content-related data models.
*/
package content

import (
	"time"

	"github.com/violetaproject/violeta/internal/core/hashtag"
	"github.com/violetaproject/violeta/internal/core/i18n"
)

// # Domain Enums

// Tipo discriminates the content variants of the catalogue.
type Tipo string

const (
	// TipoHistoria is a historical milestone of the feminist movement.
	TipoHistoria Tipo = "historia"

	// TipoConcepto explains a feminist concept in plain and easy-read language.
	TipoConcepto Tipo = "concepto"

	// TipoViolencia is an awareness guide about a form of gender violence.
	TipoViolencia Tipo = "violencia"

	// TipoRecurso recommends an external resource (book, film/series, documentary).
	TipoRecurso Tipo = "recurso"

	// TipoTestimonio is a first-person testimony.
	TipoTestimonio Tipo = "testimonio"

	// TipoInstitucion is a support institution with contact details.
	TipoInstitucion Tipo = "institucion"
)

// Tipos lists every recognised [Tipo] value.
var Tipos = []Tipo{TipoHistoria, TipoConcepto, TipoViolencia, TipoRecurso, TipoTestimonio, TipoInstitucion}

// IsValid reports whether t is a recognised [Tipo] value.
func (t Tipo) IsValid() bool {
	switch t {
	case
		TipoHistoria,
		TipoConcepto,
		TipoViolencia,
		TipoRecurso,
		TipoTestimonio,
		TipoInstitucion:
		return true
	}
	return false
}

// Subtipo further discriminates records of [TipoRecurso].
type Subtipo string

const (
	SubtipoLibro         Subtipo = "libro"
	SubtipoPeliculaSerie Subtipo = "pelicula_serie"
	SubtipoDocumental    Subtipo = "documental"
)

// IsValid reports whether s is a recognised [Subtipo] value.
func (s Subtipo) IsValid() bool {
	switch s {
	case SubtipoLibro, SubtipoPeliculaSerie, SubtipoDocumental:
		return true
	}
	return false
}

// Estado is the editorial lifecycle state of a record.
//
// The machine is strictly forward: borrador → revisado → publicado.
type Estado string

const (
	EstadoBorrador  Estado = "borrador"
	EstadoRevisado  Estado = "revisado"
	EstadoPublicado Estado = "publicado"
)

// IsValid reports whether e is a recognised [Estado] value.
func (e Estado) IsValid() bool {
	switch e {
	case EstadoBorrador, EstadoRevisado, EstadoPublicado:
		return true
	}
	return false
}

// CanTransitionTo reports whether the estado machine allows moving to next.
func (e Estado) CanTransitionTo(next Estado) bool {
	switch e {
	case EstadoBorrador:
		return next == EstadoRevisado
	case EstadoRevisado:
		return next == EstadoPublicado
	default:
		return false
	}
}

// # Core Entity

// Content is the central aggregate of the Violeta domain: one record of the
// multilingual catalogue, discriminated by [Tipo].
//
// The union is encoded the idiomatic Go way: a discriminant field plus
// optional typed payloads; consumers switch exhaustively on Tipo wherever
// behavior is type-specific.
type Content struct {
	ID   string `json:"id"`
	Slug string `json:"slug"` // URL-safe identifier, unique within its tipo, immutable once published
	Tipo Tipo   `json:"tipo"`

	// Multilingual text. The Spanish entry is mandatory and is the fallback
	// for every absent translation (see i18n.Text).
	Titulo           i18n.Text `json:"titulo"`
	Descripcion      i18n.Text `json:"descripcion"`
	DescripcionFacil i18n.Text `json:"descripcion_facil"` // easy-read variant

	// Hashtags are denormalized copies of registry entries (see package hashtag).
	Hashtags []hashtag.Hashtag `json:"hashtags,omitempty"`

	// VideoSenasURL points at the sign-language video for this record.
	VideoSenasURL string `json:"video_senas_url,omitempty"`

	Anio            *int    `json:"anio,omitempty"`
	AnioHasta       *int    `json:"anio_hasta,omitempty"` // historia ranges only; ≥ Anio
	Autor           *string `json:"autor,omitempty"`      // author/director for recursos
	DuracionMinutos *int    `json:"duracion_minutos,omitempty"`

	// Subtipo is set only when Tipo == TipoRecurso.
	Subtipo Subtipo `json:"subtipo,omitempty"`

	// Type-specific payloads (nil unless the Tipo matches).
	Violencia   *DatosViolencia   `json:"violencia,omitempty"`
	Institucion *DatosInstitucion `json:"institucion,omitempty"`

	// Lifecycle
	Activo        bool       `json:"activo"`
	Estado        Estado     `json:"estado"`
	PublicadoEn   *time.Time `json:"publicado_en,omitempty"`
	CreadoEn      time.Time  `json:"creado_en"`
	ActualizadoEn time.Time  `json:"actualizado_en"`
}

// DatosViolencia carries the fields specific to [TipoViolencia] records.
type DatosViolencia struct {
	// SenalesAlerta describes warning signs in plain language.
	SenalesAlerta i18n.Text `json:"senales_alerta,omitempty"`

	// InstitucionIDs references support institutions by content ID.
	InstitucionIDs []string `json:"institucion_ids,omitempty"`
}

// DatosInstitucion carries the fields specific to [TipoInstitucion] records.
type DatosInstitucion struct {
	Telefono string `json:"telefono,omitempty"`
	Email    string `json:"email,omitempty"`
	Web      string `json:"web,omitempty"`
	Ambito   string `json:"ambito,omitempty"` // scope of operation (estatal, autonómico, local)
}

// EsPublico reports whether the record is visible on the public site:
// active and editorially published.
func (c *Content) EsPublico() bool {
	return c.Activo && c.Estado == EstadoPublicado
}

// TituloEn returns the title in the given language (es-fallback).
func (c *Content) TituloEn(lang i18n.Code) string {
	return c.Titulo.Resolve(lang)
}

// # Field Identifiers

// Field names for validation and error reporting.
const (
	FieldID               = "id"
	FieldSlug             = "slug"
	FieldTipo             = "tipo"
	FieldTitulo           = "titulo"
	FieldDescripcion      = "descripcion"
	FieldDescripcionFacil = "descripcion_facil"
	FieldAnio             = "anio"
	FieldAnioHasta        = "anio_hasta"
	FieldSubtipo          = "subtipo"
	FieldEstado           = "estado"
	FieldEmail            = "email"
)
