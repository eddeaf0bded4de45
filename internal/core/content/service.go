// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/violetaproject/violeta/internal/platform/apperr"
	"github.com/violetaproject/violeta/internal/platform/validate"
	"github.com/violetaproject/violeta/pkg/pointer"
)

// # Service Layer

// Service orchestrates the business logic for the content catalogue.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a content [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// # Collection Lifecycle

/*
Replace loads the working collection wholesale (startup from seed data).

Description: Validates every record against the catalogue invariants before
swapping the collection; a single invalid record rejects the whole load, since
a partially loaded catalogue would silently break search results.

Invariants enforced:
  - tipo is a recognised variant; subtipo only (and always) for recursos
  - titulo, descripcion, and descripcion_facil carry the mandatory es entry
  - id is unique across the collection; slug is well-formed and unique
    within its tipo
  - anio_hasta, when present, is ≥ anio
*/
func (service *Service) Replace(context context.Context, records []*Content) error {

	ids := make(map[string]bool, len(records))
	slugsPorTipo := make(map[Tipo]map[string]bool)

	for _, record := range records {
		if err := service.validateRecord(record, slugsPorTipo); err != nil {
			return err
		}
		if ids[record.ID] {
			return apperr.Conflict("Duplicate content id: " + record.ID)
		}
		ids[record.ID] = true
	}

	if err := service.repo.Replace(context, records); err != nil {
		return err
	}

	service.logger.Info("content_collection_loaded", slog.Int("count", len(records)))
	return nil
}

// validateRecord checks one record against the catalogue invariants,
// tracking slug uniqueness per tipo across the load.
func (service *Service) validateRecord(record *Content, slugsPorTipo map[Tipo]map[string]bool) error {
	validator := &validate.Validator{}

	validator.Required(FieldID, record.ID)
	validator.Slug(FieldSlug, record.Slug)
	validator.Custom(FieldTipo, !record.Tipo.IsValid(), "Unknown content tipo")

	// Mandatory Spanish entries — the fallback invariant of every
	// multilingual field.
	validator.Custom(FieldTitulo, !record.Titulo.HasFallback(), "Missing mandatory es entry")
	validator.Custom(FieldDescripcion, !record.Descripcion.HasFallback(), "Missing mandatory es entry")
	validator.Custom(FieldDescripcionFacil, !record.DescripcionFacil.HasFallback(), "Missing mandatory es entry")

	// Year ranges are historia-only and must not be inverted.
	if record.AnioHasta != nil {
		validator.Custom(FieldAnioHasta, record.Anio == nil, "anio_hasta requires anio")
		validator.Custom(FieldAnioHasta, record.Anio != nil && *record.AnioHasta < *record.Anio, "Must not precede anio")
		validator.Custom(FieldAnioHasta, record.Tipo != TipoHistoria, "Year ranges apply to historia records only")
	}

	// Subtipo is the recurso discriminant.
	switch record.Tipo {
	case TipoRecurso:
		validator.Custom(FieldSubtipo, !record.Subtipo.IsValid(), "Recurso requires a valid subtipo")
	default:
		validator.Custom(FieldSubtipo, record.Subtipo != "", "Subtipo applies to recurso records only")
	}

	// Institution contact details, when provided, must be well-formed.
	if record.Institucion != nil && record.Institucion.Email != "" {
		validator.Email(FieldEmail, record.Institucion.Email)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	// Slug uniqueness within the tipo.
	if slugsPorTipo[record.Tipo] == nil {
		slugsPorTipo[record.Tipo] = make(map[string]bool)
	}
	if slugsPorTipo[record.Tipo][record.Slug] {
		return apperr.Conflict("Duplicate slug within tipo " + string(record.Tipo) + ": " + record.Slug)
	}
	slugsPorTipo[record.Tipo][record.Slug] = true

	return nil
}

// # Public Lookups

// ListPublic returns the publicly visible collection in insertion order.
func (service *Service) ListPublic(context context.Context) ([]*Content, error) {
	return service.repo.ListPublic(context)
}

/*
GetContent fetches a single publicly visible record by ID or slug.

Description: The service determines the lookup strategy from the identifier —
an exact ID hit wins, otherwise it resolves via the URL slug. Records that are
deactivated or not yet published behave as if they did not exist.
*/
func (service *Service) GetContent(context context.Context, identifier string) (*Content, error) {
	record, err := service.repo.FindByID(context, identifier)
	if err != nil {
		// Only a missing ID falls through to the slug lookup. Any other
		// repository failure must surface as-is.
		if !apperr.IsNotFound(err) {
			return nil, err
		}
		record, err = service.repo.FindBySlug(context, identifier)
		if err != nil {
			return nil, err
		}
	}

	if !record.EsPublico() {
		return nil, apperr.NotFound("Contenido")
	}

	return record, nil
}

// # Editorial Management (admin)

// ListAll returns the full collection, drafts and deactivated records included.
func (service *Service) ListAll(context context.Context) ([]*Content, error) {
	return service.repo.List(context)
}

/*
UpdateEstado advances a record through the editorial lifecycle.

Description: Transitions are strictly forward (borrador → revisado →
publicado); publishing stamps PublicadoEn, which the fecha_publicacion sort
key reads.
*/
func (service *Service) UpdateEstado(context context.Context, id string, next Estado) (*Content, error) {

	validator := &validate.Validator{}
	validator.OneOf(FieldEstado, string(next),
		string(EstadoBorrador),
		string(EstadoRevisado),
		string(EstadoPublicado),
	)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	record, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if !record.Estado.CanTransitionTo(next) {
		return nil, apperr.Unprocessable("Estado transition " + string(record.Estado) + " → " + string(next) + " is not allowed")
	}

	record.Estado = next
	record.ActualizadoEn = service.now()
	if next == EstadoPublicado && record.PublicadoEn == nil {
		record.PublicadoEn = pointer.To(service.now())
	}

	if err := service.repo.Update(context, record); err != nil {
		return nil, err
	}

	service.logger.Info("content_estado_updated",
		slog.String("content_id", record.ID),
		slog.String("estado", string(next)),
	)

	return record, nil
}

// SetActivo toggles the soft-delete flag of a record.
func (service *Service) SetActivo(context context.Context, id string, activo bool) (*Content, error) {
	record, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	record.Activo = activo
	record.ActualizadoEn = service.now()

	if err := service.repo.Update(context, record); err != nil {
		return nil, err
	}

	service.logger.Info("content_activo_updated",
		slog.String("content_id", record.ID),
		slog.Bool("activo", activo),
	)

	return record, nil
}
