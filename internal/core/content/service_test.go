// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package content

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/violetaproject/violeta/internal/core/i18n"
	"github.com/violetaproject/violeta/internal/platform/apperr"
	"github.com/violetaproject/violeta/pkg/pointer"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validRecord(id, slug string, tipo Tipo) *Content {
	record := &Content{
		ID:               id,
		Slug:             slug,
		Tipo:             tipo,
		Titulo:           i18n.Text{i18n.ES: "Título de prueba"},
		Descripcion:      i18n.Text{i18n.ES: "Descripción de prueba"},
		DescripcionFacil: i18n.Text{i18n.ES: "Texto en lectura fácil"},
		Activo:           true,
		Estado:           EstadoBorrador,
	}
	if tipo == TipoRecurso {
		record.Subtipo = SubtipoLibro
	}
	return record
}

func newTestService(t *testing.T, records ...*Content) *Service {
	t.Helper()

	service := NewService(NewMemoryStore(), discardLogger())
	if len(records) > 0 {
		require.NoError(t, service.Replace(context.Background(), records))
	}
	return service
}

// # Collection Loading

func TestServiceReplaceAcceptsValidCollection(t *testing.T) {
	service := newTestService(t)

	records := []*Content{
		validRecord("ct-001", "el-voto-femenino", TipoHistoria),
		validRecord("ct-002", "patriarcado", TipoConcepto),
		validRecord("ct-003", "el-segundo-sexo", TipoRecurso),
	}

	require.NoError(t, service.Replace(context.Background(), records))

	all, err := service.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestServiceReplaceRejectsMissingSpanishEntry(t *testing.T) {
	record := validRecord("ct-001", "glass-ceiling", TipoConcepto)
	record.Titulo = i18n.Text{i18n.EN: "Glass ceiling"}

	service := newTestService(t)
	err := service.Replace(context.Background(), []*Content{record})

	require.Error(t, err)
	assert.True(t, apperr.IsAppError(err))
}

func TestServiceReplaceRejectsDuplicateSlugWithinTipo(t *testing.T) {
	records := []*Content{
		validRecord("ct-001", "igualdad", TipoConcepto),
		validRecord("ct-002", "igualdad", TipoConcepto),
	}

	service := newTestService(t)
	err := service.Replace(context.Background(), records)

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}

func TestServiceReplaceRejectsDuplicateIDAcrossTipos(t *testing.T) {
	records := []*Content{
		validRecord("ct-001", "igualdad", TipoConcepto),
		validRecord("ct-001", "el-voto-femenino", TipoHistoria),
	}

	service := newTestService(t, validRecord("ct-000", "previa", TipoConcepto))
	err := service.Replace(context.Background(), records)

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)

	// The rejected load must not leak into the served collection.
	all, err := service.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ct-000", all[0].ID)
}

func TestServiceReplaceAllowsSameSlugAcrossTipos(t *testing.T) {
	records := []*Content{
		validRecord("ct-001", "igualdad", TipoConcepto),
		validRecord("ct-002", "igualdad", TipoHistoria),
	}

	service := newTestService(t)
	assert.NoError(t, service.Replace(context.Background(), records))
}

func TestServiceReplaceRejectsInvertedYearRange(t *testing.T) {
	record := validRecord("ct-001", "la-segunda-republica", TipoHistoria)
	record.Anio = pointer.To(1936)
	record.AnioHasta = pointer.To(1931)

	service := newTestService(t)
	assert.Error(t, service.Replace(context.Background(), []*Content{record}))
}

func TestServiceReplaceRejectsSubtipoOutsideRecursos(t *testing.T) {
	record := validRecord("ct-001", "patriarcado", TipoConcepto)
	record.Subtipo = SubtipoDocumental

	service := newTestService(t)
	assert.Error(t, service.Replace(context.Background(), []*Content{record}))
}

func TestServiceReplaceRejectsRecursoWithoutSubtipo(t *testing.T) {
	record := validRecord("ct-001", "el-segundo-sexo", TipoRecurso)
	record.Subtipo = ""

	service := newTestService(t)
	assert.Error(t, service.Replace(context.Background(), []*Content{record}))
}

// # Public Lookups

func TestServiceGetContentResolvesIDAndSlug(t *testing.T) {
	record := validRecord("ct-001", "el-voto-femenino", TipoHistoria)
	record.Estado = EstadoPublicado
	record.PublicadoEn = pointer.To(time.Now())

	service := newTestService(t, record)

	byID, err := service.GetContent(context.Background(), "ct-001")
	require.NoError(t, err)
	assert.Equal(t, "el-voto-femenino", byID.Slug)

	bySlug, err := service.GetContent(context.Background(), "el-voto-femenino")
	require.NoError(t, err)
	assert.Equal(t, "ct-001", bySlug.ID)
}

// brokenRepo simulates a repository whose ID lookup fails with something
// other than a missing record.
type brokenRepo struct {
	Repository
	findByIDErr error
}

func (repo *brokenRepo) FindByID(context.Context, string) (*Content, error) {
	return nil, repo.findByIDErr
}

func TestServiceGetContentSurfacesRepositoryFailures(t *testing.T) {
	failure := apperr.Internal(assert.AnError)
	service := NewService(&brokenRepo{Repository: NewMemoryStore(), findByIDErr: failure}, discardLogger())

	_, err := service.GetContent(context.Background(), "ct-001")
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "INTERNAL_ERROR", appError.Code, "a repository failure must not be masked as a slug miss")
}

func TestServiceGetContentHidesNonPublicRecords(t *testing.T) {
	draft := validRecord("ct-001", "patriarcado", TipoConcepto)

	service := newTestService(t, draft)

	_, err := service.GetContent(context.Background(), "ct-001")
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
}

// # Editorial Lifecycle

func TestServiceUpdateEstadoAdvancesForward(t *testing.T) {
	record := validRecord("ct-001", "patriarcado", TipoConcepto)
	service := newTestService(t, record)

	updated, err := service.UpdateEstado(context.Background(), "ct-001", EstadoRevisado)
	require.NoError(t, err)
	assert.Equal(t, EstadoRevisado, updated.Estado)
	assert.Nil(t, updated.PublicadoEn)

	published, err := service.UpdateEstado(context.Background(), "ct-001", EstadoPublicado)
	require.NoError(t, err)
	assert.Equal(t, EstadoPublicado, published.Estado)
	require.NotNil(t, published.PublicadoEn, "publishing stamps the publication date")
}

func TestServiceUpdateEstadoRejectsInvalidTransition(t *testing.T) {
	record := validRecord("ct-001", "patriarcado", TipoConcepto)
	service := newTestService(t, record)

	_, err := service.UpdateEstado(context.Background(), "ct-001", EstadoPublicado)
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNPROCESSABLE", appError.Code)
}

func TestServiceSetActivo(t *testing.T) {
	record := validRecord("ct-001", "patriarcado", TipoConcepto)
	service := newTestService(t, record)

	updated, err := service.SetActivo(context.Background(), "ct-001", false)
	require.NoError(t, err)
	assert.False(t, updated.Activo)
}
