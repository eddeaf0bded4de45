// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package search

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/violetaproject/violeta/internal/core/content"
	"github.com/violetaproject/violeta/internal/core/hashtag"
	"github.com/violetaproject/violeta/internal/core/i18n"
	"github.com/violetaproject/violeta/pkg/pointer"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeReporter records search events for assertion.
type fakeReporter struct {
	mutex   sync.Mutex
	queries []string
	popular []string
}

func (reporter *fakeReporter) RecordSearch(_ context.Context, query string, _ int) {
	reporter.mutex.Lock()
	defer reporter.mutex.Unlock()
	reporter.queries = append(reporter.queries, query)
}

func (reporter *fakeReporter) PopularQueries(_ context.Context, _ int) []string {
	return reporter.popular
}

func (reporter *fakeReporter) recorded() []string {
	reporter.mutex.Lock()
	defer reporter.mutex.Unlock()
	return append([]string(nil), reporter.queries...)
}

func publicRecord(id, slug string, tipo content.Tipo, titulo string) *content.Content {
	return &content.Content{
		ID:               id,
		Slug:             slug,
		Tipo:             tipo,
		Titulo:           i18n.Text{i18n.ES: titulo},
		Descripcion:      i18n.Text{i18n.ES: "Descripción de " + titulo},
		DescripcionFacil: i18n.Text{i18n.ES: "Texto fácil de " + titulo},
		Activo:           true,
		Estado:           content.EstadoPublicado,
		PublicadoEn:      pointer.To(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)),
	}
}

// searchFixtures mirrors the historical sample collection: four historias,
// one concepto, one recurso libro, and one violencia record.
func searchFixtures() []*content.Content {
	tagIgualdad := hashtag.Hashtag{ID: "ht-001", Slug: "igualdad", Nombre: i18n.Text{i18n.ES: "Igualdad", i18n.EN: "Equality"}}
	tagViolencia := hashtag.Hashtag{ID: "ht-002", Slug: "violencia-de-genero", Nombre: i18n.Text{i18n.ES: "Violencia de género"}}

	olympe := publicRecord("ct-001", "declaracion-derechos-mujer", content.TipoHistoria, "Declaración de los Derechos de la Mujer")
	olympe.Anio = pointer.To(1791)
	olympe.Hashtags = []hashtag.Hashtag{tagIgualdad}

	voto := publicRecord("ct-002", "el-voto-femenino", content.TipoHistoria, "El voto femenino en España")
	voto.Anio = pointer.To(1931)
	voto.Hashtags = []hashtag.Hashtag{tagIgualdad}

	divorcio := publicRecord("ct-003", "ley-del-divorcio", content.TipoHistoria, "La ley del divorcio")
	divorcio.Anio = pointer.To(1975)

	metoo := publicRecord("ct-004", "movimiento-metoo", content.TipoHistoria, "El movimiento MeToo")
	metoo.Anio = pointer.To(2017)

	patriarcado := publicRecord("ct-005", "patriarcado", content.TipoConcepto, "Patriarcado")

	libro := publicRecord("ct-006", "el-segundo-sexo", content.TipoRecurso, "El segundo sexo")
	libro.Subtipo = content.SubtipoLibro
	libro.Autor = pointer.To("Simone de Beauvoir")
	libro.Anio = pointer.To(1949)

	violencia := publicRecord("ct-007", "senales-de-alerta", content.TipoViolencia, "Señales de alerta")
	violencia.Descripcion = i18n.Text{i18n.ES: "Cómo reconocer la violencia en la pareja y pedir ayuda"}
	violencia.Hashtags = []hashtag.Hashtag{tagViolencia}

	return []*content.Content{olympe, voto, divorcio, metoo, patriarcado, libro, violencia}
}

func newSearchService(t *testing.T, analytics Reporter) *Service {
	t.Helper()

	store := content.NewMemoryStore()
	require.NoError(t, store.Replace(context.Background(), searchFixtures()))

	return NewService(store, NewLexicon(), analytics, discardLogger())
}

// # Filter Pipeline

func TestSearchByTipo(t *testing.T) {
	service := newSearchService(t, nil)

	result, err := service.Search(context.Background(), Criteria{Tipos: []content.Tipo{content.TipoHistoria}})
	require.NoError(t, err)

	assert.Equal(t, 7, result.TotalCount)
	assert.Equal(t, 4, result.FilteredCount)
	// Insertion order preserved when no sort key is given.
	assert.Equal(t, "ct-001", result.Items[0].ID)
	assert.Equal(t, "ct-004", result.Items[3].ID)
}

func TestSearchIsIdempotent(t *testing.T) {
	service := newSearchService(t, nil)
	criteria := Criteria{Query: "mujer", Tipos: []content.Tipo{content.TipoHistoria}}

	first, err := service.Search(context.Background(), criteria)
	require.NoError(t, err)
	second, err := service.Search(context.Background(), criteria)
	require.NoError(t, err)

	assert.Equal(t, first.FilteredCount, second.FilteredCount)
	for index := range first.Items {
		assert.Equal(t, first.Items[index].ID, second.Items[index].ID)
	}
}

func TestSearchFilterMonotonicity(t *testing.T) {
	service := newSearchService(t, nil)

	broad, err := service.Search(context.Background(), Criteria{Tipos: []content.Tipo{content.TipoHistoria}})
	require.NoError(t, err)

	narrow, err := service.Search(context.Background(), Criteria{
		Tipos:     []content.Tipo{content.TipoHistoria},
		AnioDesde: pointer.To(1900),
	})
	require.NoError(t, err)

	narrower, err := service.Search(context.Background(), Criteria{
		Tipos:      []content.Tipo{content.TipoHistoria},
		AnioDesde:  pointer.To(1900),
		HashtagIDs: []string{"ht-001"},
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, narrow.FilteredCount, broad.FilteredCount)
	assert.LessOrEqual(t, narrower.FilteredCount, narrow.FilteredCount)
}

func TestSearchYearRangeExcludesYearlessRecords(t *testing.T) {
	service := newSearchService(t, nil)

	result, err := service.Search(context.Background(), Criteria{AnioDesde: pointer.To(1700), AnioHasta: pointer.To(2100)})
	require.NoError(t, err)

	// Patriarcado and the violencia record have no year and drop out even
	// though the range spans everything else.
	assert.Equal(t, 5, result.FilteredCount)
	for _, record := range result.Items {
		assert.NotNil(t, record.Anio)
	}
}

func TestSearchYearBounds(t *testing.T) {
	service := newSearchService(t, nil)

	result, err := service.Search(context.Background(), Criteria{AnioDesde: pointer.To(1931), AnioHasta: pointer.To(1975)})
	require.NoError(t, err)

	require.Equal(t, 3, result.FilteredCount)
	assert.Equal(t, "ct-002", result.Items[0].ID)
	assert.Equal(t, "ct-003", result.Items[1].ID)
	assert.Equal(t, "ct-006", result.Items[2].ID)
}

func TestSearchByHashtagMatchesIDOrSlug(t *testing.T) {
	service := newSearchService(t, nil)

	byID, err := service.Search(context.Background(), Criteria{HashtagIDs: []string{"ht-001"}})
	require.NoError(t, err)
	assert.Equal(t, 2, byID.FilteredCount)

	bySlug, err := service.Search(context.Background(), Criteria{HashtagIDs: []string{"violencia-de-genero"}})
	require.NoError(t, err)
	assert.Equal(t, 1, bySlug.FilteredCount)

	unknown, err := service.Search(context.Background(), Criteria{HashtagIDs: []string{"ht-999"}})
	require.NoError(t, err)
	assert.Zero(t, unknown.FilteredCount)
}

func TestSearchBySubtipo(t *testing.T) {
	service := newSearchService(t, nil)

	result, err := service.Search(context.Background(), Criteria{Subtipos: []content.Subtipo{content.SubtipoLibro}})
	require.NoError(t, err)

	require.Equal(t, 1, result.FilteredCount)
	assert.Equal(t, "ct-006", result.Items[0].ID)
}

func TestSearchQueryExpandsSynonyms(t *testing.T) {
	service := newSearchService(t, nil)

	result, err := service.Search(context.Background(), Criteria{Query: "maltrato"})
	require.NoError(t, err)

	ids := make([]string, 0, len(result.Items))
	for _, record := range result.Items {
		ids = append(ids, record.ID)
	}
	assert.Contains(t, ids, "ct-007", "violencia record matches via synonym expansion")
}

func TestSearchTitleShortCircuit(t *testing.T) {
	service := newSearchService(t, nil)

	result, err := service.Search(context.Background(), Criteria{Query: "Patriarcado"})
	require.NoError(t, err)

	ids := make([]string, 0, len(result.Items))
	for _, record := range result.Items {
		ids = append(ids, record.ID)
	}
	assert.Contains(t, ids, "ct-005")
}

func TestSearchBlankQueryIsNoFilter(t *testing.T) {
	service := newSearchService(t, nil)

	result, err := service.Search(context.Background(), Criteria{Query: "   "})
	require.NoError(t, err)

	assert.Equal(t, result.TotalCount, result.FilteredCount)
}

// # Sorting

func TestSearchSortAnioAscIsStable(t *testing.T) {
	store := content.NewMemoryStore()

	first := publicRecord("ct-001", "primera", content.TipoHistoria, "Primera")
	first.Anio = pointer.To(1931)
	second := publicRecord("ct-002", "segunda", content.TipoHistoria, "Segunda")
	second.Anio = pointer.To(1931)
	third := publicRecord("ct-003", "tercera", content.TipoHistoria, "Tercera")
	third.Anio = pointer.To(1791)

	require.NoError(t, store.Replace(context.Background(), []*content.Content{first, second, third}))
	service := NewService(store, NewLexicon(), nil, discardLogger())

	result, err := service.Search(context.Background(), Criteria{Orden: OrdenAnioAsc})
	require.NoError(t, err)

	require.Len(t, result.Items, 3)
	assert.Equal(t, "ct-003", result.Items[0].ID)
	// Tied years keep their insertion order.
	assert.Equal(t, "ct-001", result.Items[1].ID)
	assert.Equal(t, "ct-002", result.Items[2].ID)
}

func TestSearchSortTituloAscUsesCollation(t *testing.T) {
	service := newSearchService(t, nil)

	result, err := service.Search(context.Background(), Criteria{
		Tipos: []content.Tipo{content.TipoHistoria},
		Orden: OrdenTituloAsc,
	})
	require.NoError(t, err)

	require.Equal(t, 4, result.FilteredCount)
	assert.Equal(t, "ct-001", result.Items[0].ID, "Declaración sorts first")
	assert.Equal(t, "ct-004", result.Items[1].ID, "El movimiento MeToo")
	assert.Equal(t, "ct-002", result.Items[2].ID, "El voto femenino")
	assert.Equal(t, "ct-003", result.Items[3].ID, "La ley del divorcio")
}

func TestSearchSortFechaPublicacionIsAlwaysDescending(t *testing.T) {
	store := content.NewMemoryStore()

	older := publicRecord("ct-001", "antigua", content.TipoConcepto, "Antigua")
	older.PublicadoEn = pointer.To(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	newer := publicRecord("ct-002", "reciente", content.TipoConcepto, "Reciente")
	newer.PublicadoEn = pointer.To(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, store.Replace(context.Background(), []*content.Content{older, newer}))
	service := NewService(store, NewLexicon(), nil, discardLogger())

	result, err := service.Search(context.Background(), Criteria{Orden: OrdenFechaPublicacion})
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.Equal(t, "ct-002", result.Items[0].ID)
}

// # Current-Filter Snapshot

func TestUpdateFiltersPatchSemantics(t *testing.T) {
	service := newSearchService(t, nil)

	merged := service.UpdateFilters(Patch{
		Query: pointer.To("igualdad"),
		Tipos: []content.Tipo{content.TipoHistoria},
	})
	assert.Equal(t, "igualdad", merged.Query)

	// A nil slice leaves the dimension unchanged.
	merged = service.UpdateFilters(Patch{Query: pointer.To("sufragio")})
	assert.Equal(t, "sufragio", merged.Query)
	assert.Equal(t, []content.Tipo{content.TipoHistoria}, merged.Tipos)

	// An empty non-nil slice clears it.
	merged = service.UpdateFilters(Patch{Tipos: []content.Tipo{}})
	assert.Empty(t, merged.Tipos)

	service.ClearFilters()
	assert.Equal(t, Criteria{}, service.CurrentFilters())
}

func TestSearchOverwritesCurrentFilters(t *testing.T) {
	service := newSearchService(t, nil)

	criteria := Criteria{Query: "voto", Lang: i18n.ES}
	_, err := service.Search(context.Background(), criteria)
	require.NoError(t, err)

	assert.Equal(t, "voto", service.CurrentFilters().Query)
}

// # Aggregates

func TestAllHashtagsDistinctAndSorted(t *testing.T) {
	service := newSearchService(t, nil)

	hashtags, err := service.AllHashtags(context.Background(), i18n.ES)
	require.NoError(t, err)

	require.Len(t, hashtags, 2, "ht-001 appears on two records but counts once")
	assert.Equal(t, "ht-001", hashtags[0].ID, "Igualdad before Violencia de género")
}

func TestYearSpan(t *testing.T) {
	service := newSearchService(t, nil)

	span, err := service.YearSpan(context.Background())
	require.NoError(t, err)

	require.NotNil(t, span)
	assert.Equal(t, 1791, span.Min)
	assert.Equal(t, 2017, span.Max)
}

func TestYearSpanEmptyWhenNoYears(t *testing.T) {
	store := content.NewMemoryStore()
	record := publicRecord("ct-001", "patriarcado", content.TipoConcepto, "Patriarcado")
	require.NoError(t, store.Replace(context.Background(), []*content.Content{record}))

	service := NewService(store, NewLexicon(), nil, discardLogger())

	span, err := service.YearSpan(context.Background())
	require.NoError(t, err)
	assert.Nil(t, span)
}

// # Analytics

func TestSearchReportsToAnalyticsFireAndForget(t *testing.T) {
	reporter := &fakeReporter{}
	service := newSearchService(t, reporter)

	_, err := service.Search(context.Background(), Criteria{Query: "igualdad"})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		recorded := reporter.recorded()
		return len(recorded) == 1 && recorded[0] == "igualdad"
	}, time.Second, 10*time.Millisecond)
}

func TestSearchWithoutFiltersIsNotReported(t *testing.T) {
	reporter := &fakeReporter{}
	service := newSearchService(t, reporter)

	_, err := service.Search(context.Background(), Criteria{Orden: OrdenTituloAsc})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, reporter.recorded())
}
