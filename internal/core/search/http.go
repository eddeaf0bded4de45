// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/violetaproject/violeta/internal/core/content"
	"github.com/violetaproject/violeta/internal/core/i18n"
	requestutil "github.com/violetaproject/violeta/internal/platform/request"
	"github.com/violetaproject/violeta/internal/platform/respond"
	"github.com/violetaproject/violeta/pkg/convert"
	"github.com/violetaproject/violeta/pkg/query"
	"github.com/violetaproject/violeta/pkg/slice"
)

// Handler serves the search and aggregate endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a search [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the chi router for /api/v1/search.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.search)
	router.Get("/suggestions", handler.suggestions)
	router.Get("/related", handler.relatedTerms)
	router.Get("/hashtags", handler.allHashtags)
	router.Get("/years", handler.yearSpan)
	router.Get("/filters", handler.currentFilters)
	router.Patch("/filters", handler.updateFilters)
	router.Delete("/filters", handler.clearFilters)
	return router
}

// # Search

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	criteria := criteriaFromRequest(request)

	result, err := handler.service.Search(request.Context(), criteria)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

// criteriaFromRequest maps query parameters onto filter criteria. Absent or
// malformed parameters degrade to "no filter on this dimension".
func criteriaFromRequest(request *http.Request) Criteria {
	values := request.URL.Query()

	return Criteria{
		Query: values.Get("q"),
		Tipos: slice.Map(query.StringSlice(values.Get("tipos")), func(raw string) content.Tipo {
			return content.Tipo(raw)
		}),
		HashtagIDs: query.StringSlice(values.Get("hashtags")),
		AnioDesde:  query.IntPointer(values.Get("anio_desde")),
		AnioHasta:  query.IntPointer(values.Get("anio_hasta")),
		Subtipos: slice.Map(query.StringSlice(values.Get("subtipos")), func(raw string) content.Subtipo {
			return content.Subtipo(raw)
		}),
		Orden: Orden(values.Get("orden")),
		Lang:  i18n.Normalize(values.Get("lang")),
	}
}

// # Aggregates

func (handler *Handler) suggestions(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()
	limit := convert.ToIntDefault(values.Get("limit"), 0)
	lang := i18n.Normalize(values.Get("lang"))

	suggestions, err := handler.service.Suggestions(request.Context(), values.Get("q"), limit, lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, suggestions)
}

func (handler *Handler) relatedTerms(writer http.ResponseWriter, request *http.Request) {
	values := request.URL.Query()
	limit := convert.ToIntDefault(values.Get("limit"), 0)

	respond.OK(writer, handler.service.RelatedTerms(values.Get("term"), limit))
}

func (handler *Handler) allHashtags(writer http.ResponseWriter, request *http.Request) {
	lang := i18n.Normalize(request.URL.Query().Get("lang"))

	hashtags, err := handler.service.AllHashtags(request.Context(), lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, hashtags)
}

func (handler *Handler) yearSpan(writer http.ResponseWriter, request *http.Request) {
	yearRange, err := handler.service.YearSpan(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, yearRange)
}

// # Current-Filter Snapshot

func (handler *Handler) currentFilters(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.CurrentFilters())
}

func (handler *Handler) updateFilters(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.service.UpdateFilters(patch))
}

func (handler *Handler) clearFilters(writer http.ResponseWriter, request *http.Request) {
	handler.service.ClearFilters()
	respond.NoContent(writer)
}
