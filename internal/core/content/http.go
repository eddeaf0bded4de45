// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/violetaproject/violeta/internal/platform/request"
	"github.com/violetaproject/violeta/internal/platform/respond"
	"github.com/violetaproject/violeta/pkg/pagination"
)

// Handler serves the content catalogue endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a content [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public chi router for /api/v1/contents.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listContents)
	router.Get("/{idOrSlug}", handler.getContent)
	return router
}

// AdminRoutes returns the editorial router, mounted behind RequireRole(admin).
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listAllContents)
	router.Put("/", handler.replaceContents)
	router.Patch("/{id}/estado", handler.updateEstado)
	router.Patch("/{id}/activo", handler.updateActivo)
	return router
}

// # Public Handlers

func (handler *Handler) listContents(writer http.ResponseWriter, request *http.Request) {
	records, err := handler.service.ListPublic(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	page := pagination.Slice(records, params)
	respond.Paginated(writer, page, pagination.NewMeta(params.Page, params.Limit, len(records)))
}

func (handler *Handler) getContent(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "idOrSlug")

	record, err := handler.service.GetContent(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

// # Editorial Handlers

func (handler *Handler) listAllContents(writer http.ResponseWriter, request *http.Request) {
	records, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	page := pagination.Slice(records, params)
	respond.Paginated(writer, page, pagination.NewMeta(params.Page, params.Limit, len(records)))
}

// replaceContents swaps the whole catalogue in a single operation. Editorial
// imports work on the full dataset, so partial writes are not offered.
func (handler *Handler) replaceContents(writer http.ResponseWriter, request *http.Request) {
	var payload []*Content
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Replace(request.Context(), payload); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{"loaded": len(payload)})
}

type updateEstadoRequest struct {
	Estado Estado `json:"estado"`
}

func (handler *Handler) updateEstado(writer http.ResponseWriter, request *http.Request) {
	var payload updateEstadoRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.UpdateEstado(request.Context(), requestutil.Param(request, "id"), payload.Estado)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

type updateActivoRequest struct {
	Activo bool `json:"activo"`
}

func (handler *Handler) updateActivo(writer http.ResponseWriter, request *http.Request) {
	var payload updateActivoRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.SetActivo(request.Context(), requestutil.Param(request, "id"), payload.Activo)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}
