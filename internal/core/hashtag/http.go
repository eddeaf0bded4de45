// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package hashtag

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/violetaproject/violeta/internal/core/i18n"
	requestutil "github.com/violetaproject/violeta/internal/platform/request"
	"github.com/violetaproject/violeta/internal/platform/respond"
)

// Handler serves the public hashtag registry endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a hashtag [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the chi router for /api/v1/hashtags.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listHashtags)
	router.Get("/{idOrSlug}", handler.getHashtag)
	return router
}

func (handler *Handler) listHashtags(writer http.ResponseWriter, request *http.Request) {
	lang := i18n.Normalize(request.URL.Query().Get("lang"))

	hashtags, err := handler.service.ListHashtags(request.Context(), lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, hashtags)
}

func (handler *Handler) getHashtag(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "idOrSlug")

	tag, err := handler.service.GetHashtag(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tag)
}
