// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/violetaproject/violeta/internal/platform/request"
	"github.com/violetaproject/violeta/internal/platform/respond"
	"github.com/violetaproject/violeta/internal/platform/validate"
)

// Handler serves the admin login endpoint.
type Handler struct {
	authService *Service
}

// NewHandler creates an auth [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns the chi router for /api/v1/auth.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/login", handler.login)
	return router
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var payload loginRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required("username", payload.Username)
	validator.Required("password", payload.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(payload.Username, payload.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, session)
}
