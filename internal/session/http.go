// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/violetaproject/violeta/internal/core/i18n"
	"github.com/violetaproject/violeta/internal/platform/constants"
	"github.com/violetaproject/violeta/internal/platform/ctxutil"
	requestutil "github.com/violetaproject/violeta/internal/platform/request"
	"github.com/violetaproject/violeta/internal/platform/respond"
	"github.com/violetaproject/violeta/pkg/uuidv7"
)

// Handler serves the visitor-preference endpoints.
type Handler struct {
	store       Store
	defaultLang i18n.Code
	secureOnly  bool
}

// NewHandler creates a session [Handler]. secureOnly marks the cookie Secure,
// which production environments should enable.
func NewHandler(store Store, defaultLang i18n.Code, secureOnly bool) *Handler {
	return &Handler{store: store, defaultLang: defaultLang, secureOnly: secureOnly}
}

// Routes returns the chi router for /api/v1/session.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/preferences", handler.getPreferences)
	router.Put("/preferences", handler.putPreferences)
	return router
}

func (handler *Handler) getPreferences(writer http.ResponseWriter, request *http.Request) {
	sessionID := handler.ensureSession(writer, request)

	preferences, _ := handler.store.Get(request.Context(), sessionID, DefaultPreferences(handler.defaultLang))
	respond.OK(writer, preferences)
}

type putPreferencesRequest struct {
	Lang          string `json:"lang"`
	CookieConsent bool   `json:"cookie_consent"`
}

func (handler *Handler) putPreferences(writer http.ResponseWriter, request *http.Request) {
	var payload putPreferencesRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	sessionID := handler.ensureSession(writer, request)
	preferences := Preferences{
		Lang:          i18n.Normalize(payload.Lang),
		CookieConsent: payload.CookieConsent,
	}

	if err := handler.store.Set(request.Context(), sessionID, preferences); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, preferences)
}

// ensureSession returns the visitor's session ID, issuing the cookie on
// first contact.
func (handler *Handler) ensureSession(writer http.ResponseWriter, request *http.Request) string {
	if id := ctxutil.GetSessionID(request.Context()); id != "" {
		return id
	}
	if cookie, err := request.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := uuidv7.New()
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(constants.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   handler.secureOnly,
		SameSite: http.SameSiteLaxMode,
	})

	return sessionID
}
