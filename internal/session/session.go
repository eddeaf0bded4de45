// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

/*
Package session stores anonymous visitor preferences.

The website keeps only two things per visitor: the preferred language and the
cookie-consent decision. Sessions are identified by an opaque cookie and
expire after [constants.SessionTTL] of inactivity. Preferences are a
convenience, not a requirement: a missing or expired session simply yields
the defaults.
*/
package session

import (
	"context"

	"github.com/violetaproject/violeta/internal/core/i18n"
)

// Preferences holds everything the site remembers about a visitor.
type Preferences struct {
	Lang          i18n.Code `json:"lang"`
	CookieConsent bool      `json:"cookie_consent"`
}

// DefaultPreferences returns the preferences for a brand-new visitor.
func DefaultPreferences(defaultLang i18n.Code) Preferences {
	return Preferences{Lang: defaultLang}
}

// Store persists visitor preferences keyed by session ID.
//
// Get returns (defaults, false) for unknown or expired sessions rather than
// an error; losing a preference set is never a failure the visitor should see.
type Store interface {
	Get(context context.Context, sessionID string, defaults Preferences) (Preferences, bool)
	Set(context context.Context, sessionID string, preferences Preferences) error
}
