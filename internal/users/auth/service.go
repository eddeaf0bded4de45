// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

/*
Package auth implements the administrator login.

The site has exactly one editorial account, configured through the
environment (ADMIN_USERNAME plus a bcrypt ADMIN_PASSWORD_HASH). There is no
registration, no password recovery, and no user database: a successful login
yields a short-lived JWT that unlocks the editorial endpoints.
*/
package auth

import (
	"log/slog"
	"time"

	"github.com/violetaproject/violeta/internal/platform/apperr"
	"github.com/violetaproject/violeta/internal/platform/constants"
	"github.com/violetaproject/violeta/internal/platform/sec"
)

// TokenProvider defines the contract for generating admin access tokens.
type TokenProvider interface {
	GenerateAccessToken(username, role string, timeToLive time.Duration) (string, error)
}

// Service validates admin credentials and issues access tokens.
type Service struct {
	adminUsername     string
	adminPasswordHash string
	tokenProvider     TokenProvider
	logger            *slog.Logger
}

// NewService constructs an auth [Service] for the configured admin account.
func NewService(adminUsername, adminPasswordHash string, tokenProvider TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		tokenProvider:     tokenProvider,
		logger:            logger,
	}
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

/*
Login checks the credentials against the configured admin account.

The bcrypt comparison runs even for unknown usernames so both failure modes
take the same time, and both return the same error.
*/
func (service *Service) Login(username, password string) (*Session, error) {
	knownUser := username == service.adminUsername

	hash := service.adminPasswordHash
	if !knownUser {
		hash = "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinvalu"
	}

	if !sec.CheckPasswordHash(password, hash) || !knownUser {
		service.logger.Warn("admin_login_failed", slog.String("username", username))
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	token, err := service.tokenProvider.GenerateAccessToken(username, string(sec.RoleAdmin), constants.AdminTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("admin_login", slog.String("username", username))

	return &Session{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(constants.AdminTokenTTL),
	}, nil
}
