// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package hashtag

import (
	"context"
	"log/slog"
	"slices"

	"github.com/violetaproject/violeta/internal/core/i18n"
)

// Service exposes registry lookups to handlers and other domains.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a hashtag [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListHashtags returns the registry sorted by display name in the given
// language, using locale-aware collation.
func (service *Service) ListHashtags(context context.Context, lang i18n.Code) ([]Hashtag, error) {
	hashtags, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}

	collator := i18n.NewCollator(lang)
	slices.SortStableFunc(hashtags, func(a, b Hashtag) int {
		return collator.CompareString(a.NombreEn(lang), b.NombreEn(lang))
	})

	return hashtags, nil
}

// GetHashtag resolves a hashtag by its opaque ID or, failing that, its slug.
func (service *Service) GetHashtag(context context.Context, identifier string) (*Hashtag, error) {
	if tag, err := service.repo.GetByID(context, identifier); err == nil {
		return tag, nil
	}
	return service.repo.GetBySlug(context, identifier)
}

// Replace loads the registry wholesale (startup only).
func (service *Service) Replace(context context.Context, hashtags []Hashtag) error {
	if err := service.repo.Replace(context, hashtags); err != nil {
		return err
	}

	service.logger.Info("hashtag_registry_loaded", slog.Int("count", len(hashtags)))
	return nil
}
