// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package hashtag_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/violetaproject/violeta/internal/core/hashtag"
	"github.com/violetaproject/violeta/internal/core/i18n"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func registryFixture() []hashtag.Hashtag {
	return []hashtag.Hashtag{
		{ID: "ht-001", Slug: "igualdad", Nombre: i18n.Text{i18n.ES: "Igualdad", i18n.EN: "Equality"}},
		{ID: "ht-002", Slug: "violencia-de-genero", Nombre: i18n.Text{i18n.ES: "Violencia de género"}},
		{ID: "ht-003", Slug: "sufragio", Nombre: i18n.Text{i18n.ES: "Sufragio", i18n.EN: "Suffrage"}},
	}
}

/*
TestMemoryStore_ReplaceAndLookup covers the load-once lifecycle and both
lookup paths.
*/
func TestMemoryStore_ReplaceAndLookup(t *testing.T) {
	store := hashtag.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, registryFixture()))

	listed, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 3)

	bySlug, err := store.GetBySlug(ctx, "sufragio")
	require.NoError(t, err)
	assert.Equal(t, "ht-003", bySlug.ID)

	byID, err := store.GetByID(ctx, "ht-002")
	require.NoError(t, err)
	assert.Equal(t, "violencia-de-genero", byID.Slug)

	_, err = store.GetBySlug(ctx, "desconocido")
	assert.Error(t, err)
}

/*
TestMemoryStore_DuplicateSlug rejects a registry violating slug uniqueness.
*/
func TestMemoryStore_DuplicateSlug(t *testing.T) {
	store := hashtag.NewMemoryStore()
	dup := append(registryFixture(), hashtag.Hashtag{ID: "ht-009", Slug: "igualdad", Nombre: i18n.Text{i18n.ES: "Otra"}})

	assert.Error(t, store.Replace(context.Background(), dup))
}

/*
TestService_ListHashtags_SortedByLocalizedName verifies locale-aware ordering
with es-fallback for missing translations.
*/
func TestService_ListHashtags_SortedByLocalizedName(t *testing.T) {
	store := hashtag.NewMemoryStore()
	require.NoError(t, store.Replace(context.Background(), registryFixture()))
	service := hashtag.NewService(store, discardLogger())

	// English: Equality, Suffrage, then the untranslated "Violencia de género".
	sorted, err := service.ListHashtags(context.Background(), i18n.EN)
	require.NoError(t, err)

	names := []string{}
	for _, h := range sorted {
		names = append(names, h.NombreEn(i18n.EN))
	}
	assert.Equal(t, []string{"Equality", "Suffrage", "Violencia de género"}, names)
}
