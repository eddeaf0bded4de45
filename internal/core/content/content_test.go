// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/violetaproject/violeta/internal/core/i18n"
	"github.com/violetaproject/violeta/pkg/pointer"
)

func TestEstadoCanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    Estado
		to      Estado
		allowed bool
	}{
		{name: "borrador to revisado", from: EstadoBorrador, to: EstadoRevisado, allowed: true},
		{name: "revisado to publicado", from: EstadoRevisado, to: EstadoPublicado, allowed: true},
		{name: "borrador to publicado skips review", from: EstadoBorrador, to: EstadoPublicado, allowed: false},
		{name: "publicado is terminal", from: EstadoPublicado, to: EstadoRevisado, allowed: false},
		{name: "no backwards transitions", from: EstadoRevisado, to: EstadoBorrador, allowed: false},
		{name: "no self transitions", from: EstadoBorrador, to: EstadoBorrador, allowed: false},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.allowed, testCase.from.CanTransitionTo(testCase.to))
		})
	}
}

func TestContentEsPublico(t *testing.T) {
	record := &Content{Activo: true, Estado: EstadoPublicado, PublicadoEn: pointer.To(time.Now())}
	assert.True(t, record.EsPublico())

	record.Activo = false
	assert.False(t, record.EsPublico(), "deactivated records are hidden")

	record.Activo = true
	record.Estado = EstadoRevisado
	assert.False(t, record.EsPublico(), "unpublished records are hidden")
}

func TestContentTituloEnFallsBackToSpanish(t *testing.T) {
	record := &Content{Titulo: i18n.Text{i18n.ES: "El voto femenino", i18n.EN: "Women's suffrage"}}

	assert.Equal(t, "Women's suffrage", record.TituloEn(i18n.EN))
	assert.Equal(t, "El voto femenino", record.TituloEn(i18n.CA), "missing translation resolves to es")
}

func TestTipoIsValid(t *testing.T) {
	for _, tipo := range []Tipo{TipoHistoria, TipoConcepto, TipoViolencia, TipoRecurso, TipoTestimonio, TipoInstitucion} {
		assert.True(t, tipo.IsValid(), string(tipo))
	}
	assert.False(t, Tipo("noticia").IsValid())
}

func TestSubtipoIsValid(t *testing.T) {
	for _, subtipo := range []Subtipo{SubtipoLibro, SubtipoPeliculaSerie, SubtipoDocumental} {
		assert.True(t, subtipo.IsValid(), string(subtipo))
	}
	assert.False(t, Subtipo("podcast").IsValid())
}
