// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

/*
Package seed holds the static sample catalogue the site launches with.

The collection is loaded wholesale at startup through the content and hashtag
services, which validate every record on the way in. There is no external
data source: this package is the canonical content until an editorial
pipeline replaces it.
*/
package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/violetaproject/violeta/internal/core/content"
	"github.com/violetaproject/violeta/internal/core/hashtag"
	"github.com/violetaproject/violeta/internal/core/i18n"
	"github.com/violetaproject/violeta/pkg/pointer"
	"github.com/violetaproject/violeta/pkg/slug"
)

// Load replaces both working collections with the sample data.
func Load(loadContext context.Context, hashtags *hashtag.Service, contents *content.Service, logger *slog.Logger) error {
	if err := hashtags.Replace(loadContext, Hashtags()); err != nil {
		return err
	}
	if err := contents.Replace(loadContext, Contents()); err != nil {
		return err
	}

	logger.Info("seed_loaded",
		slog.Int("hashtags", len(Hashtags())),
		slog.Int("contents", len(Contents())),
	)
	return nil
}

// # Hashtag Registry

var (
	tagIgualdad = hashtag.Hashtag{
		ID:   "ht-001",
		Slug: "igualdad",
		Nombre: i18n.Text{
			i18n.ES: "Igualdad", i18n.EN: "Equality", i18n.CA: "Igualtat",
			i18n.GL: "Igualdade", i18n.EU: "Berdintasuna", i18n.FR: "Égalité",
		},
	}

	tagViolencia = hashtag.Hashtag{
		ID:   "ht-002",
		Slug: "violencia-de-genero",
		Nombre: i18n.Text{
			i18n.ES: "Violencia de género", i18n.EN: "Gender violence",
			i18n.CA: "Violència de gènere", i18n.FR: "Violence de genre",
		},
	}

	tagSufragio = hashtag.Hashtag{
		ID:   "ht-003",
		Slug: "sufragio",
		Nombre: i18n.Text{
			i18n.ES: "Sufragio", i18n.EN: "Suffrage", i18n.EU: "Sufragioa",
		},
	}

	tagCultura = hashtag.Hashtag{
		ID:   "ht-004",
		Slug: "cultura",
		Nombre: i18n.Text{
			i18n.ES: "Cultura", i18n.EN: "Culture", i18n.GL: "Cultura",
		},
	}

	tagApoyo = hashtag.Hashtag{
		ID:   "ht-005",
		Slug: "apoyo",
		Nombre: i18n.Text{
			i18n.ES: "Apoyo", i18n.EN: "Support", i18n.CA: "Suport",
		},
	}
)

// Hashtags returns the canonical hashtag registry.
func Hashtags() []hashtag.Hashtag {
	return []hashtag.Hashtag{tagIgualdad, tagViolencia, tagSufragio, tagCultura, tagApoyo}
}

// # Content Collection

var seedPublishedAt = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

// published fills the lifecycle fields shared by every launch record.
func published(record *content.Content) *content.Content {
	record.Slug = slug.From(record.Titulo[i18n.ES])
	record.Activo = true
	record.Estado = content.EstadoPublicado
	record.PublicadoEn = pointer.To(seedPublishedAt)
	record.CreadoEn = seedPublishedAt
	record.ActualizadoEn = seedPublishedAt
	return record
}

// Contents returns the launch catalogue: four historical milestones, two
// concepts, one violence-awareness guide, two resources, one testimony, and
// one support institution.
func Contents() []*content.Content {
	return []*content.Content{
		published(&content.Content{
			ID:   "ct-001",
			Tipo: content.TipoHistoria,
			Titulo: i18n.Text{
				i18n.ES: "Declaración de los Derechos de la Mujer y de la Ciudadana",
				i18n.EN: "Declaration of the Rights of Woman and of the Female Citizen",
				i18n.FR: "Déclaration des droits de la femme et de la citoyenne",
			},
			Descripcion: i18n.Text{
				i18n.ES: "Olympe de Gouges publica en 1791 la respuesta feminista a la Declaración de 1789, reclamando la plena igualdad jurídica y política de las mujeres.",
				i18n.EN: "Olympe de Gouges published in 1791 the feminist response to the 1789 Declaration, demanding full legal and political equality for women.",
			},
			DescripcionFacil: i18n.Text{
				i18n.ES: "En 1791, Olympe de Gouges escribió un documento. El documento pedía que las mujeres tuvieran los mismos derechos que los hombres.",
			},
			Anio:          pointer.To(1791),
			Hashtags:      []hashtag.Hashtag{tagIgualdad},
			VideoSenasURL: "https://media.violetaproject.org/senas/ct-001.mp4",
		}),

		published(&content.Content{
			ID:   "ct-002",
			Tipo: content.TipoHistoria,
			Titulo: i18n.Text{
				i18n.ES: "El voto femenino en España",
				i18n.EN: "Women's suffrage in Spain",
				i18n.CA: "El vot femení a Espanya",
			},
			Descripcion: i18n.Text{
				i18n.ES: "Las Cortes de la Segunda República aprueban en 1931 el sufragio femenino tras el histórico debate protagonizado por Clara Campoamor.",
				i18n.EN: "The Parliament of the Second Republic approved women's suffrage in 1931 after the historic debate led by Clara Campoamor.",
			},
			DescripcionFacil: i18n.Text{
				i18n.ES: "En 1931 las mujeres españolas ganaron el derecho a votar. Clara Campoamor defendió ese derecho en el parlamento.",
			},
			Anio:          pointer.To(1931),
			Hashtags:      []hashtag.Hashtag{tagSufragio, tagIgualdad},
			VideoSenasURL: "https://media.violetaproject.org/senas/ct-002.mp4",
		}),

		published(&content.Content{
			ID:   "ct-003",
			Tipo: content.TipoHistoria,
			Titulo: i18n.Text{
				i18n.ES: "Año Internacional de la Mujer",
				i18n.EN: "International Women's Year",
			},
			Descripcion: i18n.Text{
				i18n.ES: "La ONU declara 1975 Año Internacional de la Mujer y celebra en México la primera conferencia mundial sobre la condición de las mujeres.",
			},
			DescripcionFacil: i18n.Text{
				i18n.ES: "En 1975 la ONU dedicó el año a las mujeres. Hubo una gran reunión mundial en México para hablar de sus derechos.",
			},
			Anio:     pointer.To(1975),
			Hashtags: []hashtag.Hashtag{tagIgualdad},
		}),

		published(&content.Content{
			ID:   "ct-004",
			Tipo: content.TipoHistoria,
			Titulo: i18n.Text{
				i18n.ES: "El movimiento MeToo",
				i18n.EN: "The MeToo movement",
			},
			Descripcion: i18n.Text{
				i18n.ES: "A partir de 2017 millones de mujeres denuncian públicamente el acoso y la agresión sexual bajo la etiqueta #MeToo, transformando la conversación global.",
				i18n.EN: "From 2017 onwards millions of women publicly denounced sexual harassment and assault under the #MeToo label, transforming the global conversation.",
			},
			DescripcionFacil: i18n.Text{
				i18n.ES: "Desde 2017 muchas mujeres contaron en internet que habían sufrido acoso. Usaron las palabras Me Too, que significan 'yo también'.",
			},
			Anio:     pointer.To(2017),
			Hashtags: []hashtag.Hashtag{tagViolencia},
		}),

		published(&content.Content{
			ID:   "ct-005",
			Tipo: content.TipoConcepto,
			Titulo: i18n.Text{
				i18n.ES: "Patriarcado",
				i18n.EN: "Patriarchy",
				i18n.CA: "Patriarcat",
				i18n.EU: "Patriarkatua",
			},
			Descripcion: i18n.Text{
				i18n.ES: "Sistema social en el que los hombres ocupan las posiciones de poder y las mujeres quedan subordinadas en lo político, lo económico y lo familiar.",
				i18n.EN: "A social system in which men hold the positions of power and women are subordinated politically, economically and within the family.",
			},
			DescripcionFacil: i18n.Text{
				i18n.ES: "El patriarcado es una forma de organizar la sociedad. En ella los hombres mandan más que las mujeres. El feminismo quiere cambiar esto.",
			},
			Hashtags:      []hashtag.Hashtag{tagIgualdad},
			VideoSenasURL: "https://media.violetaproject.org/senas/ct-005.mp4",
		}),

		published(&content.Content{
			ID:   "ct-006",
			Tipo: content.TipoConcepto,
			Titulo: i18n.Text{
				i18n.ES: "Brecha salarial",
				i18n.EN: "Pay gap",
				i18n.GL: "Fenda salarial",
			},
			Descripcion: i18n.Text{
				i18n.ES: "Diferencia entre el salario medio de hombres y mujeres por un trabajo de igual valor, agravada por la parcialidad y los cuidados no remunerados.",
			},
			DescripcionFacil: i18n.Text{
				i18n.ES: "Las mujeres cobran menos dinero que los hombres por trabajos parecidos. Esa diferencia se llama brecha salarial.",
			},
			Hashtags: []hashtag.Hashtag{tagIgualdad},
		}),

		published(&content.Content{
			ID:   "ct-007",
			Tipo: content.TipoViolencia,
			Titulo: i18n.Text{
				i18n.ES: "Señales de alerta en la pareja",
				i18n.EN: "Warning signs in a relationship",
			},
			Descripcion: i18n.Text{
				i18n.ES: "Guía para reconocer la violencia en la pareja: control del móvil, aislamiento de amistades, humillaciones y celos presentados como amor.",
			},
			DescripcionFacil: i18n.Text{
				i18n.ES: "A veces una pareja hace daño. Revisa tu móvil, te aleja de tus amigas o te insulta. Eso es violencia y puedes pedir ayuda.",
			},
			Hashtags:      []hashtag.Hashtag{tagViolencia, tagApoyo},
			VideoSenasURL: "https://media.violetaproject.org/senas/ct-007.mp4",
			Violencia: &content.DatosViolencia{
				SenalesAlerta: i18n.Text{
					i18n.ES: "Control de las redes sociales, aislamiento, celos constantes, humillaciones en público o en privado.",
				},
				InstitucionIDs: []string{"ct-011"},
			},
		}),

		published(&content.Content{
			ID:   "ct-008",
			Tipo: content.TipoRecurso,
			Titulo: i18n.Text{
				i18n.ES: "El segundo sexo",
				i18n.EN: "The Second Sex",
				i18n.FR: "Le Deuxième Sexe",
			},
			Descripcion: i18n.Text{
				i18n.ES: "Ensayo fundacional de Simone de Beauvoir (1949) sobre la construcción social de la mujer: «No se nace mujer, se llega a serlo».",
			},
			DescripcionFacil: i18n.Text{
				i18n.ES: "Un libro muy importante de Simone de Beauvoir. Explica que ser mujer no es solo nacer mujer: la sociedad enseña cómo deben ser las mujeres.",
			},
			Subtipo:  content.SubtipoLibro,
			Autor:    pointer.To("Simone de Beauvoir"),
			Anio:     pointer.To(1949),
			Hashtags: []hashtag.Hashtag{tagCultura},
		}),

		published(&content.Content{
			ID:   "ct-009",
			Tipo: content.TipoRecurso,
			Titulo: i18n.Text{
				i18n.ES: "Las sufragistas",
				i18n.EN: "Suffragette",
			},
			Descripcion: i18n.Text{
				i18n.ES: "Película de 2015 dirigida por Sarah Gavron sobre el movimiento sufragista británico de principios del siglo XX.",
			},
			DescripcionFacil: i18n.Text{
				i18n.ES: "Una película sobre las mujeres inglesas que lucharon para poder votar hace más de cien años.",
			},
			Subtipo:         content.SubtipoPeliculaSerie,
			Autor:           pointer.To("Sarah Gavron"),
			Anio:            pointer.To(2015),
			DuracionMinutos: pointer.To(106),
			Hashtags:        []hashtag.Hashtag{tagCultura, tagSufragio},
		}),

		published(&content.Content{
			ID:   "ct-012",
			Tipo: content.TipoRecurso,
			Titulo: i18n.Text{
				i18n.ES: "Feministas: qué estaban pensando",
				i18n.EN: "Feminists: What Were They Thinking?",
			},
			Descripcion: i18n.Text{
				i18n.ES: "Documental de 2018 que revisita los retratos de mujeres de los años setenta y el despertar del movimiento feminista en Estados Unidos.",
			},
			DescripcionFacil: i18n.Text{
				i18n.ES: "Un documental con fotos y entrevistas de mujeres feministas de los años setenta. Cuentan cómo cambió su vida el feminismo.",
			},
			Subtipo:         content.SubtipoDocumental,
			Autor:           pointer.To("Johanna Demetrakas"),
			Anio:            pointer.To(2018),
			DuracionMinutos: pointer.To(86),
			Hashtags:        []hashtag.Hashtag{tagCultura, tagIgualdad},
		}),

		published(&content.Content{
			ID:   "ct-010",
			Tipo: content.TipoTestimonio,
			Titulo: i18n.Text{
				i18n.ES: "Salir adelante: el testimonio de Carmen",
			},
			Descripcion: i18n.Text{
				i18n.ES: "Carmen relata cómo reconoció el maltrato, pidió ayuda al 016 y reconstruyó su vida con el apoyo de su entorno.",
			},
			DescripcionFacil: i18n.Text{
				i18n.ES: "Carmen sufrió maltrato. Llamó al teléfono 016 y pidió ayuda. Hoy vive tranquila y quiere ayudar a otras mujeres.",
			},
			Hashtags:      []hashtag.Hashtag{tagViolencia, tagApoyo},
			VideoSenasURL: "https://media.violetaproject.org/senas/ct-010.mp4",
		}),

		published(&content.Content{
			ID:   "ct-011",
			Tipo: content.TipoInstitucion,
			Titulo: i18n.Text{
				i18n.ES: "016 — Servicio de atención a víctimas de violencia de género",
			},
			Descripcion: i18n.Text{
				i18n.ES: "Servicio telefónico gratuito y confidencial, disponible 24 horas, que no deja rastro en la factura. Atiende en 53 idiomas.",
			},
			DescripcionFacil: i18n.Text{
				i18n.ES: "El 016 es un teléfono gratis para mujeres que sufren violencia. Funciona todo el día. La llamada no aparece en la factura.",
			},
			Hashtags: []hashtag.Hashtag{tagApoyo},
			Institucion: &content.DatosInstitucion{
				Telefono: "016",
				Email:    "016-online@igualdad.gob.es",
				Web:      "https://violenciagenero.igualdad.gob.es",
				Ambito:   "estatal",
			},
		}),
	}
}
