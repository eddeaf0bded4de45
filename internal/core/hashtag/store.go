// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package hashtag

import "context"

// Repository is the canonical hashtag registry contract.
type Repository interface {
	// Replace swaps the entire registry (called once at startup from seed data).
	Replace(context context.Context, hashtags []Hashtag) error

	// List returns every registry entry in insertion order.
	List(context context.Context) ([]Hashtag, error)

	GetByID(context context.Context, id string) (*Hashtag, error)
	GetBySlug(context context.Context, slug string) (*Hashtag, error)
}
