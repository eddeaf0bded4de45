// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package content

import "context"

// Repository is the storage contract for the working content collection.
//
// The collection is loaded wholesale at startup and held in memory for the
// lifetime of the process (persistence is deliberately out of scope); the
// interface still takes a context so implementations remain swappable.
type Repository interface {
	// Replace swaps the entire working collection, preserving input order.
	Replace(context context.Context, records []*Content) error

	// List returns every record — including drafts and deactivated ones —
	// in insertion order. Admin-facing.
	List(context context.Context) ([]*Content, error)

	// ListPublic returns only records visible on the public site
	// (activo && publicado), in insertion order.
	ListPublic(context context.Context) ([]*Content, error)

	FindByID(context context.Context, id string) (*Content, error)
	FindBySlug(context context.Context, slug string) (*Content, error)

	// Update overwrites a stored record in place (estado/activo changes).
	Update(context context.Context, record *Content) error
}
