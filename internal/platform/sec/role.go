// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

package sec

// Role identifies the privilege level carried inside [AuthClaims].
//
// The platform has a deliberately flat model: anonymous visitors browse and
// search; a single administrator manages the editorial lifecycle.
type Role string

const (
	// RoleAdmin may review, publish, and deactivate contents.
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is a recognised [Role] value.
func (r Role) IsValid() bool {
	return r == RoleAdmin
}
