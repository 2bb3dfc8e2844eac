package model

import (
	"slices"

	"github.com/google/uuid"
)

// Principal is the authenticated actor of a request.
type Principal struct {
	UserID   uuid.UUID
	Username string
	Roles    []Role
}

// Authenticated reports whether p identifies a user.
func (p *Principal) Authenticated() bool {
	return p != nil && p.UserID != uuid.Nil
}

// HasRole reports whether p was granted r.
func (p *Principal) HasRole(r Role) bool {
	return p != nil && slices.Contains(p.Roles, r)
}
