package model

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role is a named permission set assigned to a user.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole converts a stored or wire value into a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleUser:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

const (
	UsernameMinLen = 3
	UsernameMaxLen = 50
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context, page Page) ([]User, error)
	UpdateUsername(ctx context.Context, id uuid.UUID, username string) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	SetRoles(ctx context.Context, id uuid.UUID, roles []Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents an account holder or administrator.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Roles        []Role
	CreatedAt    time.Time
}

// HasRole reports whether the user has been granted role r.
func (u User) HasRole(r Role) bool {
	return slices.Contains(u.Roles, r)
}

// UpdateUserParams lists mutable user fields. Nil means "leave as is".
type UpdateUserParams struct {
	Username *string
}

// Balance is the total money held on a user's cards.
type Balance struct {
	UserID uuid.UUID
	Total  decimal.Decimal
}
