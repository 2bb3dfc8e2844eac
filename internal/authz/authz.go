// Package authz holds the access rules applied to every operation before the
// domain services run.
package authz

import (
	"github.com/dtroode/bankcards-server/internal/apierrors"
	"github.com/dtroode/bankcards-server/internal/model"
	"github.com/google/uuid"
)

// Authenticated fails unless p identifies a user.
func Authenticated(p *model.Principal) error {
	if !p.Authenticated() {
		return apierrors.NewErrUnauthenticated()
	}
	return nil
}

// RequireAdmin allows only principals with the ADMIN role.
func RequireAdmin(p *model.Principal) error {
	if err := Authenticated(p); err != nil {
		return err
	}
	if !p.HasRole(model.RoleAdmin) {
		return apierrors.NewErrAccessDenied()
	}
	return nil
}

// AdminOrSelf allows an admin or the user identified by userID.
func AdminOrSelf(p *model.Principal, userID uuid.UUID) error {
	if err := Authenticated(p); err != nil {
		return err
	}
	if p.HasRole(model.RoleAdmin) || p.UserID == userID {
		return nil
	}
	return apierrors.NewErrAccessDenied()
}

// AdminOrSelfByName is AdminOrSelf for operations addressed by username.
func AdminOrSelfByName(p *model.Principal, username string) error {
	if err := Authenticated(p); err != nil {
		return err
	}
	if p.HasRole(model.RoleAdmin) || (p.Username != "" && p.Username == username) {
		return nil
	}
	return apierrors.NewErrAccessDenied()
}

// AdminOrOwner allows an admin or the owner of a card.
func AdminOrOwner(p *model.Principal, ownerID uuid.UUID) error {
	return AdminOrSelf(p, ownerID)
}

// SelfOnly allows only the user identified by userID. ADMIN grants nothing here.
func SelfOnly(p *model.Principal, userID uuid.UUID) error {
	if err := Authenticated(p); err != nil {
		return err
	}
	if p.UserID != userID {
		return apierrors.NewErrAccessDenied()
	}
	return nil
}
