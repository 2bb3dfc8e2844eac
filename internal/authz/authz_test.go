package authz

import (
	"testing"

	"github.com/dtroode/bankcards-server/internal/apierrors"
	"github.com/dtroode/bankcards-server/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRules(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	admin := &model.Principal{UserID: self, Roles: []model.Role{model.RoleAdmin, model.RoleUser}}
	user := &model.Principal{UserID: self, Username: "user1", Roles: []model.Role{model.RoleUser}}
	noRoles := &model.Principal{UserID: self}
	anonymous := &model.Principal{UserID: uuid.Nil, Roles: []model.Role{model.RoleAdmin}}

	tests := []struct {
		name     string
		check    func() error
		wantKind apierrors.Kind
	}{
		{name: "require admin, admin", check: func() error { return RequireAdmin(admin) }},
		{name: "require admin, user", check: func() error { return RequireAdmin(user) }, wantKind: apierrors.KindAccessDenied},
		{name: "require admin, nil", check: func() error { return RequireAdmin(nil) }, wantKind: apierrors.KindUnauthenticated},
		{name: "require admin, nil id with admin role", check: func() error { return RequireAdmin(anonymous) }, wantKind: apierrors.KindUnauthenticated},

		{name: "admin or self, admin on other", check: func() error { return AdminOrSelf(admin, other) }},
		{name: "admin or self, user on self", check: func() error { return AdminOrSelf(user, self) }},
		{name: "admin or self, empty role set on self", check: func() error { return AdminOrSelf(noRoles, self) }},
		{name: "admin or self, user on other", check: func() error { return AdminOrSelf(user, other) }, wantKind: apierrors.KindAccessDenied},
		{name: "admin or self, nil", check: func() error { return AdminOrSelf(nil, self) }, wantKind: apierrors.KindUnauthenticated},

		{name: "admin or self by name, self", check: func() error { return AdminOrSelfByName(user, "user1") }},
		{name: "admin or self by name, admin", check: func() error { return AdminOrSelfByName(admin, "user2") }},
		{name: "admin or self by name, other", check: func() error { return AdminOrSelfByName(user, "user2") }, wantKind: apierrors.KindAccessDenied},
		{name: "admin or self by name, empty name", check: func() error { return AdminOrSelfByName(noRoles, "") }, wantKind: apierrors.KindAccessDenied},
		{name: "admin or self by name, nil", check: func() error { return AdminOrSelfByName(nil, "user1") }, wantKind: apierrors.KindUnauthenticated},

		{name: "admin or owner, admin on foreign card", check: func() error { return AdminOrOwner(admin, other) }},
		{name: "admin or owner, owner", check: func() error { return AdminOrOwner(user, self) }},
		{name: "admin or owner, not owner", check: func() error { return AdminOrOwner(user, other) }, wantKind: apierrors.KindAccessDenied},
		{name: "admin or owner, nil", check: func() error { return AdminOrOwner(nil, other) }, wantKind: apierrors.KindUnauthenticated},

		{name: "self only, self", check: func() error { return SelfOnly(user, self) }},
		{name: "self only, admin on other", check: func() error { return SelfOnly(admin, other) }, wantKind: apierrors.KindAccessDenied},
		{name: "self only, nil id", check: func() error { return SelfOnly(anonymous, uuid.Nil) }, wantKind: apierrors.KindUnauthenticated},

		{name: "authenticated, user", check: func() error { return Authenticated(user) }},
		{name: "authenticated, nil", check: func() error { return Authenticated(nil) }, wantKind: apierrors.KindUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check()
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apierrors.IsKind(err, tt.wantKind), "got %v", err)
		})
	}
}

func TestDenialIsNotNotFound(t *testing.T) {
	err := SelfOnly(&model.Principal{UserID: uuid.New()}, uuid.New())
	assert.False(t, apierrors.IsKind(err, apierrors.KindNotFound))
	assert.False(t, apierrors.IsKind(err, apierrors.KindInvalidOperation))
}
