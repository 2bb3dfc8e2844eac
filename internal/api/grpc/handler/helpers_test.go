package handler

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/bankcards-server/internal/mocks"
	"github.com/dtroode/bankcards-server/internal/model"
)

func admin() *model.Principal {
	return &model.Principal{UserID: uuid.New(), Username: "admin", Roles: []model.Role{model.RoleAdmin, model.RoleUser}}
}

func user() *model.Principal {
	return &model.Principal{UserID: uuid.New(), Username: "user1", Roles: []model.Role{model.RoleUser}}
}

// withPrincipal returns a context manager that yields p, or nothing when p is nil.
func withPrincipal(t *testing.T, p *model.Principal) *mocks.ContextManager {
	cm := mocks.NewContextManager(t)
	cm.On("GetPrincipalFromContext", mock.Anything).Return(p, p != nil).Maybe()
	return cm
}

func assertCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if assert.True(t, ok, "not a status error: %v", err) {
		assert.Equal(t, want, st.Code(), st.Message())
	}
}
