package handler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/dtroode/bankcards-server/api/proto"
	"github.com/dtroode/bankcards-server/internal/apierrors"
	"github.com/dtroode/bankcards-server/internal/mocks"
	"github.com/dtroode/bankcards-server/internal/model"
	"github.com/dtroode/bankcards-server/internal/testutil"
)

func TestUser_ListUsers(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	u := model.User{ID: uuid.New(), Username: "user1", Roles: []model.Role{model.RoleUser}, CreatedAt: created}

	svc := mocks.NewUserService(t)
	svc.On("List", mock.Anything, model.PageRequest{Page: 1, Size: 20, Ascending: true}).Return([]model.User{u}, nil)
	svc.On("List", mock.Anything, model.PageRequest{Ascending: false}).Return([]model.User{}, nil)

	h := NewUser(svc, withPrincipal(t, admin()), testutil.MakeNoopLogger())

	out, err := h.ListUsers(context.Background(), &proto.ListUsersRequest{Page: 1, Size: 20})
	require.NoError(t, err)
	require.Len(t, out.Users, 1)
	got := out.Users[0]
	assert.Equal(t, u.ID.String(), got.GetId())
	assert.Equal(t, "user1", got.GetUsername())
	assert.Equal(t, []string{"USER"}, got.GetRoles())
	assert.True(t, created.Equal(got.GetCreatedAt().AsTime()))

	_, err = h.ListUsers(context.Background(), &proto.ListUsersRequest{Descending: true})
	require.NoError(t, err)
}

func TestUser_ListUsers_Denied(t *testing.T) {
	t.Parallel()

	h := NewUser(mocks.NewUserService(t), withPrincipal(t, user()), testutil.MakeNoopLogger())
	_, err := h.ListUsers(context.Background(), &proto.ListUsersRequest{})
	assertCode(t, err, codes.PermissionDenied)
}

func TestUser_GetUserByUsername(t *testing.T) {
	t.Parallel()

	self := user()

	svc := mocks.NewUserService(t)
	svc.On("GetByUsername", mock.Anything, self.Username).Return(model.User{ID: self.UserID, Username: self.Username}, nil)

	h := NewUser(svc, withPrincipal(t, self), testutil.MakeNoopLogger())

	out, err := h.GetUserByUsername(context.Background(), &proto.GetUserByUsernameRequest{Username: self.Username})
	require.NoError(t, err)
	assert.Equal(t, self.UserID.String(), out.GetId())

	_, err = h.GetUserByUsername(context.Background(), &proto.GetUserByUsernameRequest{Username: "someone-else"})
	assertCode(t, err, codes.PermissionDenied)
}

func TestUser_UpdateUser(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	name := "renamed"

	svc := mocks.NewUserService(t)
	svc.On("Update", mock.Anything, id, model.UpdateUserParams{Username: &name}).Return(nil).Once()
	svc.On("Update", mock.Anything, id, mock.Anything).Return(apierrors.NewErrUsernameTaken(name)).Once()

	h := NewUser(svc, withPrincipal(t, admin()), testutil.MakeNoopLogger())

	_, err := h.UpdateUser(context.Background(), &proto.UpdateUserRequest{UserId: id.String(), Username: &name})
	require.NoError(t, err)

	_, err = h.UpdateUser(context.Background(), &proto.UpdateUserRequest{UserId: id.String(), Username: &name})
	assertCode(t, err, codes.AlreadyExists)
}

func TestUser_DeleteUser(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	svc := mocks.NewUserService(t)
	svc.On("Delete", mock.Anything, id).Return(nil)

	_, err := NewUser(svc, withPrincipal(t, admin()), testutil.MakeNoopLogger()).
		DeleteUser(context.Background(), &proto.UserRequest{UserId: id.String()})
	require.NoError(t, err)

	_, err = NewUser(mocks.NewUserService(t), withPrincipal(t, user()), testutil.MakeNoopLogger()).
		DeleteUser(context.Background(), &proto.UserRequest{UserId: id.String()})
	assertCode(t, err, codes.PermissionDenied)
}

func TestUser_GetBalance(t *testing.T) {
	t.Parallel()

	self := user()
	svc := mocks.NewUserService(t)
	svc.On("Balance", mock.Anything, self.UserID).Return(model.Balance{UserID: self.UserID, Total: decimal.RequireFromString("44.2")}, nil)

	h := NewUser(svc, withPrincipal(t, self), testutil.MakeNoopLogger())

	out, err := h.GetBalance(context.Background(), &proto.UserRequest{UserId: self.UserID.String()})
	require.NoError(t, err)
	assert.Equal(t, "44.20", out.GetTotal())
	assert.Equal(t, self.UserID.String(), out.GetUserId())

	_, err = h.GetBalance(context.Background(), &proto.UserRequest{UserId: uuid.NewString()})
	assertCode(t, err, codes.PermissionDenied)

	_, err = h.GetBalance(context.Background(), &proto.UserRequest{UserId: "nope"})
	assertCode(t, err, codes.PermissionDenied)

	_, err = NewUser(mocks.NewUserService(t), withPrincipal(t, admin()), testutil.MakeNoopLogger()).
		GetBalance(context.Background(), &proto.UserRequest{UserId: "nope"})
	assertCode(t, err, codes.InvalidArgument)
}
