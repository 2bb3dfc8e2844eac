package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/dtroode/bankcards-server/api/proto"
	"github.com/dtroode/bankcards-server/internal/apierrors"
	"github.com/dtroode/bankcards-server/internal/mocks"
	"github.com/dtroode/bankcards-server/internal/testutil"
)

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Register", mock.Anything, "user1", "pass1").Return("tok", nil)

	out, err := NewAuth(svc, testutil.MakeNoopLogger()).Register(context.Background(), &proto.RegisterRequest{Username: "user1", Password: "pass1"})
	require.NoError(t, err)
	assert.Equal(t, "tok", out.AccessToken)
	assert.Equal(t, "Bearer", out.TokenType)
}

func TestAuth_Register_Taken(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Register", mock.Anything, "user1", "pass1").Return("", apierrors.NewErrUsernameTaken("user1"))

	out, err := NewAuth(svc, testutil.MakeNoopLogger()).Register(context.Background(), &proto.RegisterRequest{Username: "user1", Password: "pass1"})
	assert.Nil(t, out)
	assertCode(t, err, codes.AlreadyExists)
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Login", mock.Anything, "user1", "pass1").Return("tok", nil)
	svc.On("Login", mock.Anything, "user1", "bad").Return("", apierrors.NewErrBadCredentials())

	h := NewAuth(svc, testutil.MakeNoopLogger())

	out, err := h.Login(context.Background(), &proto.LoginRequest{Username: "user1", Password: "pass1"})
	require.NoError(t, err)
	assert.Equal(t, "tok", out.AccessToken)

	_, err = h.Login(context.Background(), &proto.LoginRequest{Username: "user1", Password: "bad"})
	assertCode(t, err, codes.InvalidArgument)
}
