package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// AuthService is a mock implementation of handler.AuthService.
type AuthService struct {
	mock.Mock
}

// Register provides a mock function with given fields: ctx, username, password
func (_m *AuthService) Register(ctx context.Context, username string, password string) (string, error) {
	ret := _m.Called(ctx, username, password)

	r0 := ret.String(0)
	r1 := ret.Error(1)

	return r0, r1
}

// Login provides a mock function with given fields: ctx, username, password
func (_m *AuthService) Login(ctx context.Context, username string, password string) (string, error) {
	ret := _m.Called(ctx, username, password)

	r0 := ret.String(0)
	r1 := ret.Error(1)

	return r0, r1
}

// NewAuthService creates a new instance of AuthService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
