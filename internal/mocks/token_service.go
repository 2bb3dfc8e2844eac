package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/bankcards-server/internal/model"
)

// TokenService is a mock implementation of middleware.TokenService.
type TokenService struct {
	mock.Mock
}

// GetPrincipal provides a mock function with given fields: ctx, token
func (_m *TokenService) GetPrincipal(ctx context.Context, token string) (model.Principal, error) {
	ret := _m.Called(ctx, token)

	var r0 model.Principal
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.Principal)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewTokenService creates a new instance of TokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenService {
	m := &TokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
