package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/bankcards-server/internal/model"
)

// ContextManager is a mock implementation of model.ContextManager.
type ContextManager struct {
	mock.Mock
}

// SetPrincipalToContext provides a mock function with given fields: ctx, principal
func (_m *ContextManager) SetPrincipalToContext(ctx context.Context, principal model.Principal) context.Context {
	ret := _m.Called(ctx, principal)

	var r0 context.Context
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(context.Context)
	}

	return r0
}

// GetPrincipalFromContext provides a mock function with given fields: ctx
func (_m *ContextManager) GetPrincipalFromContext(ctx context.Context) (*model.Principal, bool) {
	ret := _m.Called(ctx)

	var r0 *model.Principal
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Principal)
	}
	r1 := ret.Bool(1)

	return r0, r1
}

// NewContextManager creates a new instance of ContextManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewContextManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContextManager {
	m := &ContextManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
