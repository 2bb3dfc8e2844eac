package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// Pinger is a mock implementation of the readiness probe dependency.
type Pinger struct {
	mock.Mock
}

// Ping provides a mock function with given fields: ctx
func (_m *Pinger) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)

	r0 := ret.Error(0)

	return r0
}

// NewPinger creates a new instance of Pinger. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPinger(t interface {
	mock.TestingT
	Cleanup(func())
}) *Pinger {
	m := &Pinger{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
