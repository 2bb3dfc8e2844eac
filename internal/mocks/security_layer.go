package mocks

import (
	"net"

	mock "github.com/stretchr/testify/mock"
)

// SecurityLayer is a mock implementation of model.SecurityLayer.
type SecurityLayer struct {
	mock.Mock
}

// Listen provides a mock function with given fields: protocol, addr
func (_m *SecurityLayer) Listen(protocol string, addr string) (net.Listener, error) {
	ret := _m.Called(protocol, addr)

	var r0 net.Listener
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(net.Listener)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewSecurityLayer creates a new instance of SecurityLayer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSecurityLayer(t interface {
	mock.TestingT
	Cleanup(func())
}) *SecurityLayer {
	m := &SecurityLayer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
