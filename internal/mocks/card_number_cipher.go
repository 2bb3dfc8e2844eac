package mocks

import (
	mock "github.com/stretchr/testify/mock"
)

// CardNumberCipher is a mock implementation of model.CardNumberCipher.
type CardNumberCipher struct {
	mock.Mock
}

// Encrypt provides a mock function with given fields: plain
func (_m *CardNumberCipher) Encrypt(plain string) (string, error) {
	ret := _m.Called(plain)

	r0 := ret.String(0)
	r1 := ret.Error(1)

	return r0, r1
}

// Decrypt provides a mock function with given fields: ciphertext
func (_m *CardNumberCipher) Decrypt(ciphertext string) (string, error) {
	ret := _m.Called(ciphertext)

	r0 := ret.String(0)
	r1 := ret.Error(1)

	return r0, r1
}

// Mask provides a mock function with given fields: plain
func (_m *CardNumberCipher) Mask(plain string) string {
	ret := _m.Called(plain)

	r0 := ret.String(0)

	return r0
}

// NewCardNumberCipher creates a new instance of CardNumberCipher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCardNumberCipher(t interface {
	mock.TestingT
	Cleanup(func())
}) *CardNumberCipher {
	m := &CardNumberCipher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
