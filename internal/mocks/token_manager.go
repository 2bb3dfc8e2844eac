package mocks

import (
	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// TokenManager is a mock implementation of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

// GenerateAccessToken provides a mock function with given fields: userID
func (_m *TokenManager) GenerateAccessToken(userID uuid.UUID) (string, error) {
	ret := _m.Called(userID)

	r0 := ret.String(0)
	r1 := ret.Error(1)

	return r0, r1
}

// ParseAccessToken provides a mock function with given fields: token
func (_m *TokenManager) ParseAccessToken(token string) (uuid.UUID, error) {
	ret := _m.Called(token)

	var r0 uuid.UUID
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(uuid.UUID)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewTokenManager creates a new instance of TokenManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTokenManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenManager {
	m := &TokenManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
