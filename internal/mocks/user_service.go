package mocks

import (
	"context"

	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/bankcards-server/internal/model"
)

// UserService is a mock implementation of handler.UserService.
type UserService struct {
	mock.Mock
}

// GetByUsername provides a mock function with given fields: ctx, username
func (_m *UserService) GetByUsername(ctx context.Context, username string) (model.User, error) {
	ret := _m.Called(ctx, username)

	var r0 model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.User)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// List provides a mock function with given fields: ctx, req
func (_m *UserService) List(ctx context.Context, req model.PageRequest) ([]model.User, error) {
	ret := _m.Called(ctx, req)

	var r0 []model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.User)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Update provides a mock function with given fields: ctx, id, params
func (_m *UserService) Update(ctx context.Context, id uuid.UUID, params model.UpdateUserParams) error {
	ret := _m.Called(ctx, id, params)

	r0 := ret.Error(0)

	return r0
}

// Delete provides a mock function with given fields: ctx, id
func (_m *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// Balance provides a mock function with given fields: ctx, id
func (_m *UserService) Balance(ctx context.Context, id uuid.UUID) (model.Balance, error) {
	ret := _m.Called(ctx, id)

	var r0 model.Balance
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.Balance)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewUserService creates a new instance of UserService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserService {
	m := &UserService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
