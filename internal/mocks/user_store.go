package mocks

import (
	"context"

	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/bankcards-server/internal/model"
)

// UserStore is a mock implementation of model.UserStore.
type UserStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, user
func (_m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	ret := _m.Called(ctx, user)

	var r0 model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.User)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	ret := _m.Called(ctx, id)

	var r0 model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.User)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// GetByUsername provides a mock function with given fields: ctx, username
func (_m *UserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	ret := _m.Called(ctx, username)

	var r0 model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.User)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Exists provides a mock function with given fields: ctx, id
func (_m *UserStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ret := _m.Called(ctx, id)

	r0 := ret.Bool(0)
	r1 := ret.Error(1)

	return r0, r1
}

// ExistsByUsername provides a mock function with given fields: ctx, username
func (_m *UserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	ret := _m.Called(ctx, username)

	r0 := ret.Bool(0)
	r1 := ret.Error(1)

	return r0, r1
}

// List provides a mock function with given fields: ctx, page
func (_m *UserStore) List(ctx context.Context, page model.Page) ([]model.User, error) {
	ret := _m.Called(ctx, page)

	var r0 []model.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.User)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// UpdateUsername provides a mock function with given fields: ctx, id, username
func (_m *UserStore) UpdateUsername(ctx context.Context, id uuid.UUID, username string) error {
	ret := _m.Called(ctx, id, username)

	r0 := ret.Error(0)

	return r0
}

// UpdatePasswordHash provides a mock function with given fields: ctx, id, hash
func (_m *UserStore) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	ret := _m.Called(ctx, id, hash)

	r0 := ret.Error(0)

	return r0
}

// SetRoles provides a mock function with given fields: ctx, id, roles
func (_m *UserStore) SetRoles(ctx context.Context, id uuid.UUID, roles []model.Role) error {
	ret := _m.Called(ctx, id, roles)

	r0 := ret.Error(0)

	return r0
}

// Delete provides a mock function with given fields: ctx, id
func (_m *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// NewUserStore creates a new instance of UserStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewUserStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserStore {
	m := &UserStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
