package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/bankcards-server/internal/model"
)

// CardStore is a mock implementation of model.CardStore.
type CardStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, card
func (_m *CardStore) Create(ctx context.Context, card model.Card) (model.Card, error) {
	ret := _m.Called(ctx, card)

	var r0 model.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.Card)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *CardStore) GetByID(ctx context.Context, id uuid.UUID) (model.Card, error) {
	ret := _m.Called(ctx, id)

	var r0 model.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.Card)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// GetByIDForUpdate provides a mock function with given fields: ctx, id
func (_m *CardStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (model.Card, error) {
	ret := _m.Called(ctx, id)

	var r0 model.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.Card)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Exists provides a mock function with given fields: ctx, id
func (_m *CardStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ret := _m.Called(ctx, id)

	r0 := ret.Bool(0)
	r1 := ret.Error(1)

	return r0, r1
}

// Count provides a mock function with given fields: ctx
func (_m *CardStore) Count(ctx context.Context) (int, error) {
	ret := _m.Called(ctx)

	r0 := ret.Int(0)
	r1 := ret.Error(1)

	return r0, r1
}

// List provides a mock function with given fields: ctx, filter, page
func (_m *CardStore) List(ctx context.Context, filter model.CardFilter, page model.Page) ([]model.Card, error) {
	ret := _m.Called(ctx, filter, page)

	var r0 []model.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Card)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// ListByOwner provides a mock function with given fields: ctx, ownerID, page
func (_m *CardStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, page model.Page) ([]model.Card, error) {
	ret := _m.Called(ctx, ownerID, page)

	var r0 []model.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Card)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// UpdateStatus provides a mock function with given fields: ctx, id, status
func (_m *CardStore) UpdateStatus(ctx context.Context, id uuid.UUID, status model.CardStatus) error {
	ret := _m.Called(ctx, id, status)

	r0 := ret.Error(0)

	return r0
}

// UpdateBalance provides a mock function with given fields: ctx, id, balance
func (_m *CardStore) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	ret := _m.Called(ctx, id, balance)

	r0 := ret.Error(0)

	return r0
}

// Delete provides a mock function with given fields: ctx, id
func (_m *CardStore) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	r0 := ret.Error(0)

	return r0
}

// DeleteByOwner provides a mock function with given fields: ctx, ownerID
func (_m *CardStore) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	ret := _m.Called(ctx, ownerID)

	r0 := ret.Error(0)

	return r0
}

// SumBalanceByOwner provides a mock function with given fields: ctx, ownerID
func (_m *CardStore) SumBalanceByOwner(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	ret := _m.Called(ctx, ownerID)

	var r0 decimal.Decimal
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(decimal.Decimal)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewCardStore creates a new instance of CardStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCardStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *CardStore {
	m := &CardStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
