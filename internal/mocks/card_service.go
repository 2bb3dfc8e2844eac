package mocks

import (
	"context"

	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/bankcards-server/internal/model"
)

// CardService is a mock implementation of handler.CardService.
type CardService struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, params
func (_m *CardService) Create(ctx context.Context, params model.CreateCardParams) (model.Card, error) {
	ret := _m.Called(ctx, params)

	var r0 model.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.Card)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// Get provides a mock function with given fields: ctx, cardID
func (_m *CardService) Get(ctx context.Context, cardID uuid.UUID) (model.Card, error) {
	ret := _m.Called(ctx, cardID)

	var r0 model.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.Card)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// List provides a mock function with given fields: ctx, filter, req
func (_m *CardService) List(ctx context.Context, filter model.CardFilter, req model.PageRequest) ([]model.Card, error) {
	ret := _m.Called(ctx, filter, req)

	var r0 []model.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Card)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// ListForOwner provides a mock function with given fields: ctx, ownerID, req
func (_m *CardService) ListForOwner(ctx context.Context, ownerID uuid.UUID, req model.PageRequest) ([]model.Card, error) {
	ret := _m.Called(ctx, ownerID, req)

	var r0 []model.Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Card)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// SetStatus provides a mock function with given fields: ctx, cardID, status
func (_m *CardService) SetStatus(ctx context.Context, cardID uuid.UUID, status model.CardStatus) error {
	ret := _m.Called(ctx, cardID, status)

	r0 := ret.Error(0)

	return r0
}

// SelfBlock provides a mock function with given fields: ctx, cardID, callerID
func (_m *CardService) SelfBlock(ctx context.Context, cardID uuid.UUID, callerID uuid.UUID) error {
	ret := _m.Called(ctx, cardID, callerID)

	r0 := ret.Error(0)

	return r0
}

// Delete provides a mock function with given fields: ctx, cardID
func (_m *CardService) Delete(ctx context.Context, cardID uuid.UUID) error {
	ret := _m.Called(ctx, cardID)

	r0 := ret.Error(0)

	return r0
}

// View provides a mock function with given fields: card
func (_m *CardService) View(card model.Card) (model.CardView, error) {
	ret := _m.Called(card)

	var r0 model.CardView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.CardView)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewCardService creates a new instance of CardService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCardService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CardService {
	m := &CardService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
