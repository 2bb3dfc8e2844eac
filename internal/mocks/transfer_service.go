package mocks

import (
	"context"

	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/bankcards-server/internal/model"
)

// TransferService is a mock implementation of handler.TransferService.
type TransferService struct {
	mock.Mock
}

// Transfer provides a mock function with given fields: ctx, userID, params
func (_m *TransferService) Transfer(ctx context.Context, userID uuid.UUID, params model.TransferParams) error {
	ret := _m.Called(ctx, userID, params)

	r0 := ret.Error(0)

	return r0
}

// NewTransferService creates a new instance of TransferService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTransferService(t interface {
	mock.TestingT
	Cleanup(func())
}) *TransferService {
	m := &TransferService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
