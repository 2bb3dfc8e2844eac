package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"github.com/dtroode/bankcards-server/internal/model"
)

// Store is a model.Store backed by CardStore and UserStore mocks. WithTx runs
// fn against the same mocks and counts the transactions it opened.
type Store struct {
	CardStore *CardStore
	UserStore *UserStore

	TxCount int
	TxErr   error
	PingErr error
}

// NewStore creates a Store with fresh store mocks registered on t.
func NewStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *Store {
	return &Store{
		CardStore: NewCardStore(t),
		UserStore: NewUserStore(t),
	}
}

func (s *Store) Cards() model.CardStore { return s.CardStore }

func (s *Store) Users() model.UserStore { return s.UserStore }

func (s *Store) WithTx(_ context.Context, fn func(tx model.Store) error) error {
	s.TxCount++
	if s.TxErr != nil {
		return s.TxErr
	}
	return fn(s)
}

func (s *Store) Ping(_ context.Context) error {
	return s.PingErr
}
