package model

import (
	"context"
	"errors"
)

// ErrNestedTx is returned when WithTx is called on a transaction-scoped Store.
var ErrNestedTx = errors.New("nested transactions are not supported")

// Store groups the repositories that must be able to share a transaction.
type Store interface {
	Cards() CardStore
	Users() UserStore

	// WithTx runs fn inside a transaction. The Store passed to fn is bound to
	// that transaction. It is committed when fn returns nil and rolled back
	// otherwise.
	WithTx(ctx context.Context, fn func(tx Store) error) error

	Ping(ctx context.Context) error
}
