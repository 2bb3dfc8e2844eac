package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtroode/bankcards-server/internal/model"
)

var _ model.Store = (*Store)(nil)

// Store hands out repositories bound either to the pool or to one transaction.
type Store struct {
	db    *sql.DB
	inTx  bool
	cards *CardRepository
	users *UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:    db,
		cards: NewCardRepository(db),
		users: NewUserRepository(db),
	}
}

func (s *Store) Cards() model.CardStore { return s.cards }

func (s *Store) Users() model.UserStore { return s.users }

// WithTx runs fn in a read-committed transaction.
func (s *Store) WithTx(ctx context.Context, fn func(tx model.Store) error) error {
	if s.inTx {
		return model.ErrNestedTx
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	txStore := &Store{
		db:    s.db,
		inTx:  true,
		cards: NewCardRepository(tx),
		users: NewUserRepository(tx),
	}

	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return errors.New("database handle is nil")
	}
	return s.db.PingContext(ctx)
}
