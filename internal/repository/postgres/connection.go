package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/dtroode/bankcards-server/database"
	"github.com/dtroode/bankcards-server/internal/model"
)

const uniqueViolation = "23505"

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Connection is a pgx pool exposed as a database/sql handle.
type Connection struct {
	*sql.DB
	pool *pgxpool.Pool
}

// NewConnection migrates the schema and opens a pool of at most maxConns connections.
func NewConnection(ctx context.Context, dsn string, maxConns int32) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}
	if maxConns > 0 {
		conf.MaxConns = maxConns
	}

	if err := database.Migrate(ctx, dsn); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	return &Connection{
		DB:   stdlib.OpenDBFromPool(pool),
		pool: pool,
	}, nil
}

func (c *Connection) Close() error {
	var err error
	if c.DB != nil {
		err = c.DB.Close()
	}
	if c.pool != nil {
		c.pool.Close()
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func checkAffected(res sql.Result, err error, op string) error {
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}
