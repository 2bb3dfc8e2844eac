package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dtroode/bankcards-server/internal/model"
)

var _ model.CardStore = (*CardRepository)(nil)

const cardColumns = `id, encrypted_number, owner_id, expiry_date, status, balance, created_at`

type CardRepository struct {
	db DBTX
}

func NewCardRepository(db DBTX) *CardRepository {
	return &CardRepository{
		db: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (model.Card, error) {
	var (
		card   model.Card
		status string
	)
	err := row.Scan(
		&card.ID, &card.EncryptedNumber, &card.OwnerID, &card.ExpiryDate,
		&status, &card.Balance, &card.CreatedAt,
	)
	if err != nil {
		return model.Card{}, err
	}
	card.Status = model.CardStatus(status)
	card.ExpiryDate = model.DateOnly(card.ExpiryDate)
	return card, nil
}

func (r *CardRepository) Create(ctx context.Context, card model.Card) (model.Card, error) {
	query := `INSERT INTO cards (` + cardColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + cardColumns

	saved, err := scanCard(r.db.QueryRowContext(ctx, query,
		card.ID, card.EncryptedNumber, card.OwnerID, model.DateOnly(card.ExpiryDate),
		string(card.Status), card.Balance, card.CreatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Card{}, model.ErrAlreadyExists
		}
		return model.Card{}, fmt.Errorf("failed to create card: %w", err)
	}

	return saved, nil
}

func (r *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *CardRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (model.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *CardRepository) getOne(ctx context.Context, query string, id uuid.UUID) (model.Card, error) {
	card, err := scanCard(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Card{}, model.ErrNotFound
		}
		return model.Card{}, fmt.Errorf("failed to get card by id: %w", err)
	}
	return card, nil
}

func (r *CardRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM cards WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check card existence: %w", err)
	}
	return exists, nil
}

func (r *CardRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM cards`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	return n, nil
}

func (r *CardRepository) List(ctx context.Context, filter model.CardFilter, page model.Page) ([]model.Card, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.ExpiryDate != nil {
		args = append(args, model.DateOnly(*filter.ExpiryDate))
		conds = append(conds, fmt.Sprintf("expiry_date = $%d", len(args)))
	}

	query := `SELECT ` + cardColumns + ` FROM cards`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}

	return r.query(ctx, query, args, page)
}

func (r *CardRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, page model.Page) ([]model.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE owner_id = $1`
	return r.query(ctx, query, []any{ownerID}, page)
}

func (r *CardRepository) query(ctx context.Context, query string, args []any, page model.Page) ([]model.Card, error) {
	query += ` ORDER BY created_at ` + direction(page.Ascending) + `, id ` + direction(page.Ascending)
	query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, page.Limit, page.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	cards := make([]model.Card, 0, page.Limit)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cards: %w", err)
	}

	return cards, nil
}

func (r *CardRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.CardStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE cards SET status = $2 WHERE id = $1`, id, string(status))
	return checkAffected(res, err, "update card status")
}

func (r *CardRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	res, err := r.db.ExecContext(ctx, `UPDATE cards SET balance = $2 WHERE id = $1`, id, balance)
	return checkAffected(res, err, "update card balance")
}

func (r *CardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	return checkAffected(res, err, "delete card")
}

func (r *CardRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE owner_id = $1`, ownerID); err != nil {
		return fmt.Errorf("failed to delete cards by owner: %w", err)
	}
	return nil
}

func (r *CardRepository) SumBalanceByOwner(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(balance), 0) FROM cards WHERE owner_id = $1`, ownerID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum card balances: %w", err)
	}
	return total.Round(model.MoneyScale), nil
}

func direction(ascending bool) string {
	if ascending {
		return "ASC"
	}
	return "DESC"
}
