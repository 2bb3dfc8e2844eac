package model

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for balances.
const MoneyScale = 2

// CardStatus enumerates card states.
type CardStatus string

const (
	CardStatusActive  CardStatus = "ACTIVE"
	CardStatusBlocked CardStatus = "BLOCKED"
	CardStatusExpired CardStatus = "EXPIRED"
)

// Valid reports whether s is one of the known statuses.
func (s CardStatus) Valid() bool {
	switch s {
	case CardStatusActive, CardStatusBlocked, CardStatusExpired:
		return true
	}
	return false
}

// ParseCardStatus converts a wire value into a CardStatus.
func ParseCardStatus(s string) (CardStatus, error) {
	st := CardStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown card status %q", s)
	}
	return st, nil
}

// Card is a stored bank card. The card number is kept only in encrypted form.
type Card struct {
	ID              uuid.UUID
	EncryptedNumber string
	OwnerID         uuid.UUID
	ExpiryDate      time.Time
	Status          CardStatus
	Balance         decimal.Decimal
	CreatedAt       time.Time
}

// Equal compares cards by identity.
func (c Card) Equal(other Card) bool {
	return c.ID == other.ID
}

// CardView is the outward representation of a card.
type CardView struct {
	ID           uuid.UUID
	MaskedNumber string
	OwnerID      uuid.UUID
	ExpiryDate   time.Time
	Status       CardStatus
	Balance      decimal.Decimal
}

// CardFilter narrows card listings. Nil fields are ignored, set fields are
// combined with AND.
type CardFilter struct {
	Status     *CardStatus
	ExpiryDate *time.Time
}

// CreateCardParams contains parameters to issue a card.
type CreateCardParams struct {
	OwnerID        uuid.UUID
	CardNumber     string
	ExpiryDate     time.Time
	InitialBalance decimal.Decimal
}

// TransferParams describes a move of money between two cards.
type TransferParams struct {
	FromCardID uuid.UUID
	ToCardID   uuid.UUID
	Amount     decimal.Decimal
}

// CardStore defines persistence operations for cards.
type CardStore interface {
	Create(ctx context.Context, card Card) (Card, error)
	GetByID(ctx context.Context, id uuid.UUID) (Card, error)
	// GetByIDForUpdate reads a card and locks its row until the surrounding
	// transaction ends.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (Card, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, filter CardFilter, page Page) ([]Card, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]Card, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status CardStatus) error
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
	SumBalanceByOwner(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error)
}

// CardNumberCipher encrypts card numbers for storage and masks them for display.
type CardNumberCipher interface {
	Encrypt(plain string) (string, error)
	Decrypt(ciphertext string) (string, error)
	Mask(plain string) string
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
