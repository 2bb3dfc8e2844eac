package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/dtroode/bankcards-server/internal/apierrors"
	"github.com/dtroode/bankcards-server/internal/logger"
	"github.com/dtroode/bankcards-server/internal/model"
)

// Transfer reasons reported as invalid operations.
const (
	ReasonSourceNotActive      = "source card is not active"
	ReasonDestinationNotActive = "destination card is not active"
	ReasonSameCard             = "can't transfer money to the same card"
	ReasonInsufficientBalance  = "insufficient balance on source card"
	ReasonNonPositiveAmount    = "transfer amount must be positive"
)

// Transfer moves money between two cards of the same owner.
type Transfer struct {
	store  model.Store
	logger *logger.Logger
}

func NewTransfer(store model.Store, logger *logger.Logger) *Transfer {
	return &Transfer{
		store:  store,
		logger: logger,
	}
}

// Transfer debits FromCardID and credits ToCardID in one transaction. Both
// rows are locked in id order so that opposite transfers can't deadlock.
func (s *Transfer) Transfer(ctx context.Context, userID uuid.UUID, params model.TransferParams) error {
	amount := params.Amount.Round(model.MoneyScale)

	s.logger.Debug("Transfer service: starting transfer",
		"user_id", userID,
		"from_card_id", params.FromCardID,
		"to_card_id", params.ToCardID,
		"amount", amount.StringFixed(model.MoneyScale))

	err := s.store.WithTx(ctx, func(tx model.Store) error {
		exists, err := tx.Users().Exists(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to check user: %w", err)
		}
		if !exists {
			return apierrors.NewErrUserNotFound(userID)
		}

		locked, err := lockCards(ctx, tx.Cards(), params.FromCardID, params.ToCardID)
		if err != nil {
			return err
		}

		from, ok := locked[params.FromCardID]
		if !ok {
			return apierrors.NewErrCardNotOwnedByUser(params.FromCardID, userID)
		}
		to, ok := locked[params.ToCardID]
		if !ok {
			return apierrors.NewErrCardNotOwnedByUser(params.ToCardID, userID)
		}

		if from.OwnerID != userID {
			return apierrors.NewErrCardNotOwnedByUser(from.ID, userID)
		}
		if to.OwnerID != userID {
			return apierrors.NewErrCardNotOwnedByUser(to.ID, userID)
		}

		if from.Status != model.CardStatusActive {
			return apierrors.NewErrInvalidOperation(ReasonSourceNotActive)
		}
		if to.Status != model.CardStatusActive {
			return apierrors.NewErrInvalidOperation(ReasonDestinationNotActive)
		}
		if from.Equal(to) {
			return apierrors.NewErrInvalidOperation(ReasonSameCard)
		}
		if from.Balance.LessThan(amount) {
			return apierrors.NewErrInvalidOperation(ReasonInsufficientBalance)
		}
		if !amount.IsPositive() {
			return apierrors.NewErrInvalidOperation(ReasonNonPositiveAmount)
		}

		if err := tx.Cards().UpdateBalance(ctx, from.ID, from.Balance.Sub(amount)); err != nil {
			return fmt.Errorf("failed to debit source card: %w", err)
		}
		if err := tx.Cards().UpdateBalance(ctx, to.ID, to.Balance.Add(amount)); err != nil {
			return fmt.Errorf("failed to credit destination card: %w", err)
		}
		return nil
	})
	if err != nil {
		if _, ok := apierrors.KindOf(err); !ok {
			s.logger.Error("Transfer service: transfer failed",
				"user_id", userID,
				"error", err.Error())
		}
		return err
	}

	s.logger.Info("Transfer service: transfer completed",
		"user_id", userID,
		"from_card_id", params.FromCardID,
		"to_card_id", params.ToCardID,
		"amount", amount.StringFixed(model.MoneyScale))

	return nil
}

// lockCards locks the given cards in ascending byte order of their ids. Each
// id is locked once. Missing cards are left out of the result.
func lockCards(ctx context.Context, cards model.CardStore, ids ...uuid.UUID) (map[uuid.UUID]model.Card, error) {
	ordered := slices.Clone(ids)
	slices.SortFunc(ordered, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	ordered = slices.Compact(ordered)

	locked := make(map[uuid.UUID]model.Card, len(ordered))
	for _, id := range ordered {
		card, err := cards.GetByIDForUpdate(ctx, id)
		if errors.Is(err, model.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to lock card %s: %w", id, err)
		}
		locked[id] = card
	}
	return locked, nil
}
