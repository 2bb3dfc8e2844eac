package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/bankcards-server/internal/apierrors"
	"github.com/dtroode/bankcards-server/internal/logger"
	"github.com/dtroode/bankcards-server/internal/model"
)

// Card is the card registry: issuing, listing and status changes.
type Card struct {
	store  model.Store
	cipher model.CardNumberCipher
	logger *logger.Logger
	now    func() time.Time
}

func NewCard(
	store model.Store,
	cipher model.CardNumberCipher,
	logger *logger.Logger,
) *Card {
	return &Card{
		store:  store,
		cipher: cipher,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Card) Create(ctx context.Context, params model.CreateCardParams) (model.Card, error) {
	s.logger.Debug("Card service: creating card",
		"owner_id", params.OwnerID)

	exists, err := s.store.Users().Exists(ctx, params.OwnerID)
	if err != nil {
		return model.Card{}, fmt.Errorf("failed to check owner: %w", err)
	}
	if !exists {
		return model.Card{}, apierrors.NewErrUserNotFound(params.OwnerID)
	}

	if params.InitialBalance.IsNegative() {
		return model.Card{}, apierrors.NewErrInvalidOperation("initial balance can't be negative")
	}

	encrypted, err := s.cipher.Encrypt(params.CardNumber)
	if err != nil {
		s.logger.Error("Card service: failed to encrypt card number",
			"owner_id", params.OwnerID,
			"error", err.Error())
		return model.Card{}, fmt.Errorf("failed to encrypt card number: %w", err)
	}

	card := model.Card{
		ID:              uuid.New(),
		EncryptedNumber: encrypted,
		OwnerID:         params.OwnerID,
		ExpiryDate:      model.DateOnly(params.ExpiryDate),
		Status:          model.CardStatusActive,
		Balance:         params.InitialBalance.Round(model.MoneyScale),
		CreatedAt:       s.now().UTC(),
	}

	card, err = s.store.Cards().Create(ctx, card)
	if err != nil {
		s.logger.Error("Card service: failed to save card",
			"owner_id", params.OwnerID,
			"error", err.Error())
		return model.Card{}, fmt.Errorf("failed to save card: %w", err)
	}

	s.logger.Info("Card service: card created",
		"card_id", card.ID,
		"owner_id", card.OwnerID)

	return card, nil
}

func (s *Card) Get(ctx context.Context, cardID uuid.UUID) (model.Card, error) {
	card, err := s.store.Cards().GetByID(ctx, cardID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Card{}, apierrors.NewErrCardNotFound(cardID)
	}
	if err != nil {
		return model.Card{}, fmt.Errorf("failed to get card by id: %w", err)
	}
	return card, nil
}

func (s *Card) List(ctx context.Context, filter model.CardFilter, req model.PageRequest) ([]model.Card, error) {
	page := req.Normalize(model.DefaultCardPageSize, model.MaxCardPageSize)

	cards, err := s.store.Cards().List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

func (s *Card) ListForOwner(ctx context.Context, ownerID uuid.UUID, req model.PageRequest) ([]model.Card, error) {
	exists, err := s.store.Users().Exists(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check owner: %w", err)
	}
	if !exists {
		return nil, apierrors.NewErrUserNotFound(ownerID)
	}

	page := req.Normalize(model.DefaultCardPageSize, model.MaxCardPageSize)

	cards, err := s.store.Cards().ListByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards by owner: %w", err)
	}
	return cards, nil
}

// SetStatus is the administrative status change. Any status may follow any
// other, but setting the current status again is rejected.
func (s *Card) SetStatus(ctx context.Context, cardID uuid.UUID, status model.CardStatus) error {
	if !status.Valid() {
		return apierrors.NewErrInvalidOperation(fmt.Sprintf("unknown card status %q", status))
	}

	err := s.store.WithTx(ctx, func(tx model.Store) error {
		card, err := tx.Cards().GetByIDForUpdate(ctx, cardID)
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewErrCardNotFound(cardID)
		}
		if err != nil {
			return fmt.Errorf("failed to get card by id: %w", err)
		}

		if card.Status == status {
			return apierrors.NewErrCardStatusAlreadySet(cardID)
		}

		if err := tx.Cards().UpdateStatus(ctx, cardID, status); err != nil {
			return fmt.Errorf("failed to update card status: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Card service: card status changed",
		"card_id", cardID,
		"status", status)

	return nil
}

// SelfBlock blocks a card on behalf of its owner. A missing card and a card
// of another user fail with the same ownership error, administrators
// included.
func (s *Card) SelfBlock(ctx context.Context, cardID, callerID uuid.UUID) error {
	err := s.store.WithTx(ctx, func(tx model.Store) error {
		card, err := tx.Cards().GetByIDForUpdate(ctx, cardID)
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewErrCardNotOwnedByUser(cardID, callerID)
		}
		if err != nil {
			return fmt.Errorf("failed to get card by id: %w", err)
		}

		if card.OwnerID != callerID {
			return apierrors.NewErrCardNotOwnedByUser(cardID, callerID)
		}

		if card.Status == model.CardStatusBlocked {
			return apierrors.NewErrCardStatusAlreadySet(cardID)
		}

		if err := tx.Cards().UpdateStatus(ctx, cardID, model.CardStatusBlocked); err != nil {
			return fmt.Errorf("failed to block card: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Card service: card blocked by owner",
		"card_id", cardID,
		"user_id", callerID)

	return nil
}

func (s *Card) Delete(ctx context.Context, cardID uuid.UUID) error {
	err := s.store.Cards().Delete(ctx, cardID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrCardNotFound(cardID)
	}
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	s.logger.Info("Card service: card deleted",
		"card_id", cardID)

	return nil
}

// View decrypts the card number and returns the masked display form.
func (s *Card) View(card model.Card) (model.CardView, error) {
	plain, err := s.cipher.Decrypt(card.EncryptedNumber)
	if err != nil {
		s.logger.Error("Card service: failed to decrypt card number",
			"card_id", card.ID,
			"error", err.Error())
		return model.CardView{}, fmt.Errorf("failed to decrypt card number: %w", err)
	}

	return model.CardView{
		ID:           card.ID,
		MaskedNumber: s.cipher.Mask(plain),
		OwnerID:      card.OwnerID,
		ExpiryDate:   card.ExpiryDate,
		Status:       card.Status,
		Balance:      card.Balance,
	}, nil
}
