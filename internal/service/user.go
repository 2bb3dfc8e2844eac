package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/bankcards-server/internal/apierrors"
	"github.com/dtroode/bankcards-server/internal/logger"
	"github.com/dtroode/bankcards-server/internal/model"
)

// User is the user directory.
type User struct {
	store  model.Store
	logger *logger.Logger
}

func NewUser(store model.Store, logger *logger.Logger) *User {
	return &User{
		store:  store,
		logger: logger,
	}
}

func (s *User) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := s.store.Users().Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return exists, nil
}

func (s *User) GetByUsername(ctx context.Context, username string) (model.User, error) {
	user, err := s.store.Users().GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUserNotFoundByUsername(username)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (s *User) List(ctx context.Context, req model.PageRequest) ([]model.User, error) {
	page := req.Normalize(model.DefaultUserPageSize, model.MaxUserPageSize)

	users, err := s.store.Users().List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Update applies params to the user. A nil or unchanged username is a no-op.
func (s *User) Update(ctx context.Context, id uuid.UUID, params model.UpdateUserParams) error {
	return s.store.WithTx(ctx, func(tx model.Store) error {
		user, err := tx.Users().GetByID(ctx, id)
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewErrUserNotFound(id)
		}
		if err != nil {
			return fmt.Errorf("failed to get user by id: %w", err)
		}

		if params.Username == nil || *params.Username == user.Username {
			return nil
		}
		username := *params.Username
		if err := validateUsername(username); err != nil {
			return err
		}

		taken, err := tx.Users().ExistsByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			return apierrors.NewErrUsernameTaken(username)
		}

		err = tx.Users().UpdateUsername(ctx, id, username)
		if errors.Is(err, model.ErrAlreadyExists) {
			return apierrors.NewErrUsernameTaken(username)
		}
		if err != nil {
			return fmt.Errorf("failed to update username: %w", err)
		}

		s.logger.Info("User service: username changed",
			"user_id", id,
			"username", username)
		return nil
	})
}

// Delete removes the user's cards and then the user, in one transaction.
func (s *User) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.WithTx(ctx, func(tx model.Store) error {
		exists, err := tx.Users().Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check user: %w", err)
		}
		if !exists {
			return apierrors.NewErrUserNotFound(id)
		}

		if err := tx.Cards().DeleteByOwner(ctx, id); err != nil {
			return fmt.Errorf("failed to delete user cards: %w", err)
		}

		err = tx.Users().Delete(ctx, id)
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewErrUserNotFound(id)
		}
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("User service: user deleted",
		"user_id", id)

	return nil
}

// Balance sums the balances of the user's cards. A user without cards has 0.
func (s *User) Balance(ctx context.Context, id uuid.UUID) (model.Balance, error) {
	exists, err := s.store.Users().Exists(ctx, id)
	if err != nil {
		return model.Balance{}, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return model.Balance{}, apierrors.NewErrUserNotFound(id)
	}

	total, err := s.store.Cards().SumBalanceByOwner(ctx, id)
	if err != nil {
		return model.Balance{}, fmt.Errorf("failed to sum balances: %w", err)
	}

	return model.Balance{UserID: id, Total: total.Round(model.MoneyScale)}, nil
}
