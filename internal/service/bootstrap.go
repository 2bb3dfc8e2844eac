package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/bankcards-server/internal/logger"
	"github.com/dtroode/bankcards-server/internal/model"
)

// Bootstrap prepares a fresh database: the master admin account and,
// optionally, a demo data set.
type Bootstrap struct {
	store  model.Store
	cipher model.CardNumberCipher
	logger *logger.Logger
	cost   int
	now    func() time.Time
}

func NewBootstrap(store model.Store, cipher model.CardNumberCipher, logger *logger.Logger) *Bootstrap {
	return &Bootstrap{
		store:  store,
		cipher: cipher,
		logger: logger,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
}

// EnsureMasterAdmin creates the master admin or resets its password and
// grants it ADMIN and USER.
func (b *Bootstrap) EnsureMasterAdmin(ctx context.Context, username, password string) error {
	if password == "" {
		b.logger.Warn("Bootstrap: master admin password is not set, skipping",
			"username", username)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return fmt.Errorf("failed to hash master admin password: %w", err)
	}
	roles := []model.Role{model.RoleAdmin, model.RoleUser}

	return b.store.WithTx(ctx, func(tx model.Store) error {
		user, err := tx.Users().GetByUsername(ctx, username)
		if errors.Is(err, model.ErrNotFound) {
			_, err := tx.Users().Create(ctx, model.User{
				ID:           uuid.New(),
				Username:     username,
				PasswordHash: string(hash),
				Roles:        roles,
				CreatedAt:    b.now().UTC(),
			})
			if err != nil {
				return fmt.Errorf("failed to create master admin: %w", err)
			}
			b.logger.Info("Bootstrap: master admin created",
				"username", username)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get master admin: %w", err)
		}

		if err := tx.Users().UpdatePasswordHash(ctx, user.ID, string(hash)); err != nil {
			return fmt.Errorf("failed to update master admin password: %w", err)
		}
		if err := tx.Users().SetRoles(ctx, user.ID, roles); err != nil {
			return fmt.Errorf("failed to update master admin roles: %w", err)
		}
		b.logger.Info("Bootstrap: master admin updated",
			"username", username)
		return nil
	})
}

type demoUser struct {
	username string
	password string
	roles    []model.Role
}

type demoCard struct {
	owner  string
	number string
	expiry time.Time
	status model.CardStatus
}

var (
	demoUsers = []demoUser{
		{username: "user1", password: "pass1", roles: []model.Role{model.RoleUser}},
		{username: "user2", password: "pass2", roles: []model.Role{model.RoleUser}},
		{username: "user3", password: "pass3", roles: []model.Role{model.RoleUser}},
		{username: "admin", password: "password", roles: []model.Role{model.RoleAdmin, model.RoleUser}},
	}
	demoCards = []demoCard{
		{owner: "user1", number: "2380328656218459", expiry: date(2028, 6, 10), status: model.CardStatusActive},
		{owner: "user2", number: "7205674277714399", expiry: date(2028, 6, 10), status: model.CardStatusActive},
		{owner: "user3", number: "8706647592287922", expiry: date(2024, 6, 10), status: model.CardStatusExpired},
		{owner: "user3", number: "0613192986491444", expiry: date(2028, 6, 10), status: model.CardStatusBlocked},
		{owner: "user3", number: "7163082819181661", expiry: date(2028, 6, 10), status: model.CardStatusActive},
	}
	demoBalance = decimal.RequireFromString("22.10")
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedDemo fills a database without cards with demo users and cards. It
// reports whether anything was written. Accounts that already exist, such as
// the master admin, are kept as they are and only receive demo cards.
func (b *Bootstrap) SeedDemo(ctx context.Context) (bool, error) {
	seeded := false
	err := b.store.WithTx(ctx, func(tx model.Store) error {
		n, err := tx.Cards().Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count cards: %w", err)
		}
		if n > 0 {
			return nil
		}

		ids := make(map[string]uuid.UUID, len(demoUsers))
		for _, u := range demoUsers {
			existing, err := tx.Users().GetByUsername(ctx, u.username)
			if err == nil {
				ids[u.username] = existing.ID
				continue
			}
			if !errors.Is(err, model.ErrNotFound) {
				return fmt.Errorf("failed to get demo user %s: %w", u.username, err)
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(u.password), b.cost)
			if err != nil {
				return fmt.Errorf("failed to hash demo password: %w", err)
			}
			created, err := tx.Users().Create(ctx, model.User{
				ID:           uuid.New(),
				Username:     u.username,
				PasswordHash: string(hash),
				Roles:        u.roles,
				CreatedAt:    b.now().UTC(),
			})
			if err != nil {
				return fmt.Errorf("failed to create demo user %s: %w", u.username, err)
			}
			ids[u.username] = created.ID
		}

		for _, c := range demoCards {
			encrypted, err := b.cipher.Encrypt(c.number)
			if err != nil {
				return fmt.Errorf("failed to encrypt demo card: %w", err)
			}
			_, err = tx.Cards().Create(ctx, model.Card{
				ID:              uuid.New(),
				EncryptedNumber: encrypted,
				OwnerID:         ids[c.owner],
				ExpiryDate:      c.expiry,
				Status:          c.status,
				Balance:         demoBalance,
				CreatedAt:       b.now().UTC(),
			})
			if err != nil {
				return fmt.Errorf("failed to create demo card: %w", err)
			}
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if seeded {
		b.logger.Info("Bootstrap: demo data seeded",
			"users", len(demoUsers),
			"cards", len(demoCards))
	}
	return seeded, nil
}
