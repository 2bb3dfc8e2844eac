package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/bankcards-server/internal/apierrors"
	"github.com/dtroode/bankcards-server/internal/logger"
	"github.com/dtroode/bankcards-server/internal/model"
)

// Auth registers users and exchanges credentials for access tokens.
type Auth struct {
	store        model.Store
	tokenManager model.TokenManager
	logger       *logger.Logger
	cost         int
	now          func() time.Time
}

func NewAuth(
	store model.Store,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		store:        store,
		tokenManager: tokenManager,
		logger:       logger,
		cost:         bcrypt.DefaultCost,
		now:          time.Now,
	}
}

// Register creates a user with the USER role and logs it in.
func (a *Auth) Register(ctx context.Context, username, password string) (string, error) {
	a.logger.Debug("Auth service: starting user registration",
		"username", username)

	if err := validateUsername(username); err != nil {
		return "", err
	}
	if password == "" {
		return "", apierrors.NewErrInvalidOperation("password can't be empty")
	}

	taken, err := a.store.Users().ExistsByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		a.logger.Info("Auth service: username already taken",
			"username", username)
		return "", apierrors.NewErrUsernameTaken(username)
	}

	hash, err := a.hash(password)
	if err != nil {
		return "", err
	}

	user := model.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Roles:        []model.Role{model.RoleUser},
		CreatedAt:    a.now().UTC(),
	}
	if _, err := a.store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			return "", apierrors.NewErrUsernameTaken(username)
		}
		a.logger.Error("Auth service: failed to create user",
			"username", username,
			"error", err.Error())
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID,
		"username", username)

	return a.Login(ctx, username, password)
}

// Login checks the credentials and issues an access token. Unknown users and
// wrong passwords fail the same way.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	user, err := a.store.Users().GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown user",
			"username", username)
		return "", apierrors.NewErrBadCredentials()
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		a.logger.Info("Auth service: wrong password",
			"username", username)
		return "", apierrors.NewErrBadCredentials()
	}

	token, err := a.tokenManager.GenerateAccessToken(user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to generate access token",
			"user_id", user.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return token, nil
}

func (a *Auth) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func validateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < model.UsernameMinLen || n > model.UsernameMaxLen {
		return apierrors.NewErrInvalidOperation(fmt.Sprintf(
			"username must be between %d and %d characters", model.UsernameMinLen, model.UsernameMaxLen))
	}
	return nil
}
