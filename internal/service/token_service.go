package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/bankcards-server/internal/apierrors"
	"github.com/dtroode/bankcards-server/internal/logger"
	"github.com/dtroode/bankcards-server/internal/model"
)

// TokenService resolves access tokens into principals.
type TokenService struct {
	manager model.TokenManager
	users   model.UserStore
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, users model.UserStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, users: users, logger: logger}
}

// GetPrincipal validates the token and loads the current roles of its user.
// A token of a deleted user yields no principal.
func (s *TokenService) GetPrincipal(ctx context.Context, token string) (model.Principal, error) {
	userID, err := s.manager.ParseAccessToken(token)
	if err != nil {
		s.logger.Debug("Token service: rejected access token",
			"error", err.Error())
		return model.Principal{}, apierrors.NewErrInvalidAuthorizationToken()
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("Token service: token of unknown user",
			"user_id", userID)
		return model.Principal{}, apierrors.NewErrInvalidAuthorizationToken()
	}
	if err != nil {
		return model.Principal{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return model.Principal{
		UserID:   user.ID,
		Username: user.Username,
		Roles:    user.Roles,
	}, nil
}
