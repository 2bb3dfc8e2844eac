package handler

import (
	"context"

	"github.com/dtroode/bankcards-server/api/proto"
	"github.com/dtroode/bankcards-server/internal/logger"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	proto.UnimplementedAuthServer

	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register creates an account and returns an access token for it.
func (h *Auth) Register(ctx context.Context, req *proto.RegisterRequest) (*proto.TokenResponse, error) {
	h.logger.Debug("Auth handler: processing registration request",
		"username", req.Username)

	token, err := h.authService.Register(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"username", req.Username,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: registration completed",
		"username", req.Username)

	return &proto.TokenResponse{AccessToken: token, TokenType: "Bearer"}, nil
}

// Login exchanges credentials for an access token.
func (h *Auth) Login(ctx context.Context, req *proto.LoginRequest) (*proto.TokenResponse, error) {
	h.logger.Debug("Auth handler: processing login request",
		"username", req.Username)

	token, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"username", req.Username,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: login completed",
		"username", req.Username)

	return &proto.TokenResponse{AccessToken: token, TokenType: "Bearer"}, nil
}
