package middleware

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc/status"

	"github.com/dtroode/bankcards-server/internal/apierrors"
	"github.com/dtroode/bankcards-server/internal/logger"
	"github.com/dtroode/bankcards-server/internal/model"
)

// TokenService resolves principals from bearer tokens.
type TokenService interface {
	GetPrincipal(ctx context.Context, token string) (model.Principal, error)
}

// Authenticate validates bearer tokens and injects the principal into context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// AuthFunc reads the bearer token from the authorization header, resolves it
// and returns a context carrying the principal.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	token, err := auth.AuthFromMD(ctx, "bearer")
	if err != nil || token == "" {
		return nil, unauthenticated(apierrors.NewErrMissingAuthorizationToken())
	}

	principal, err := m.tokenService.GetPrincipal(ctx, token)
	if err != nil {
		m.logger.Debug("Authenticate: token rejected",
			"error", err.Error())
		return nil, unauthenticated(apierrors.NewErrInvalidAuthorizationToken())
	}
	if !principal.Authenticated() {
		return nil, unauthenticated(apierrors.NewErrInvalidAuthorizationToken())
	}

	return m.contextManager.SetPrincipalToContext(ctx, principal), nil
}

func unauthenticated(err *apierrors.APIError) error {
	return status.Error(err.GRPCCode, err.Message)
}
