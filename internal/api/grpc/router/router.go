package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/ratelimit"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/bankcards-server/api/proto"
	"github.com/dtroode/bankcards-server/internal/api/grpc/handler"
	"github.com/dtroode/bankcards-server/internal/api/grpc/middleware"
	"github.com/dtroode/bankcards-server/internal/logger"
	"github.com/dtroode/bankcards-server/internal/model"
)

// Services groups the domain services exposed over gRPC.
type Services struct {
	Auth      handler.AuthService
	Cards     handler.CardService
	Transfers handler.TransferService
	Users     handler.UserService
	Tokens    middleware.TokenService
}

// Router represents a gRPC router for bank card operations.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	services       Services
	contextManager model.ContextManager
	authLimiter    ratelimit.Limiter
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
//
// Parameters:
//   - services: The domain services behind the handlers
//   - contextManager: Carries the principal between interceptors and handlers
//   - authLimiter: Throttles calls to the public Auth service, nil disables it
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	services Services,
	contextManager model.ContextManager,
	authLimiter ratelimit.Limiter,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		contextManager: contextManager,
		authLimiter:    authLimiter,
		logger:         logger,
	}
}

func isAuthMethod(_ context.Context, c interceptors.CallMeta) bool {
	return strings.HasPrefix(c.FullMethod(), "/"+proto.Auth_ServiceDesc.ServiceName+"/")
}

func requiresAuth(ctx context.Context, c interceptors.CallMeta) bool {
	return !isAuthMethod(ctx, c)
}

// Register registers all gRPC services and middleware.
// It sets up panic recovery, request logging, rate limiting of the public
// endpoints and authentication of everything else.
//
// Returns the configured gRPC server instance.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.services.Tokens, r.contextManager, r.logger)

	chain := []grpc.UnaryServerInterceptor{
		recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(r.recover)),
		logging.HandleGRPC,
	}
	if r.authLimiter != nil {
		chain = append(chain, selector.UnaryServerInterceptor(
			ratelimit.UnaryServerInterceptor(r.authLimiter),
			selector.MatchFunc(isAuthMethod),
		))
	}
	chain = append(chain, selector.UnaryServerInterceptor(
		auth.UnaryServerInterceptor(authenticate.AuthFunc),
		selector.MatchFunc(requiresAuth),
	))

	s := grpc.NewServer(append(opts, grpc.ChainUnaryInterceptor(chain...))...)

	proto.RegisterAuthServer(s, handler.NewAuth(r.services.Auth, r.logger))
	proto.RegisterCardsServer(s, handler.NewCard(r.services.Cards, r.contextManager, r.logger))
	proto.RegisterTransfersServer(s, handler.NewTransfer(r.services.Transfers, r.contextManager, r.logger))
	proto.RegisterUsersServer(s, handler.NewUser(r.services.Users, r.contextManager, r.logger))

	return s
}

func (r *Router) recover(_ context.Context, p any) error {
	r.logger.Error("gRPC handler panicked",
		"panic", p)
	return status.Error(codes.Internal, "internal server error")
}
