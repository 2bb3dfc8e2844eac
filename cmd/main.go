package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/bankcards-server/internal/api/grpc/context"
	"github.com/dtroode/bankcards-server/internal/api/grpc/middleware"
	"github.com/dtroode/bankcards-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/bankcards-server/internal/api/grpc/server"
	"github.com/dtroode/bankcards-server/internal/api/ops"
	"github.com/dtroode/bankcards-server/internal/cardcipher"
	"github.com/dtroode/bankcards-server/internal/config"
	"github.com/dtroode/bankcards-server/internal/logger"
	"github.com/dtroode/bankcards-server/internal/model"
	"github.com/dtroode/bankcards-server/internal/repository/postgres"
	"github.com/dtroode/bankcards-server/internal/server"
	"github.com/dtroode/bankcards-server/internal/service"
	"github.com/dtroode/bankcards-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	cipher, err := cardcipher.New(cfg.Encryption.Secret, cfg.Encryption.Salt)
	if err != nil {
		logger.Fatal("failed to initialize card number cipher", "error", err)
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, cfg.Database.MaxConns)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	store := postgres.NewStore(db.DB)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	bootstrap := service.NewBootstrap(store, cipher, logger)
	if err := bootstrap.EnsureMasterAdmin(ctx, cfg.MasterAdmin.Username, cfg.MasterAdmin.Password); err != nil {
		logger.Fatal("failed to ensure master admin", "error", err)
	}
	if cfg.SeedDemo {
		if _, err := bootstrap.SeedDemo(ctx); err != nil {
			logger.Fatal("failed to seed demo data", "error", err)
		}
	}

	services := router.Services{
		Auth:      service.NewAuth(store, tokenManager, logger),
		Cards:     service.NewCard(store, cipher, logger),
		Transfers: service.NewTransfer(store, logger),
		Users:     service.NewUser(store, logger),
		Tokens:    service.NewTokenService(tokenManager, store.Users(), logger),
	}
	limiter := middleware.NewPeerLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)

	r := router.New(services, grpcctx.NewManager(), limiter, logger)
	gs := r.Register()
	reflection.Register(gs)

	var sl model.SecurityLayer
	if cfg.GRPC.EnableHTTPS {
		tlsListener, err := server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
		if err != nil {
			logger.Fatal("failed to initialize TLS", "error", err)
		}
		sl = tlsListener
	} else {
		sl = server.NewPlainListener()
	}

	servers := []struct {
		server model.Server
		layer  model.SecurityLayer
	}{
		{server: grpcServer.NewGRPCServer(gs, fmt.Sprintf(":%s", cfg.GRPC.Port)), layer: sl},
		{server: ops.NewServer(ops.NewRouter(store, logger), fmt.Sprintf(":%s", cfg.HTTP.Port)), layer: server.NewPlainListener()},
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s.server, s.layer)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.server.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
