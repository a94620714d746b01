package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/hotel-booking/backend/internal/api/http"
	"github.com/hotel-booking/backend/internal/cache"
	"github.com/hotel-booking/backend/internal/config"
	"github.com/hotel-booking/backend/internal/db"
	"github.com/hotel-booking/backend/internal/queue/asynqserver"
	"github.com/hotel-booking/backend/internal/repository"
	"github.com/hotel-booking/backend/internal/server"
	"github.com/hotel-booking/backend/internal/service"
	"github.com/hotel-booking/backend/pkg/auth"
	"github.com/hotel-booking/backend/pkg/hash"
	"github.com/hotel-booking/backend/pkg/logger"
	"github.com/hotel-booking/backend/pkg/otp"
	"github.com/hotel-booking/backend/pkg/pdf"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	appLogger := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	appLogger.Info("starting booking api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			appLogger.Error("error when closing mysql", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		appLogger.Error("redis connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			appLogger.Error("error when closing redis", zap.Error(err))
		}
	}()
	appLogger.Info("redis connection done")

	queueClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
	defer func() {
		if err := queueClient.Close(); err != nil {
			appLogger.Error("error when closing queue client", zap.Error(err))
		}
	}()

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		appLogger.Error("auth manager creation err", zap.Error(err))
		return
	}

	var voucherRenderer service.VoucherRenderer
	pdfGenerator, err := pdf.NewGenerator(cfg.PDF.FontPath)
	if err != nil {
		appLogger.Warn("voucher generator disabled", zap.Error(err))
	} else {
		voucherRenderer = pdfGenerator
	}

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:          cfg,
		Hasher:          hash.NewBcryptHasher(cfg.Auth.BcryptCost),
		TokenManager:    tokenManager,
		OtpGenerator:    otp.NewGOTPGenerator(),
		OtpGuard:        cache.NewOtpAttempts(redisClient, cfg.Auth.OTP),
		Notifier:        service.NewEmailService(queueClient, cfg.Email, cfg.Queue),
		VoucherRenderer: voucherRenderer,
		Repos:           repos,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init())
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("addr", srv.Addr()))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	appLogger.Info("app stopped")
}
