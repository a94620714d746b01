package main

import (
	"os"

	"github.com/hotel-booking/backend/internal/config"
	"github.com/hotel-booking/backend/internal/queue/asynqserver"
	"github.com/hotel-booking/backend/internal/worker"
	"github.com/hotel-booking/backend/pkg/email/smtp"
	"github.com/hotel-booking/backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()

	appLogger := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		appLogger.Error("smtp sender creation failed", zap.Error(err))
		os.Exit(1)
	}

	workers := worker.NewWorkers(worker.Deps{
		EmailProvider: emailSender,
		Config:        cfg,
	})

	srv, mux := asynqserver.New(cfg, workers)

	appLogger.Info("email worker started", zap.Int("concurrency", cfg.Queue.Concurrency))

	// Run blocks until SIGTERM or SIGINT and drains in-flight tasks.
	if err := srv.Run(mux); err != nil {
		appLogger.Error("queue server stopped", zap.Error(err))
		os.Exit(1)
	}

	appLogger.Info("worker stopped")
}
