package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"newsletter.app/internal/adapters/infrastructure"
	"newsletter.app/internal/app"
	"newsletter.app/internal/config"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := logger.ParseLevel(cfg.Log.Level)
	base := logger.NewWithLevel(level)
	slog.SetDefault(base.Logger)

	appLogger, err := buildLogger(cfg.Log, base, level)
	if err != nil {
		slog.Error("Failed to open log file", "error", err, "path", cfg.Log.FilePath)
		os.Exit(1)
	}

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	slog.Info("Server configuration", "address", cfg.Server.Address(), "baseURL", cfg.AppBaseURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Application stopped", "error", err)
			shutdown(application)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Received shutdown signal...")
	}

	shutdown(application)
}

func buildLogger(cfg config.LogConfig, base *logger.Logger, level slog.Level) (ports.Logger, error) {
	stdout := infrastructure.NewSlogLoggerAdapter(base.Logger)
	if cfg.FilePath == "" {
		return stdout, nil
	}

	file, err := infrastructure.NewFileLoggerAdapter(cfg.FilePath, level)
	if err != nil {
		return nil, err
	}
	return infrastructure.NewMultiLogger(stdout, file), nil
}

func shutdown(application *app.Application) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		slog.Error("Error during graceful shutdown", "error", err)
	}
}
