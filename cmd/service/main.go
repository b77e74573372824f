// Package main starts the advisor dashboard API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/http"
	"github.com/jsamuelsen/advisor-dashboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen/advisor-dashboard/internal/bootstrap"
	"github.com/jsamuelsen/advisor-dashboard/internal/platform/config"
	"github.com/jsamuelsen/advisor-dashboard/internal/platform/logging"
	"github.com/jsamuelsen/advisor-dashboard/internal/platform/telemetry"
)

// Set with -ldflags "-X main.Version=... -X main.Commit=... -X main.BuildTime=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	telProvider, err := telemetry.New(ctx, telemetry.ConfigFrom(cfg))
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	dashboard, err := bootstrap.Build(ctx, cfg, logger, bootstrap.Options{
		BuildInfo: handlers.NewBuildInfo(Version, Commit, BuildTime),
	})
	if err != nil {
		return err
	}

	server := http.New(&cfg.Server, logger)
	dashboard.Mount(server.Engine())

	if err := server.Run(ctx); err != nil {
		return err
	}

	logger.Info("shutdown complete")

	return nil
}
