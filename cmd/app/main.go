package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/striderush/StrideRush_Go/internal/bootstrap"
	"github.com/striderush/StrideRush_Go/internal/config"
	"github.com/striderush/StrideRush_Go/internal/database"
	"github.com/striderush/StrideRush_Go/internal/server"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn("Environment validation warning", "warning", w)
	}

	if err := bootstrap.RunMigrations(cfg.GetDBConnString()); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns,
		cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := bootstrap.SyncConfigs(ctx, dbPool); err != nil {
		slog.Error("Config sync failed", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services, err := bootstrap.InitializeServices(repos, cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, cfg.AdminEmails, dbPool, *services)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		dbPool.Close()
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
