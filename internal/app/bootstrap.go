package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/legacyprocs/internal/config"
	"github.com/ferdiebergado/legacyprocs/internal/middleware"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/logging"
	"github.com/ferdiebergado/legacyprocs/internal/platform/db"
)

const (
	envFile        = ".env"
	envCfgFile     = "CFG_FILE"
	defaultCfgFile = "config.json"
)

// LoadConfig loads .env outside production, then the config file named by CFG_FILE.
func LoadConfig() (*config.Config, error) {
	if os.Getenv("ENV") != "production" {
		if _, err := os.Stat(envFile); err == nil {
			if err := env.Load(envFile); err != nil {
				return nil, fmt.Errorf("load env: %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", envFile, err)
		}
	}

	cfgFile := defaultCfgFile
	if f, ok := os.LookupEnv(envCfgFile); ok && f != "" {
		cfgFile = f
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func Run(baseCtx context.Context) error {
	slog.Info("Initializing...")

	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	logging.SetupLogger(cfg.App.Env, cfg.App.LogLevel, os.Stderr)

	dbConn, err := db.Connect(signalCtx, cfg.DB)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			slog.Error("Failed to close database.", "reason", err)
		}
	}()

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(signalCtx, dbConn, cfg.DB.Driver); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	provider, err := newProvider(signalCtx, cfg, dbConn)
	if err != nil {
		return err
	}
	defer func() {
		if err := provider.Close(); err != nil {
			slog.Error("Failed to release providers.", "reason", err)
		}
	}()

	api := New(cfg, provider, Middlewares(provider))
	if err := api.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

// Middlewares returns the global middleware chain, outermost first.
func Middlewares(provider *Provider) []func(http.Handler) http.Handler {
	metrics := middleware.NewMetrics(provider.Registry)
	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.InjectWriter,
		middleware.LogRequest,
		metrics.Handler,
		middleware.Recover,
		middleware.ContextGuard,
		middleware.CheckContentType,
	}
}
