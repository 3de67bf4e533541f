// Package app wires the feature modules into an HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/legacyprocs/internal/assistant"
	"github.com/ferdiebergado/legacyprocs/internal/client"
	"github.com/ferdiebergado/legacyprocs/internal/config"
	"github.com/ferdiebergado/legacyprocs/internal/middleware"
	"github.com/ferdiebergado/legacyprocs/internal/serviceorder"
	"github.com/ferdiebergado/legacyprocs/internal/technician"
)

type App struct {
	server          *http.Server
	config          *config.Config
	provider        *Provider
	stop            context.CancelFunc
	shutdownTimeout time.Duration
}

// New registers middlewares and routes on provider.Router. CORS wraps the
// router itself so that preflight requests are answered for every path.
func New(cfg *config.Config, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: middleware.CORS(cfg.CORS)(provider.Router),
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	a := &App{
		config:          cfg,
		provider:        provider,
		server:          server,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}

	for _, mw := range middlewares {
		provider.Router.Use(mw)
	}
	a.setupRoutes()

	return a
}

func (a *App) setupRoutes() {
	p := a.provider

	clientModule := client.NewModule(p.DB)
	technicianModule := technician.NewModule(p.DB)
	orderModule := serviceorder.NewModule(p.DB, p.Publisher)
	assistantModule := assistant.NewModule(technicianModule.Service(), p.Generator, p.Cache, assistant.Options{
		CacheTTL: a.config.Cache.TTL.Duration,
	})

	mountSystemRoutes(p.Router, p.DB, p.Registry)
	mountAPIRoutes(p.Router, &apiHandlers{
		client:     clientModule.Handler(),
		technician: technicianModule.Handler(),
		order:      orderModule.Handler(),
		assistant:  assistantModule.Handler(),
	}, a.config, p)
}

// Handler returns the fully wired HTTP handler.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) Start(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
