package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/legacyprocs/internal/config"
	"github.com/ferdiebergado/legacyprocs/internal/platform/ai"
	"github.com/ferdiebergado/legacyprocs/internal/platform/cache"
	"github.com/ferdiebergado/legacyprocs/internal/platform/events"
	"github.com/ferdiebergado/legacyprocs/internal/platform/jwt"
	"github.com/ferdiebergado/legacyprocs/internal/platform/router"
	"github.com/ferdiebergado/legacyprocs/internal/platform/validation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const metricsNamespace = "legacyprocs"

// Provider holds the shared dependencies of the feature modules.
// Signer is nil when no application key is configured.
type Provider struct {
	DB        *sql.DB
	Signer    jwt.Signer
	Validator validation.Validator
	Router    router.Router
	Generator ai.Generator
	Cache     cache.Cache
	Publisher events.Publisher
	Registry  *prometheus.Registry
}

func newProvider(ctx context.Context, cfg *config.Config, dbConn *sql.DB) (*Provider, error) {
	var signer jwt.Signer
	if cfg.App.Key != "" {
		s, err := jwt.NewGolangJWTSigner(cfg.JWT, cfg.App.Key)
		if err != nil {
			return nil, fmt.Errorf("new jwt signer: %w", err)
		}
		signer = s
	} else if cfg.JWT.Enabled {
		return nil, errors.New("jwt is enabled but APP_KEY is not set")
	}

	generator, err := ai.NewGeminiGenerator(ctx, cfg.AI)
	if err != nil {
		return nil, fmt.Errorf("new generator: %w", err)
	}

	suggestionCache := cache.NewNoopCache()
	if cfg.Cache.URL != "" {
		suggestionCache, err = cache.NewRedisCache(ctx, cfg.Cache.URL, cfg.Cache.Prefix)
		if err != nil {
			return nil, fmt.Errorf("new redis cache: %w", err)
		}
	} else {
		slog.Info("REDIS_URL is not set, suggestions will not be cached.")
	}

	publisher := events.NewNoopPublisher()
	if cfg.Events.URL != "" {
		publisher, err = events.NewAMQPPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			_ = suggestionCache.Close()
			return nil, fmt.Errorf("new amqp publisher: %w", err)
		}
	} else {
		slog.Info("AMQP_URL is not set, service order events will not be published.")
	}

	return &Provider{
		DB:        dbConn,
		Signer:    signer,
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
		Generator: generator,
		Cache:     suggestionCache,
		Publisher: publisher,
		Registry:  newRegistry(dbConn),
	}, nil
}

func newRegistry(dbConn *sql.DB) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(dbConn, metricsNamespace),
	)
	return reg
}

// Close releases the cache and publisher connections.
func (p *Provider) Close() error {
	var errs []error
	if p.Cache != nil {
		if err := p.Cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close cache: %w", err))
		}
	}
	if p.Publisher != nil {
		if err := p.Publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close publisher: %w", err))
		}
	}
	return errors.Join(errs...)
}
