package config

import (
	"time"

	timex "github.com/ferdiebergado/legacyprocs/internal/pkg/time"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"

	defaultModel = "gemini-1.5-pro"
)

// Default returns a configuration usable for local development.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.App == nil {
		cfg.App = &App{}
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "info"
	}

	if cfg.Server == nil {
		cfg.Server = &Server{}
	}
	srv := cfg.Server
	setInt(&srv.Port, 8080)
	setDuration(&srv.ReadTimeout, 10*time.Second)
	setDuration(&srv.WriteTimeout, 60*time.Second)
	setDuration(&srv.IdleTimeout, 60*time.Second)
	setDuration(&srv.ShutdownTimeout, 10*time.Second)
	if srv.MaxBodyBytes == 0 {
		srv.MaxBodyBytes = 1 << 20
	}

	if cfg.DB == nil {
		cfg.DB = &DB{}
	}
	db := cfg.DB
	if db.Driver == "" {
		db.Driver = DriverSQLite
	}
	if db.Path == "" {
		db.Path = "legacyprocs.db"
	}
	if db.SSLMode == "" {
		db.SSLMode = "disable"
	}
	setInt(&db.Port, 5432)
	setInt(&db.MaxOpenConns, 25)
	setInt(&db.MaxIdleConns, 25)
	setDuration(&db.ConnMaxIdleTime, 5*time.Minute)
	setDuration(&db.ConnMaxLifetime, time.Hour)
	setDuration(&db.PingTimeout, 5*time.Second)

	if cfg.JWT == nil {
		cfg.JWT = &JWT{}
	}
	if cfg.JWT.JTILength == 0 {
		cfg.JWT.JTILength = 8
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "legacyprocs"
	}
	setDuration(&cfg.JWT.TTL, 24*time.Hour)

	if cfg.CORS == nil {
		cfg.CORS = &CORS{}
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"http://localhost:4200", "http://localhost:55411"}
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	}

	if cfg.AI == nil {
		cfg.AI = &AI{}
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = defaultModel
	}
	if cfg.AI.Temperature == 0 {
		cfg.AI.Temperature = 0.7
	}
	if cfg.AI.MaxOutputTokens == 0 {
		cfg.AI.MaxOutputTokens = 1024
	}
	setDuration(&cfg.AI.Timeout, 30*time.Second)

	if cfg.Cache == nil {
		cfg.Cache = &Cache{}
	}
	if cfg.Cache.Prefix == "" {
		cfg.Cache.Prefix = "legacyprocs:ai:"
	}
	setDuration(&cfg.Cache.TTL, time.Hour)

	if cfg.Events == nil {
		cfg.Events = &Events{}
	}
	if cfg.Events.Exchange == "" {
		cfg.Events.Exchange = "service_orders"
	}
}

func setInt(dst *int, def int) {
	if *dst == 0 {
		*dst = def
	}
}

func setDuration(dst *timex.Duration, def time.Duration) {
	if dst.Duration == 0 {
		dst.Duration = def
	}
}
