// Package config loads the service configuration from a JSON file and the environment.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	timex "github.com/ferdiebergado/legacyprocs/internal/pkg/time"
)

const masked = "*****"

type App struct {
	Env      string `json:"env,omitempty"`
	Key      string `json:"-"`
	LogLevel string `json:"log_level,omitempty"`
}

type Server struct {
	URL             string         `json:"url,omitempty"`
	Port            int            `json:"port,omitempty"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty"`
}

// DB configures the connection pool. Driver is "pgx" or "sqlite".
type DB struct {
	Driver          string         `json:"driver,omitempty"`
	Host            string         `json:"host,omitempty"`
	Port            int            `json:"port,omitempty"`
	User            string         `json:"user,omitempty"`
	Password        string         `json:"-"`
	Name            string         `json:"name,omitempty"`
	SSLMode         string         `json:"ssl_mode,omitempty"`
	Path            string         `json:"path,omitempty"`
	AutoMigrate     bool           `json:"auto_migrate,omitempty"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
}

// JWT configures bearer authentication of the /api routes.
type JWT struct {
	Enabled   bool           `json:"enabled,omitempty"`
	JTILength uint32         `json:"jti_length,omitempty"`
	Issuer    string         `json:"issuer,omitempty"`
	TTL       timex.Duration `json:"ttl,omitempty"`
}

type CORS struct {
	AllowedOrigins []string `json:"allowed_origins,omitempty"`
	AllowedMethods []string `json:"allowed_methods,omitempty"`
	AllowedHeaders []string `json:"allowed_headers,omitempty"`
}

// AI configures the Gemini client. An empty APIKey disables the assistant.
type AI struct {
	APIKey          string         `json:"-"`
	Model           string         `json:"model,omitempty"`
	BaseURL         string         `json:"base_url,omitempty"`
	Temperature     float32        `json:"temperature,omitempty"`
	MaxOutputTokens int32          `json:"max_output_tokens,omitempty"`
	Timeout         timex.Duration `json:"timeout,omitempty"`
}

// Cache configures the suggestion cache. An empty URL disables it.
type Cache struct {
	URL    string         `json:"-"`
	Prefix string         `json:"prefix,omitempty"`
	TTL    timex.Duration `json:"ttl,omitempty"`
}

// Events configures the service order event publisher. An empty URL disables it.
type Events struct {
	URL      string `json:"-"`
	Exchange string `json:"exchange,omitempty"`
}

type Config struct {
	App    *App    `json:"app,omitempty"`
	Server *Server `json:"server,omitempty"`
	DB     *DB     `json:"db,omitempty"`
	JWT    *JWT    `json:"jwt,omitempty"`
	CORS   *CORS   `json:"cors,omitempty"`
	AI     *AI     `json:"ai,omitempty"`
	Cache  *Cache  `json:"cache,omitempty"`
	Events *Events `json:"events,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("env", c.App.Env),
		slog.String("log_level", c.App.LogLevel),
		slog.String("key", mask(c.App.Key)),
		slog.Any("server", c.Server),
		slog.String("db_driver", c.DB.Driver),
		slog.String("db_host", c.DB.Host),
		slog.String("db_name", c.DB.Name),
		slog.String("db_password", mask(c.DB.Password)),
		slog.Bool("jwt_enabled", c.JWT.Enabled),
		slog.Any("cors", c.CORS),
		slog.String("ai_model", c.AI.Model),
		slog.String("ai_api_key", mask(c.AI.APIKey)),
		slog.String("cache_url", mask(c.Cache.URL)),
		slog.String("events_url", mask(c.Events.URL)),
	)
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return masked
}

// Load reads cfgFile, fills missing sections with defaults and applies environment overrides.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseCfgFile(cfgFile)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := overrideWithEnv(cfg); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	configFile, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := json.Unmarshal(configFile, &cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return &cfg, nil
}

func overrideWithEnv(cfg *Config) error {
	strVars := map[string]*string{
		"ENV":            &cfg.App.Env,
		"APP_KEY":        &cfg.App.Key,
		"LOG_LEVEL":      &cfg.App.LogLevel,
		"URL":            &cfg.Server.URL,
		"DB_DRIVER":      &cfg.DB.Driver,
		"DB_HOST":        &cfg.DB.Host,
		"DB_USER":        &cfg.DB.User,
		"DB_PASS":        &cfg.DB.Password,
		"DB_NAME":        &cfg.DB.Name,
		"DB_SSLMODE":     &cfg.DB.SSLMode,
		"DB_PATH":        &cfg.DB.Path,
		"GEMINI_API_KEY": &cfg.AI.APIKey,
		"GEMINI_MODEL":   &cfg.AI.Model,
		"REDIS_URL":      &cfg.Cache.URL,
		"AMQP_URL":       &cfg.Events.URL,
	}
	for name, dst := range strVars {
		if val, ok := os.LookupEnv(name); ok {
			*dst = val
		}
	}

	intVars := map[string]*int{
		"PORT":    &cfg.Server.Port,
		"DB_PORT": &cfg.DB.Port,
	}
	for name, dst := range intVars {
		if val, ok := os.LookupEnv(name); ok {
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("parse %s=%q: %w", name, val, err)
			}
			*dst = n
		}
	}

	if val, ok := os.LookupEnv("AUTH_ENABLED"); ok {
		enabled, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("parse AUTH_ENABLED=%q: %w", val, err)
		}
		cfg.JWT.Enabled = enabled
	}

	if val, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		cfg.CORS.AllowedOrigins = strings.Split(val, ",")
	}

	return nil
}
