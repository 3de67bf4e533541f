package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ferdiebergado/legacyprocs/internal/config"
	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"server": {"port": 9000, "read_timeout": "3s"},
		"db": {"driver": "pgx", "name": "orders"},
		"ai": {"model": "gemini-2.0-flash"}
	}`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("config.Load(%q) = %v", path, err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("cfg.Server.Port = %d, want: %d", cfg.Server.Port, 9000)
	}
	if cfg.Server.ReadTimeout.Duration != 3*time.Second {
		t.Errorf("cfg.Server.ReadTimeout = %v, want: %v", cfg.Server.ReadTimeout.Duration, 3*time.Second)
	}
	if cfg.Server.ShutdownTimeout.Duration != 10*time.Second {
		t.Errorf("cfg.Server.ShutdownTimeout = %v, want: %v", cfg.Server.ShutdownTimeout.Duration, 10*time.Second)
	}
	if cfg.DB.Driver != config.DriverPostgres {
		t.Errorf("cfg.DB.Driver = %q, want: %q", cfg.DB.Driver, config.DriverPostgres)
	}
	if cfg.AI.Model != "gemini-2.0-flash" {
		t.Errorf("cfg.AI.Model = %q, want: %q", cfg.AI.Model, "gemini-2.0-flash")
	}

	wantOrigins := []string{"http://localhost:4200", "http://localhost:55411"}
	if diff := cmp.Diff(wantOrigins, cfg.CORS.AllowedOrigins); diff != "" {
		t.Errorf("cfg.CORS.AllowedOrigins mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("DB_PASS", "hunter2")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load(writeConfig(t, `{}`))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("cfg.Server.Port = %d, want: %d", cfg.Server.Port, 7070)
	}
	if cfg.AI.APIKey != "secret" {
		t.Errorf("cfg.AI.APIKey = %q, want: %q", cfg.AI.APIKey, "secret")
	}
	if cfg.DB.Password != "hunter2" {
		t.Errorf("cfg.DB.Password = %q, want: %q", cfg.DB.Password, "hunter2")
	}
	if !cfg.JWT.Enabled {
		t.Error("cfg.JWT.Enabled = false, want: true")
	}
	if got := len(cfg.CORS.AllowedOrigins); got != 2 {
		t.Errorf("len(cfg.CORS.AllowedOrigins) = %d, want: %d", got, 2)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		if _, err := config.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Error("config.Load() = nil, want: error")
		}
	})

	t.Run("Malformed json", func(t *testing.T) {
		if _, err := config.Load(writeConfig(t, `{"server":`)); err == nil {
			t.Error("config.Load() = nil, want: error")
		}
	})

	t.Run("Invalid port", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		if _, err := config.Load(writeConfig(t, `{}`)); err == nil {
			t.Error("config.Load() = nil, want: error")
		}
	})
}
