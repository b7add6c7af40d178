package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 7071 {
		t.Errorf("expected default port 7071, got %d", cfg.Server.Port)
	}
	if cfg.Server.Prefix != "/api" {
		t.Errorf("expected default prefix /api, got %s", cfg.Server.Prefix)
	}
	if !cfg.Log.Redact {
		t.Error("expected redaction enabled by default")
	}
	if cfg.Addr() != "0.0.0.0:7071" {
		t.Errorf("unexpected addr %s", cfg.Addr())
	}
}

func TestLoadConfig_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[server]
port = 8080
prefix = "/v1"
shutdown_timeout = "2s"
origins = ["https://example.com"]

[log]
level = "debug"
redact = false
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 || cfg.Server.Prefix != "/v1" {
		t.Errorf("server section not applied: %+v", cfg.Server)
	}
	if cfg.Server.ShutdownTimeout.Duration != 2*time.Second {
		t.Errorf("expected 2s shutdown timeout, got %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Server.ReadTimeout.Duration != 10*time.Second {
		t.Errorf("expected default read timeout to survive, got %s", cfg.Server.ReadTimeout)
	}
	if len(cfg.Server.AllowOrigins) != 1 || cfg.Server.AllowOrigins[0] != "https://example.com" {
		t.Errorf("unexpected origins %v", cfg.Server.AllowOrigins)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Redact {
		t.Errorf("log section not applied: %+v", cfg.Log)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
server:
  port: 9090
  read_timeout: 3s
log:
  level: warn
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout.Duration != 3*time.Second {
		t.Errorf("expected 3s read timeout, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected warn level, got %s", cfg.Log.Level)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeFile(t, "bad.toml", "[server\nport = ")
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected decode error")
		}
	})

	t.Run("bad duration", func(t *testing.T) {
		path := writeFile(t, "bad.toml", "[server]\nread_timeout = \"soon\"\n")
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected duration error")
		}
	})

	t.Run("port out of range", func(t *testing.T) {
		path := writeFile(t, "bad.toml", "[server]\nport = 70000\n")
		_, err := LoadConfig(path)
		if err == nil || !strings.Contains(err.Error(), "Port") {
			t.Errorf("expected port validation error, got %v", err)
		}
	})

	t.Run("unknown log level", func(t *testing.T) {
		path := writeFile(t, "bad.toml", "[log]\nlevel = \"loud\"\n")
		_, err := LoadConfig(path)
		if err == nil || !strings.Contains(err.Error(), "Level") {
			t.Errorf("expected level validation error, got %v", err)
		}
	})

	t.Run("prefix without slash", func(t *testing.T) {
		path := writeFile(t, "bad.toml", "[server]\nprefix = \"api\"\n")
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected prefix validation error")
		}
	})
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPort, "6000")
	t.Setenv(EnvLogLevel, "ERROR")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 6000 {
		t.Errorf("expected env port 6000, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("expected env level error, got %s", cfg.Log.Level)
	}

	t.Setenv(EnvPort, "not-a-port")
	if _, err := LoadConfig(""); err == nil {
		t.Error("expected error for non numeric port")
	}
}
