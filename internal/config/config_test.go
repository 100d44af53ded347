package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.Addr() != ":8080" {
		t.Errorf("unexpected addr: %s", cfg.Server.Addr())
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.RequestTimeout != 30*time.Second {
		t.Errorf("unexpected request timeout: %s", cfg.Server.RequestTimeout)
	}
	if cfg.Site.Dir != "site" {
		t.Errorf("expected default site dir, got %s", cfg.Site.Dir)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Log.Level)
	}
}

func TestLoadPortPrecedence(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{"PORT": "9000"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("expected PORT fallback, got %s", cfg.Server.Port)
	}

	cfg, err = Load(WithEnvMap(map[string]string{"PORT": "9000", "LANGGATE_PORT": "9100"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != "9100" {
		t.Errorf("expected LANGGATE_PORT to win, got %s", cfg.Server.Port)
	}
}

func TestLoadFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# local\nexport LANGGATE_SITE_DIR=\"./public\"\nLANGGATE_READ_TIMEOUT=5s\nLOG_LEVEL=DEBUG\nbroken line\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	cfg, err := Load(
		WithEnvFile(path),
		WithoutSystemEnv(),
		WithEnvMap(map[string]string{"LANGGATE_READ_TIMEOUT": "7s"}),
	)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.Dir != "./public" {
		t.Errorf("expected site dir from .env, got %s", cfg.Site.Dir)
	}
	if cfg.Server.ReadTimeout != 7*time.Second {
		t.Errorf("expected env map to override .env, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected lowercased log level, got %s", cfg.Log.Level)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{"LANGGATE_IDLE_TIMEOUT": "soon"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.IdleTimeout != 60*time.Second {
		t.Errorf("expected default idle timeout, got %s", cfg.Server.IdleTimeout)
	}
}

func TestLoadValidation(t *testing.T) {
	_, err := Load(
		WithEnvMap(map[string]string{"LANGGATE_PORT": "localhost:80", "LANGGATE_WRITE_TIMEOUT": "-1s"}),
		WithoutSystemEnv(),
		WithEnvFile(""),
	)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := verr.Fields()
	if len(fields) != 2 || fields[0] != "Server.Port" || fields[1] != "Server.WriteTimeout" {
		t.Errorf("unexpected fields: %v", fields)
	}
}
