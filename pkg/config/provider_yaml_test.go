package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestYAMLProviderLoadsConfig(t *testing.T) {
	path := writeConfig(t, `
http:
  port: 9000
storage:
  sqlite:
    path: /tmp/results.db
workers:
  pool-size: 4
  timeout-seconds: 30
debug: true
`)

	cfg, err := NewYAMLProvider(path).LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.HTTP.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.HTTP.Port)
	}
	if cfg.Storage.SQLite == nil || cfg.Storage.SQLite.Path != "/tmp/results.db" {
		t.Errorf("sqlite storage = %+v", cfg.Storage.SQLite)
	}
	if cfg.Storage.Postgres != nil {
		t.Errorf("postgres storage should be unset, got %+v", cfg.Storage.Postgres)
	}
	if cfg.Workers.PoolSize != 4 || cfg.Workers.TimeoutSeconds != 30 {
		t.Errorf("workers = %+v", cfg.Workers)
	}
	if !cfg.Debug {
		t.Error("debug should be true")
	}
}

func TestYAMLProviderAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "{}\n")

	cfg, err := NewYAMLProvider(path).LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.HTTP.Port != DefaultPort {
		t.Errorf("port = %d, want default %d", cfg.HTTP.Port, DefaultPort)
	}
	if cfg.Workers.PoolSize != DefaultPoolSize {
		t.Errorf("pool size = %d, want default %d", cfg.Workers.PoolSize, DefaultPoolSize)
	}
	if cfg.Storage.SQLite == nil || cfg.Storage.SQLite.Path != DefaultSQLitePath {
		t.Errorf("sqlite storage = %+v, want default path", cfg.Storage.SQLite)
	}
}

func TestYAMLProviderMissingFile(t *testing.T) {
	if _, err := NewYAMLProvider("/nonexistent/config.yaml").LoadConfig(); err == nil {
		t.Error("expected error for missing file")
	}
}
