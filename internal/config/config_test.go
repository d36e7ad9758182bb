package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"FITDAY_DB_PATH", "FITDAY_BACKEND", "FITDAY_REDIS_ADDR", "FITDAY_REDIS_PREFIX", "FITDAY_REDIS_TIMEOUT", "FITDAY_LOG_MODE", "FITDAY_LOG_LEVEL"} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend != BackendSQLite || cfg.RedisPrefix != "fitday:" || cfg.RedisTimeout != 3*time.Second || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	for _, name := range []string{"FITDAY_BACKEND", "FITDAY_REDIS_ADDR", "FITDAY_REDIS_TIMEOUT"} {
		_ = os.Unsetenv(name)
	}
	path := filepath.Join(t.TempDir(), ".env")
	body := "FITDAY_BACKEND=redis\nFITDAY_REDIS_ADDR=localhost:6379\nFITDAY_REDIS_TIMEOUT=500ms\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend != BackendRedis || cfg.RedisAddr != "localhost:6379" || cfg.RedisTimeout != 500*time.Millisecond {
		t.Fatalf("unexpected config from env file: %+v", cfg)
	}
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := (Config{Backend: BackendRedis}).Validate(); err == nil {
		t.Fatalf("expected redis without address to fail")
	}
	if err := (Config{Backend: "mongo"}).Validate(); err == nil {
		t.Fatalf("expected unknown backend to fail")
	}
	if err := (Config{Backend: BackendSQLite}).Validate(); err != nil {
		t.Fatalf("expected sqlite to validate, got %v", err)
	}
}
