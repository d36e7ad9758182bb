package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Config struct {
	DBPath       string
	Backend      string
	RedisAddr    string
	RedisPrefix  string
	RedisTimeout time.Duration
	LogMode      string
	LogLevel     string
}

// Load reads settings from the environment. When envFile is non-empty and
// exists it is loaded first; variables already set in the process win.
func Load(envFile string) (Config, error) {
	if strings.TrimSpace(envFile) != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	cfg := Config{
		DBPath:       str("FITDAY_DB_PATH", ""),
		Backend:      strings.ToLower(str("FITDAY_BACKEND", BackendSQLite)),
		RedisAddr:    str("FITDAY_REDIS_ADDR", ""),
		RedisPrefix:  str("FITDAY_REDIS_PREFIX", "fitday:"),
		RedisTimeout: duration("FITDAY_REDIS_TIMEOUT", 3*time.Second),
		LogMode:      str("FITDAY_LOG_MODE", "dev"),
		LogLevel:     str("FITDAY_LOG_LEVEL", "warn"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite:
		return nil
	case BackendRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			return fmt.Errorf("FITDAY_REDIS_ADDR is required for the redis backend")
		}
		return nil
	default:
		return fmt.Errorf("invalid backend %q (use sqlite or redis)", c.Backend)
	}
}

func str(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func duration(name string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
