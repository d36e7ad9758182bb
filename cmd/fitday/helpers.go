package fitday

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/saadjs/fitday/internal/app"
	"github.com/saadjs/fitday/internal/calc"
	"github.com/saadjs/fitday/internal/config"
	"github.com/saadjs/fitday/internal/db"
	"github.com/saadjs/fitday/internal/kv"
	"github.com/saadjs/fitday/internal/logger"
	"github.com/saadjs/fitday/internal/service"
)

// session is what every data command runs against.
type session struct {
	cfg    config.Config
	store  *service.Store
	engine *calc.Engine
	log    *logger.Logger
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, err
	}
	if strings.TrimSpace(dbPath) != "" {
		cfg.DBPath = dbPath
	}
	if strings.TrimSpace(backend) != "" {
		cfg.Backend = strings.ToLower(strings.TrimSpace(backend))
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if cfg.Backend == config.BackendSQLite && cfg.DBPath == "" {
		path, err := app.DefaultDBPath()
		if err != nil {
			return config.Config{}, err
		}
		cfg.DBPath = path
	}
	return cfg, nil
}

func withStore(run func(*session) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	provider, closeFn, err := openProvider(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	log.Debug("store opened", "backend", cfg.Backend)
	return run(&session{
		cfg:    cfg,
		store:  service.NewStore(provider, clockwork.NewRealClock(), log),
		engine: calc.New(log),
		log:    log,
	})
}

func openProvider(cfg config.Config) (kv.Provider, func(), error) {
	switch cfg.Backend {
	case config.BackendRedis:
		r, err := kv.NewRedis(cfg.RedisAddr, cfg.RedisPrefix, cfg.RedisTimeout)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil
	case config.BackendSQLite:
		if err := app.EnsureDBDir(cfg.DBPath); err != nil {
			return nil, nil, err
		}
		sqldb, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := db.ApplyMigrations(sqldb); err != nil {
			_ = sqldb.Close()
			return nil, nil, err
		}
		return kv.NewSQLite(sqldb), func() { _ = sqldb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("invalid backend %q", cfg.Backend)
	}
}

// requireProfile fails closed when no profile is saved.
func requireProfile(s *session) error {
	if _, ok := s.store.GetProfile(); !ok {
		return fmt.Errorf("no profile saved; run `fitday profile set` first")
	}
	return nil
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

func out(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
