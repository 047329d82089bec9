package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lukeramljak/charsibot/internal/config"
	"github.com/lukeramljak/charsibot/internal/database"
	"github.com/lukeramljak/charsibot/internal/database/postgres"
	"github.com/lukeramljak/charsibot/internal/database/sqlite"
	"github.com/lukeramljak/charsibot/internal/repository"
)

// Storage holds the repositories of the configured backend.
// Pool is used for readiness probes and closed on shutdown.
type Storage struct {
	Driver      string
	Pool        database.Pool
	Collections repository.Collection
	Stats       repository.Stats
}

// OpenStorage connects to the backend named by cfg.DBDriver and applies
// its migrations.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var (
		s   *Storage
		err error
	)
	switch cfg.DBDriver {
	case config.DriverSQLite:
		s, err = openSQLite(ctx, cfg.SQLitePath)
	default:
		s, err = openPostgres(ctx, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
	}

	slog.Info(LogMsgStorageOpened, "driver", s.Driver)
	return s, nil
}

func openSQLite(ctx context.Context, path string) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDataDir, err)
		}
	}

	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return &Storage{
		Driver:      config.DriverSQLite,
		Pool:        store,
		Collections: store.Collections(),
		Stats:       store.Stats(),
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Storage, error) {
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, err
	}
	if err := database.MigratePostgres(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	return &Storage{
		Driver:      config.DriverPostgres,
		Pool:        pool,
		Collections: postgres.NewCollectionRepository(pool),
		Stats:       postgres.NewStatsRepository(pool),
	}, nil
}
