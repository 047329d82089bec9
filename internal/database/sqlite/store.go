// Package sqlite is the embedded single-file backend for the collection and stats stores.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/lukeramljak/charsibot/internal/database"
	"github.com/lukeramljak/charsibot/internal/domain"
	"github.com/lukeramljak/charsibot/internal/logger"
	"github.com/lukeramljak/charsibot/internal/repository"
)

// Store owns the sqlite handle shared by the repositories
type Store struct {
	db *sql.DB
}

// Open opens the database file at path and applies the embedded migrations
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(ErrMsgPathRequired)
	}

	db, err := sql.Open(DriverName, filepath.Clean(path)+dsnOptions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPing, err)
	}
	if err := database.MigrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	slog.Default().Info(LogMsgOpened, "path", path)
	return &Store{db: db}, nil
}

// Ping reports whether the database file is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the handle
func (s *Store) Close() {
	if err := s.db.Close(); err != nil {
		slog.Default().Warn(LogMsgFailedToClose, "error", err)
	}
}

// Collections returns the collection repository backed by this store
func (s *Store) Collections() repository.Collection {
	return &CollectionRepository{db: s.db}
}

// Stats returns the stats repository backed by this store
func (s *Store) Stats() repository.Stats {
	return &StatsRepository{db: s.db}
}

func safeRollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Error(LogMsgFailedToRollback, "error", err)
	}
}

func storageErr(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, msg, err)
}
