package repository

import (
	"context"

	"github.com/lukeramljak/charsibot/internal/domain"
)

// Stats defines the interface for user stat persistence
type Stats interface {
	// GetStats returns the user's counters, creating the row with defaults on first touch.
	GetStats(ctx context.Context, userID, username string) (*domain.UserStats, error)
	ModifyStat(ctx context.Context, userID, username string, column domain.StatColumn, delta int) (*domain.UserStats, error)
	// TopByStat returns the highest value for a stat. Nil when no rows exist.
	TopByStat(ctx context.Context, column domain.StatColumn) (*domain.StatLeader, error)
}
