package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lukeramljak/charsibot/internal/domain"
	"github.com/lukeramljak/charsibot/internal/repository"
)

const statsColumns = `user_id, username, strength, intelligence, charisma, luck, dexterity, penis`

const touchStatsSQL = `
	INSERT INTO user_stats (user_id, username) VALUES ($1, $2)
	ON CONFLICT (user_id) DO UPDATE SET username = EXCLUDED.username, updated_at = NOW()
	RETURNING ` + statsColumns

// %[1]s is a column name checked against domain.StatList
const modifyStatSQLFormat = `
	INSERT INTO user_stats AS s (user_id, username, %[1]s) VALUES ($1, $2, $3)
	ON CONFLICT (user_id) DO UPDATE
	SET %[1]s = s.%[1]s + $4, username = EXCLUDED.username, updated_at = NOW()
	RETURNING ` + statsColumns

const topByStatSQLFormat = `
	SELECT username, %[1]s FROM user_stats
	ORDER BY %[1]s DESC, username ASC
	LIMIT 1`

// StatsRepository implements repository.Stats for PostgreSQL
type StatsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(pool *pgxpool.Pool) repository.Stats {
	return &StatsRepository{pool: pool}
}

// GetStats returns the user's stats, creating the row with default values on first touch
func (r *StatsRepository) GetStats(ctx context.Context, userID, username string) (*domain.UserStats, error) {
	stats, err := scanStats(r.pool.QueryRow(ctx, touchStatsSQL, userID, username))
	if err != nil {
		return nil, storageErr(ErrMsgFailedToGetStats, err)
	}
	return stats, nil
}

// ModifyStat adds delta to a single counter. Counters are unbounded in both directions.
func (r *StatsRepository) ModifyStat(ctx context.Context, userID, username string, column domain.StatColumn, delta int) (*domain.UserStats, error) {
	info, ok := domain.LookupStat(string(column))
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStat, column)
	}

	query := fmt.Sprintf(modifyStatSQLFormat, info.Column)
	stats, err := scanStats(r.pool.QueryRow(ctx, query, userID, username, domain.DefaultStatValue+delta, delta))
	if err != nil {
		return nil, storageErr(ErrMsgFailedToModifyStat, err)
	}
	return stats, nil
}

// TopByStat returns the user holding the highest value for column, or nil when there are no users
func (r *StatsRepository) TopByStat(ctx context.Context, column domain.StatColumn) (*domain.StatLeader, error) {
	info, ok := domain.LookupStat(string(column))
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStat, column)
	}

	leader := &domain.StatLeader{Column: info.Column}
	err := r.pool.QueryRow(ctx, fmt.Sprintf(topByStatSQLFormat, info.Column)).Scan(&leader.Username, &leader.Value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(ErrMsgFailedToGetTopStat, err)
	}
	return leader, nil
}

func scanStats(row pgx.Row) (*domain.UserStats, error) {
	var s domain.UserStats
	err := row.Scan(&s.UserID, &s.Username, &s.Strength, &s.Intelligence, &s.Charisma, &s.Luck, &s.Dexterity, &s.Penis)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
