package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lukeramljak/charsibot/internal/domain"
)

const statsColumns = `user_id, username, strength, intelligence, charisma, luck, dexterity, penis`

const touchStatsSQL = `
	INSERT INTO user_stats (user_id, username) VALUES (?, ?)
	ON CONFLICT (user_id) DO UPDATE SET username = excluded.username, updated_at = CURRENT_TIMESTAMP
	RETURNING ` + statsColumns

// %[1]s is a column name checked against domain.StatList
const modifyStatSQLFormat = `
	INSERT INTO user_stats (user_id, username, %[1]s) VALUES (?, ?, ?)
	ON CONFLICT (user_id) DO UPDATE
	SET %[1]s = %[1]s + ?, username = excluded.username, updated_at = CURRENT_TIMESTAMP
	RETURNING ` + statsColumns

const topByStatSQLFormat = `
	SELECT username, %[1]s FROM user_stats
	ORDER BY %[1]s DESC, username ASC
	LIMIT 1`

// StatsRepository implements repository.Stats on sqlite
type StatsRepository struct {
	db *sql.DB
}

// GetStats returns the user's stats, creating the row with default values on first touch
func (r *StatsRepository) GetStats(ctx context.Context, userID, username string) (*domain.UserStats, error) {
	stats, err := scanStats(r.db.QueryRowContext(ctx, touchStatsSQL, userID, username))
	if err != nil {
		return nil, storageErr(ErrMsgFailedToGetStats, err)
	}
	return stats, nil
}

// ModifyStat adds delta to a single counter
func (r *StatsRepository) ModifyStat(ctx context.Context, userID, username string, column domain.StatColumn, delta int) (*domain.UserStats, error) {
	info, ok := domain.LookupStat(string(column))
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStat, column)
	}

	query := fmt.Sprintf(modifyStatSQLFormat, info.Column)
	stats, err := scanStats(r.db.QueryRowContext(ctx, query, userID, username, domain.DefaultStatValue+delta, delta))
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
	err := r.db.QueryRowContext(ctx, fmt.Sprintf(topByStatSQLFormat, info.Column)).Scan(&leader.Username, &leader.Value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr(ErrMsgFailedToGetTopStat, err)
	}
	return leader, nil
}

func scanStats(row *sql.Row) (*domain.UserStats, error) {
	var s domain.UserStats
	err := row.Scan(&s.UserID, &s.Username, &s.Strength, &s.Intelligence, &s.Charisma, &s.Luck, &s.Dexterity, &s.Penis)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
