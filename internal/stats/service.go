package stats

import (
	"context"
	"fmt"
	"strings"

	"github.com/lukeramljak/charsibot/internal/domain"
	"github.com/lukeramljak/charsibot/internal/event"
	"github.com/lukeramljak/charsibot/internal/logger"
	"github.com/lukeramljak/charsibot/internal/utils"
)

// Service defines the interface for stats operations
type Service interface {
	GetStats(ctx context.Context, userID, username string) (*domain.UserStats, error)
	ModifyStat(ctx context.Context, userID, username string, column domain.StatColumn, delta int) (*domain.UserStats, error)
	Leaderboard(ctx context.Context) ([]domain.StatLeader, error)
	DrinkPotion(ctx context.Context, userID, username string) (*PotionResult, error)
}

// PotionResult is the outcome of drinking a potion
type PotionResult struct {
	Stat  domain.StatInfo   `json:"stat"`
	Delta int               `json:"delta"`
	Stats *domain.UserStats `json:"stats"`
}

// service implements the Service interface
type service struct {
	repo   Repository
	bus    event.Publisher
	rng    func(int) int  // Injectable for testing
	chance func() float64 // Injectable for testing
}

// NewService creates a new stats service
func NewService(repo Repository, bus event.Publisher) Service {
	return &service{
		repo:   repo,
		bus:    bus,
		rng:    utils.RandomIntN,
		chance: utils.RandomFloat,
	}
}

// GetStats returns the user's stats, creating them with defaults on first use
func (s *service) GetStats(ctx context.Context, userID, username string) (*domain.UserStats, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	return s.repo.GetStats(ctx, userID, username)
}

// ModifyStat applies a signed delta to one stat
func (s *service) ModifyStat(ctx context.Context, userID, username string, column domain.StatColumn, delta int) (*domain.UserStats, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	info, ok := domain.LookupStat(strings.ToLower(string(column)))
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStat, column)
	}

	stats, err := s.repo.ModifyStat(ctx, userID, username, info.Column, delta)
	if err != nil {
		log.Error(LogMsgModifyStatFailed, "user_id", userID, "stat", info.Column, "error", err)
		return nil, err
	}

	log.Info(LogMsgStatModified, "user_id", userID, "username", username, "stat", info.Column, "delta", delta)

	if s.bus != nil {
		evt := event.NewStatModifiedEvent(event.StatModifiedPayloadV1{
			UserID:   userID,
			Username: username,
			Column:   info.Column,
			Delta:    delta,
			Value:    stats.Value(info.Column),
		}, event.SourceFromContext(ctx))
		if err := s.bus.Publish(ctx, evt); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
	}

	return stats, nil
}

// Leaderboard returns the top user of every stat that has at least one user
func (s *service) Leaderboard(ctx context.Context) ([]domain.StatLeader, error) {
	leaders := make([]domain.StatLeader, 0, len(domain.StatList))
	for _, info := range domain.StatList {
		leader, err := s.repo.TopByStat(ctx, info.Column)
		if err != nil {
			logger.FromContext(ctx).Error(LogMsgLeaderboardFailed, "stat", info.Column, "error", err)
			return nil, err
		}
		if leader != nil {
			leaders = append(leaders, *leader)
		}
	}
	return leaders, nil
}

// DrinkPotion raises a random stat by one, or lowers it with PotionLossChance
func (s *service) DrinkPotion(ctx context.Context, userID, username string) (*PotionResult, error) {
	info := domain.StatList[s.rng(len(domain.StatList))]
	delta := 1
	if s.chance() < PotionLossChance {
		delta = -1
	}

	stats, err := s.ModifyStat(ctx, userID, username, info.Column, delta)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgPotionDrunk, "user_id", userID, "stat", info.Column, "delta", delta)
	return &PotionResult{Stat: info, Delta: delta, Stats: stats}, nil
}
