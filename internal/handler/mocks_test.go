package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lukeramljak/charsibot/internal/domain"
	"github.com/lukeramljak/charsibot/internal/stats"
)

// MockBlindBoxService mocks the blindbox.Service interface
type MockBlindBoxService struct {
	mock.Mock
}

func (m *MockBlindBoxService) Redeem(ctx context.Context, req domain.RedemptionRequest) (*domain.RedemptionOutcome, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RedemptionOutcome), args.Error(1)
}

func (m *MockBlindBoxService) RedeemByRewardTitle(ctx context.Context, userID, username, rewardTitle string) (*domain.RedemptionOutcome, error) {
	args := m.Called(ctx, userID, username, rewardTitle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RedemptionOutcome), args.Error(1)
}

func (m *MockBlindBoxService) GetCollection(ctx context.Context, userID, username, collectionType string) (*domain.CollectionView, error) {
	args := m.Called(ctx, userID, username, collectionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollectionView), args.Error(1)
}

func (m *MockBlindBoxService) ShowCollection(ctx context.Context, req domain.RedemptionRequest) (*domain.CollectionView, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollectionView), args.Error(1)
}

func (m *MockBlindBoxService) ResetCollection(ctx context.Context, userID, collectionType string) error {
	args := m.Called(ctx, userID, collectionType)
	return args.Error(0)
}

func (m *MockBlindBoxService) CompletedCollections(ctx context.Context) ([]domain.CompletedCollection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompletedCollection), args.Error(1)
}

func (m *MockBlindBoxService) Catalogs() []domain.CollectionCatalog {
	args := m.Called()
	return args.Get(0).([]domain.CollectionCatalog)
}

// MockStatsService mocks the stats.Service interface
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStats(ctx context.Context, userID, username string) (*domain.UserStats, error) {
	args := m.Called(ctx, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

func (m *MockStatsService) ModifyStat(ctx context.Context, userID, username string, column domain.StatColumn, delta int) (*domain.UserStats, error) {
	args := m.Called(ctx, userID, username, column, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

func (m *MockStatsService) Leaderboard(ctx context.Context) ([]domain.StatLeader, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatLeader), args.Error(1)
}

func (m *MockStatsService) DrinkPotion(ctx context.Context, userID, username string) (*stats.PotionResult, error) {
	args := m.Called(ctx, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.PotionResult), args.Error(1)
}
