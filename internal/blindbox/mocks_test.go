package blindbox

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/lukeramljak/charsibot/internal/domain"
	"github.com/lukeramljak/charsibot/internal/event"
)

// MockRepository implements repository.Collection
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetOwnedSlots(ctx context.Context, userID, collectionType string) ([]domain.SlotID, error) {
	args := m.Called(ctx, userID, collectionType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SlotID), args.Error(1)
}

func (m *MockRepository) RecordOwnership(ctx context.Context, userID, username, collectionType string, slot domain.SlotID) (*domain.OwnershipResult, error) {
	args := m.Called(ctx, userID, username, collectionType, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OwnershipResult), args.Error(1)
}

func (m *MockRepository) ResetCollection(ctx context.Context, userID, collectionType string) error {
	args := m.Called(ctx, userID, collectionType)
	return args.Error(0)
}

func (m *MockRepository) ListCompletedCollections(ctx context.Context) ([]domain.CompletedCollection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompletedCollection), args.Error(1)
}

// recordingBus captures published events and can be told to fail
type recordingBus struct {
	mu     sync.Mutex
	events []event.Event
	err    error
}

func (b *recordingBus) Publish(_ context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	return b.err
}

func (b *recordingBus) Events() []event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]event.Event(nil), b.events...)
}
