package repository

import (
	"context"

	"github.com/lukeramljak/charsibot/internal/domain"
)

// Collection defines the interface for blind box collection persistence.
// Implementations must make RecordOwnership atomic across processes.
type Collection interface {
	GetOwnedSlots(ctx context.Context, userID, collectionType string) ([]domain.SlotID, error)
	RecordOwnership(ctx context.Context, userID, username, collectionType string, slot domain.SlotID) (*domain.OwnershipResult, error)
	ResetCollection(ctx context.Context, userID, collectionType string) error
	ListCompletedCollections(ctx context.Context) ([]domain.CompletedCollection, error)
}
