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

const (
	selectOwnedSlotsSQL = `
		SELECT owned_slots FROM user_collections
		WHERE user_id = $1 AND collection_type = $2`

	insertCollectionSQL = `
		INSERT INTO user_collections (user_id, collection_type, username)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, collection_type) DO NOTHING`

	lockCollectionSQL = `
		SELECT owned_slots FROM user_collections
		WHERE user_id = $1 AND collection_type = $2
		FOR UPDATE`

	updateCollectionSQL = `
		UPDATE user_collections
		SET owned_slots = $3, username = $4, updated_at = NOW()
		WHERE user_id = $1 AND collection_type = $2`

	resetCollectionSQL = `
		UPDATE user_collections
		SET owned_slots = 0, updated_at = NOW()
		WHERE user_id = $1 AND collection_type = $2`

	// The literal matches the partial index predicate; a bind parameter would not
	listCompletedSQL = `
		SELECT collection_type, array_agg(username ORDER BY username)
		FROM user_collections
		WHERE owned_slots = 255
		GROUP BY collection_type
		ORDER BY collection_type`
)

// CollectionRepository implements repository.Collection for PostgreSQL
type CollectionRepository struct {
	pool *pgxpool.Pool
}

// NewCollectionRepository creates a new CollectionRepository
func NewCollectionRepository(pool *pgxpool.Pool) repository.Collection {
	return &CollectionRepository{pool: pool}
}

// GetOwnedSlots returns the owned slots in canonical order, empty when no record exists
func (r *CollectionRepository) GetOwnedSlots(ctx context.Context, userID, collectionType string) ([]domain.SlotID, error) {
	var owned int
	err := r.pool.QueryRow(ctx, selectOwnedSlotsSQL, userID, collectionType).Scan(&owned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.SlotID{}, nil
		}
		return nil, storageErr(ErrMsgFailedToGetOwnedSlots, err)
	}
	return domain.SlotSet(owned).Slots(), nil
}

// RecordOwnership marks slot as owned. The row lock serialises concurrent
// draws for the same user and collection so no bit is lost.
func (r *CollectionRepository) RecordOwnership(ctx context.Context, userID, username, collectionType string, slot domain.SlotID) (*domain.OwnershipResult, error) {
	if !slot.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSlot, slot)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, storageErr(ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx, insertCollectionSQL, userID, collectionType, username); err != nil {
		return nil, storageErr(ErrMsgFailedToCreateCollection, err)
	}

	var owned int
	if err := tx.QueryRow(ctx, lockCollectionSQL, userID, collectionType).Scan(&owned); err != nil {
		return nil, storageErr(ErrMsgFailedToLockCollection, err)
	}

	current := domain.SlotSet(owned)
	updated := current.With(slot)

	if _, err := tx.Exec(ctx, updateCollectionSQL, userID, collectionType, int(updated), username); err != nil {
		return nil, storageErr(ErrMsgFailedToUpdateCollection, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storageErr(ErrMsgFailedToCommitTransaction, err)
	}

	return &domain.OwnershipResult{
		OwnedSlots:      updated.Slots(),
		WasAlreadyOwned: current.Has(slot),
	}, nil
}

// ResetCollection clears every owned slot. Missing records are left absent.
func (r *CollectionRepository) ResetCollection(ctx context.Context, userID, collectionType string) error {
	if _, err := r.pool.Exec(ctx, resetCollectionSQL, userID, collectionType); err != nil {
		return storageErr(ErrMsgFailedToResetCollection, err)
	}
	return nil
}

// ListCompletedCollections groups the usernames of full collections by type
func (r *CollectionRepository) ListCompletedCollections(ctx context.Context) ([]domain.CompletedCollection, error) {
	rows, err := r.pool.Query(ctx, listCompletedSQL)
	if err != nil {
		return nil, storageErr(ErrMsgFailedToListCompleted, err)
	}
	defer rows.Close()

	var completed []domain.CompletedCollection
	for rows.Next() {
		var c domain.CompletedCollection
		if err := rows.Scan(&c.CollectionType, &c.Usernames); err != nil {
			return nil, storageErr(ErrMsgFailedToScanCompletedRow, err)
		}
		completed = append(completed, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(ErrMsgFailedToListCompleted, err)
	}

	return completed, nil
}
