package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lukeramljak/charsibot/internal/domain"
)

const (
	selectOwnedSlotsSQL = `
		SELECT owned_slots FROM user_collections
		WHERE user_id = ? AND collection_type = ?`

	insertCollectionSQL = `
		INSERT INTO user_collections (user_id, collection_type, username)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, collection_type) DO NOTHING`

	updateCollectionSQL = `
		UPDATE user_collections
		SET owned_slots = ?, username = ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ? AND collection_type = ?`

	resetCollectionSQL = `
		UPDATE user_collections
		SET owned_slots = 0, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ? AND collection_type = ?`

	// The literal matches the partial index predicate
	listCompletedSQL = `
		SELECT collection_type, username FROM user_collections
		WHERE owned_slots = 255
		ORDER BY collection_type, username`
)

// CollectionRepository implements repository.Collection on sqlite
type CollectionRepository struct {
	db *sql.DB
}

// GetOwnedSlots returns the owned slots in canonical order, empty when no record exists
func (r *CollectionRepository) GetOwnedSlots(ctx context.Context, userID, collectionType string) ([]domain.SlotID, error) {
	var owned int
	err := r.db.QueryRowContext(ctx, selectOwnedSlotsSQL, userID, collectionType).Scan(&owned)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.SlotID{}, nil
		}
		return nil, storageErr(ErrMsgFailedToGetOwnedSlots, err)
	}
	return domain.SlotSet(owned).Slots(), nil
}

// RecordOwnership marks slot as owned inside a BEGIN IMMEDIATE transaction
func (r *CollectionRepository) RecordOwnership(ctx context.Context, userID, username, collectionType string, slot domain.SlotID) (*domain.OwnershipResult, error) {
	if !slot.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSlot, slot)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageErr(ErrMsgFailedToBeginTransaction, err)
	}
	defer safeRollback(ctx, tx)

	if _, err := tx.ExecContext(ctx, insertCollectionSQL, userID, collectionType, username); err != nil {
		return nil, storageErr(ErrMsgFailedToCreateCollection, err)
	}

	var owned int
	if err := tx.QueryRowContext(ctx, selectOwnedSlotsSQL, userID, collectionType).Scan(&owned); err != nil {
		return nil, storageErr(ErrMsgFailedToReadCollection, err)
	}

	current := domain.SlotSet(owned)
	updated := current.With(slot)

	if _, err := tx.ExecContext(ctx, updateCollectionSQL, int(updated), username, userID, collectionType); err != nil {
		return nil, storageErr(ErrMsgFailedToUpdateCollection, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, storageErr(ErrMsgFailedToCommitTransaction, err)
	}

	return &domain.OwnershipResult{
		OwnedSlots:      updated.Slots(),
		WasAlreadyOwned: current.Has(slot),
	}, nil
}

// ResetCollection clears every owned slot. Missing records are left absent.
func (r *CollectionRepository) ResetCollection(ctx context.Context, userID, collectionType string) error {
	if _, err := r.db.ExecContext(ctx, resetCollectionSQL, userID, collectionType); err != nil {
		return storageErr(ErrMsgFailedToResetCollection, err)
	}
	return nil
}

// ListCompletedCollections groups the usernames of full collections by type
func (r *CollectionRepository) ListCompletedCollections(ctx context.Context) ([]domain.CompletedCollection, error) {
	rows, err := r.db.QueryContext(ctx, listCompletedSQL)
	if err != nil {
		return nil, storageErr(ErrMsgFailedToListCompleted, err)
	}
	defer rows.Close()

	var completed []domain.CompletedCollection
	for rows.Next() {
		var collectionType, username string
		if err := rows.Scan(&collectionType, &username); err != nil {
			return nil, storageErr(ErrMsgFailedToListCompleted, err)
		}
		if n := len(completed); n > 0 && completed[n-1].CollectionType == collectionType {
			completed[n-1].Usernames = append(completed[n-1].Usernames, username)
			continue
		}
		completed = append(completed, domain.CompletedCollection{
			CollectionType: collectionType,
			Usernames:      []string{username},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(ErrMsgFailedToListCompleted, err)
	}

	return completed, nil
}
