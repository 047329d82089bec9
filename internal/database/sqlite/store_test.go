package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeramljak/charsibot/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "charsibot.db"))
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgPathRequired)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charsibot.db")
	ctx := context.Background()

	store, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = store.Collections().RecordOwnership(ctx, "u1", "alice", "coobubu", domain.Reward4)
	require.NoError(t, err)
	store.Close()

	store, err = Open(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	slots, err := store.Collections().GetOwnedSlots(ctx, "u1", "coobubu")
	require.NoError(t, err)
	assert.Equal(t, []domain.SlotID{domain.Reward4}, slots)
	assert.NoError(t, store.Ping(ctx))
}

func TestCollectionRepository_RecordOwnership(t *testing.T) {
	repo := openTestStore(t).Collections()
	ctx := context.Background()

	res, err := repo.RecordOwnership(ctx, "u1", "alice", "coobubu", domain.Reward3)
	require.NoError(t, err)
	assert.False(t, res.WasAlreadyOwned)
	assert.Equal(t, []domain.SlotID{domain.Reward3}, res.OwnedSlots)

	res, err = repo.RecordOwnership(ctx, "u1", "alice", "coobubu", domain.Reward3)
	require.NoError(t, err)
	assert.True(t, res.WasAlreadyOwned)
	assert.Equal(t, []domain.SlotID{domain.Reward3}, res.OwnedSlots)

	res, err = repo.RecordOwnership(ctx, "u1", "alice", "coobubu", domain.Reward8)
	require.NoError(t, err)
	assert.Equal(t, []domain.SlotID{domain.Reward3, domain.Reward8}, res.OwnedSlots)

	_, err = repo.RecordOwnership(ctx, "u1", "alice", "coobubu", "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidSlot)

	empty, err := repo.GetOwnedSlots(ctx, "u1", "olliepop")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCollectionRepository_ResetAndComplete(t *testing.T) {
	repo := openTestStore(t).Collections()
	ctx := context.Background()

	for _, slot := range domain.CanonicalSlots() {
		_, err := repo.RecordOwnership(ctx, "u1", "alice", "coobubu", slot)
		require.NoError(t, err)
		_, err = repo.RecordOwnership(ctx, "u2", "bob", "coobubu", slot)
		require.NoError(t, err)
		_, err = repo.RecordOwnership(ctx, "u2", "bob", "christmas", slot)
		require.NoError(t, err)
	}

	completed, err := repo.ListCompletedCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.CompletedCollection{
		{CollectionType: "christmas", Usernames: []string{"bob"}},
		{CollectionType: "coobubu", Usernames: []string{"alice", "bob"}},
	}, completed)

	require.NoError(t, repo.ResetCollection(ctx, "u2", "coobubu"))
	require.NoError(t, repo.ResetCollection(ctx, "nobody", "coobubu"))

	completed, err = repo.ListCompletedCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.CompletedCollection{
		{CollectionType: "christmas", Usernames: []string{"bob"}},
		{CollectionType: "coobubu", Usernames: []string{"alice"}},
	}, completed)

	slots, err := repo.GetOwnedSlots(ctx, "u2", "coobubu")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestCollectionRepository_ConcurrentNoLostUpdate(t *testing.T) {
	repo := openTestStore(t).Collections()
	ctx := context.Background()

	slots := domain.CanonicalSlots()
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		newDraws int
	)
	for round := 0; round < 3; round++ {
		for _, slot := range slots {
			wg.Add(1)
			go func(s domain.SlotID) {
				defer wg.Done()
				res, err := repo.RecordOwnership(ctx, "racer", "racer", "olliepop", s)
				if !assert.NoError(t, err) {
					return
				}
				if !res.WasAlreadyOwned {
					mu.Lock()
					newDraws++
					mu.Unlock()
				}
			}(slot)
		}
	}
	wg.Wait()

	owned, err := repo.GetOwnedSlots(ctx, "racer", "olliepop")
	require.NoError(t, err)
	assert.Equal(t, slots, owned)
	assert.Equal(t, len(slots), newDraws)
}

func TestStatsRepository(t *testing.T) {
	repo := openTestStore(t).Stats()
	ctx := context.Background()

	leader, err := repo.TopByStat(ctx, domain.StatLuck)
	require.NoError(t, err)
	assert.Nil(t, leader)

	stats, err := repo.GetStats(ctx, "u1", "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.UserStats{
		UserID: "u1", Username: "alice",
		Strength: 3, Intelligence: 3, Charisma: 3, Luck: 3, Dexterity: 3, Penis: 3,
	}, *stats)

	stats, err = repo.ModifyStat(ctx, "u1", "Alice", domain.StatLuck, -5)
	require.NoError(t, err)
	assert.Equal(t, -2, stats.Luck)
	assert.Equal(t, "Alice", stats.Username)

	stats, err = repo.ModifyStat(ctx, "u2", "bob", domain.StatLuck, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Luck)

	_, err = repo.ModifyStat(ctx, "u2", "bob", "wisdom", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidStat)

	leader, err = repo.TopByStat(ctx, domain.StatLuck)
	require.NoError(t, err)
	require.NotNil(t, leader)
	assert.Equal(t, "bob", leader.Username)
	assert.Equal(t, 4, leader.Value)
}
