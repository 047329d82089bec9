package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotID_Index(t *testing.T) {
	i, ok := Reward1.Index()
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = Reward8.Index()
	assert.True(t, ok)
	assert.Equal(t, 7, i)

	_, ok = SlotID("reward9").Index()
	assert.False(t, ok)
	assert.False(t, SlotID("").Valid())
}

func TestSlotSet(t *testing.T) {
	var s SlotSet
	assert.Empty(t, s.Slots())
	assert.Equal(t, 0, s.Len())

	s = s.With(Reward3).With(Reward1).With(Reward3)
	assert.True(t, s.Has(Reward1))
	assert.True(t, s.Has(Reward3))
	assert.False(t, s.Has(Reward2))
	assert.Equal(t, []SlotID{Reward1, Reward3}, s.Slots(), "slots come back in canonical order")
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Full())

	assert.Equal(t, s, s.With("bogus"), "unknown slot keys are ignored")

	full := NewSlotSet(CanonicalSlots()...)
	assert.True(t, full.Full())
	assert.Equal(t, FullSlotSet, full)
	assert.Equal(t, SlotCount, full.Len())
}

func TestCanonicalSlotsIsACopy(t *testing.T) {
	a := CanonicalSlots()
	a[0] = "mutated"
	assert.Equal(t, Reward1, CanonicalSlots()[0])
}

func TestCollectionCatalog_Helpers(t *testing.T) {
	c := CollectionCatalog{
		CollectionType: "test",
		Slots: []RewardSlot{
			{Key: Reward1, Name: "A", Weight: 5},
			{Key: Reward2, Name: "B", Weight: 0},
			{Key: Reward3, Name: "C", Weight: 2},
		},
	}
	assert.Equal(t, 7, c.TotalWeight())

	s, ok := c.Slot(Reward3)
	require.True(t, ok)
	assert.Equal(t, "C", s.Name)

	_, ok = c.Slot(Reward8)
	assert.False(t, ok)
}

func TestRedemptionPayloadJSON(t *testing.T) {
	outcome := &RedemptionOutcome{
		UserID:         "u1",
		Username:       "Alice",
		CollectionType: "coobubu",
		SeriesName:     "Cooper Series Blind Box",
		Slot:           RewardSlot{Key: Reward3, Name: "Lemony", Weight: 12},
		IsNew:          true,
		OwnedSlots:     []SlotID{Reward3},
		TotalSlots:     SlotCount,
	}

	payload := NewRedemptionPayload(outcome)
	assert.Equal(t, OverlayEventBlindBoxRedemption, payload.OverlayEventType())

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "u1", decoded["userId"])
	assert.Equal(t, "Alice", decoded["username"])
	assert.Equal(t, "coobubu", decoded["collectionType"])
	assert.Equal(t, "Cooper Series Blind Box", decoded["seriesName"])
	assert.Equal(t, true, decoded["isNew"])
	assert.Equal(t, float64(1), decoded["collectionSize"])
	assert.Equal(t, []interface{}{"reward3"}, decoded["collection"])
	assert.Equal(t, map[string]interface{}{"key": "reward3", "name": "Lemony", "weight": float64(12)}, decoded["plushie"])
}

func TestCollectionDisplayPayload_EmptyCollection(t *testing.T) {
	payload := NewCollectionDisplayPayload(&CollectionView{UserID: "u1", Username: "Alice", CollectionType: "olliepop"})
	assert.Equal(t, OverlayEventCollectionDisplay, payload.OverlayEventType())

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":"u1","username":"Alice","collectionType":"olliepop","collection":[],"collectionSize":0}`, string(raw))
}

func TestLookupStat(t *testing.T) {
	s, ok := LookupStat("luck")
	require.True(t, ok)
	assert.Equal(t, "LUCK", s.Abbrev)

	_, ok = LookupStat("wisdom")
	assert.False(t, ok)

	stats := &UserStats{Strength: 1, Intelligence: 2, Charisma: 3, Luck: 4, Dexterity: 5, Penis: 6}
	for i, info := range StatList {
		assert.Equal(t, i+1, stats.Value(info.Column))
	}
}
