package domain

import "math/bits"

// SlotID identifies one of the fixed reward positions in a collection
type SlotID string

// Canonical reward slots. Every catalog carries exactly these keys.
const (
	Reward1 SlotID = "reward1"
	Reward2 SlotID = "reward2"
	Reward3 SlotID = "reward3"
	Reward4 SlotID = "reward4"
	Reward5 SlotID = "reward5"
	Reward6 SlotID = "reward6"
	Reward7 SlotID = "reward7"
	Reward8 SlotID = "reward8"
)

// SlotCount is the number of reward slots in every collection
const SlotCount = 8

var canonicalSlots = [SlotCount]SlotID{
	Reward1, Reward2, Reward3, Reward4, Reward5, Reward6, Reward7, Reward8,
}

// CanonicalSlots returns the slot keys in canonical order
func CanonicalSlots() []SlotID {
	out := make([]SlotID, SlotCount)
	copy(out, canonicalSlots[:])
	return out
}

// Index returns the zero-based canonical position of the slot
func (s SlotID) Index() (int, bool) {
	for i, id := range canonicalSlots {
		if id == s {
			return i, true
		}
	}
	return -1, false
}

// Valid reports whether s is one of the canonical slot keys
func (s SlotID) Valid() bool {
	_, ok := s.Index()
	return ok
}

// SlotSet is an ownership bitset. Bit i is set when canonical slot i is owned.
type SlotSet uint8

// FullSlotSet has every canonical slot owned
const FullSlotSet SlotSet = 1<<SlotCount - 1

// NewSlotSet builds a set from slot keys, ignoring unknown keys
func NewSlotSet(ids ...SlotID) SlotSet {
	var s SlotSet
	for _, id := range ids {
		s = s.With(id)
	}
	return s
}

// Has reports whether the slot is owned
func (s SlotSet) Has(id SlotID) bool {
	i, ok := id.Index()
	return ok && s&(1<<i) != 0
}

// With returns the set with the slot owned
func (s SlotSet) With(id SlotID) SlotSet {
	i, ok := id.Index()
	if !ok {
		return s
	}
	return s | 1<<i
}

// Slots returns the owned slots in canonical order
func (s SlotSet) Slots() []SlotID {
	out := make([]SlotID, 0, s.Len())
	for i, id := range canonicalSlots {
		if s&(1<<i) != 0 {
			out = append(out, id)
		}
	}
	return out
}

// Len returns the number of owned slots
func (s SlotSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// Full reports whether every slot is owned
func (s SlotSet) Full() bool {
	return s == FullSlotSet
}

// RewardSlot is one entry of a collection catalog
type RewardSlot struct {
	Key    SlotID `json:"key"`
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// CollectionCatalog describes one blind box series
type CollectionCatalog struct {
	CollectionType string       `json:"collection_type"`
	DisplayTitle   string       `json:"display_title"`
	RewardTitle    string       `json:"reward_title"`    // Channel point reward name
	RedeemCommand  string       `json:"redeem_command"`  // Moderator-only chat command
	DisplayCommand string       `json:"display_command"` // Shows the caller's collection
	ResetCommand   string       `json:"reset_command"`   // Moderator-only chat command
	Slots          []RewardSlot `json:"slots"`
}

// Slot returns the catalog entry for a slot key
func (c CollectionCatalog) Slot(id SlotID) (RewardSlot, bool) {
	for _, s := range c.Slots {
		if s.Key == id {
			return s, true
		}
	}
	return RewardSlot{}, false
}

// SeriesName is the series label shown on the overlay
func (c CollectionCatalog) SeriesName() string {
	if c.RewardTitle != "" {
		return c.RewardTitle
	}
	return c.DisplayTitle
}

// TotalWeight returns the sum of all slot weights
func (c CollectionCatalog) TotalWeight() int {
	total := 0
	for _, s := range c.Slots {
		total += s.Weight
	}
	return total
}

// OwnershipResult is returned by the collection store after recording a draw
type OwnershipResult struct {
	OwnedSlots      []SlotID `json:"owned_slots"`
	WasAlreadyOwned bool     `json:"was_already_owned"`
}

// CompletedCollection groups the users that own every slot of a collection
type CompletedCollection struct {
	CollectionType string   `json:"collection_type"`
	Usernames      []string `json:"usernames"`
}

// RedemptionRequest is a trigger-agnostic request to open one blind box
type RedemptionRequest struct {
	UserID         string `json:"user_id" validate:"required,max=100"`
	Username       string `json:"username" validate:"required,max=100"`
	CollectionType string `json:"collection_type" validate:"required,max=50"`
}

// RedemptionOutcome describes the result of a single blind box redemption
type RedemptionOutcome struct {
	UserID         string     `json:"user_id"`
	Username       string     `json:"username"`
	CollectionType string     `json:"collection_type"`
	SeriesName     string     `json:"series_name"`
	Slot           RewardSlot `json:"slot"`
	IsNew          bool       `json:"is_new"`
	OwnedSlots     []SlotID   `json:"owned_slots"`
	TotalSlots     int        `json:"total_slots"`
}

// CollectionView is a user's current progress in one collection
type CollectionView struct {
	UserID         string   `json:"user_id"`
	Username       string   `json:"username"`
	CollectionType string   `json:"collection_type"`
	OwnedSlots     []SlotID `json:"owned_slots"`
	TotalSlots     int      `json:"total_slots"`
}
