package blindbox

import (
	"github.com/lukeramljak/charsibot/internal/domain"
	"github.com/lukeramljak/charsibot/internal/utils"
)

// Selector draws a reward slot with probability proportional to its weight
type Selector struct {
	rng func(int) int // Injectable for testing; returns [0, n)
}

// NewSelector creates a selector backed by math/rand/v2
func NewSelector() *Selector {
	return &Selector{rng: utils.RandomIntN}
}

// NewSelectorWithRNG creates a selector with a custom randomness source
func NewSelectorWithRNG(rng func(int) int) *Selector {
	return &Selector{rng: rng}
}

// Pick draws one slot key. Weight-0 slots are never chosen. Returns ""
// when the total weight is not positive.
func (s *Selector) Pick(slots []domain.RewardSlot) domain.SlotID {
	total := 0
	for _, slot := range slots {
		if slot.Weight > 0 {
			total += slot.Weight
		}
	}
	if total <= 0 {
		return ""
	}

	roll := s.rng(total)

	cumulative := 0
	for _, slot := range slots {
		if slot.Weight <= 0 {
			continue
		}
		cumulative += slot.Weight
		if roll < cumulative {
			return slot.Key
		}
	}

	// Unreachable while rng honours [0, total)
	return ""
}

// ExpandWeights repeats each key weight times. A uniform draw over the
// result has the same distribution as Pick.
func ExpandWeights(slots []domain.RewardSlot) []domain.SlotID {
	var expanded []domain.SlotID
	for _, slot := range slots {
		for i := 0; i < slot.Weight; i++ {
			expanded = append(expanded, slot.Key)
		}
	}
	return expanded
}
