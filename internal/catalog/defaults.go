package catalog

import "github.com/lukeramljak/charsibot/internal/domain"

// DefaultCatalogs returns the built-in blind box series
func DefaultCatalogs() []domain.CollectionCatalog {
	return []domain.CollectionCatalog{
		{
			CollectionType: CollectionCoobubu,
			DisplayTitle:   "Coobubus",
			RewardTitle:    "Cooper Series Blind Box",
			RedeemCommand:  "coobubu-redeem",
			DisplayCommand: "coobubu",
			ResetCommand:   "coobubu-reset",
			Slots: slots(12, 1,
				"Cutey", "Blueberry", "Lemony", "Bibi", "Pinky", "Minty", "Cherry", "Secret"),
		},
		{
			CollectionType: CollectionOlliepop,
			DisplayTitle:   "Olliepops",
			RewardTitle:    "Ollie Series Blind Box",
			RedeemCommand:  "olliepop-redeem",
			DisplayCommand: "olliepop",
			ResetCommand:   "olliepop-reset",
			Slots: slots(12, 1,
				"Berry", "Tangerine", "Bibble", "Kiwi", "Crunchy", "Caramel", "Grape", "Secret"),
		},
		{
			CollectionType: CollectionChristmas,
			DisplayTitle:   "Lil Helpers",
			RewardTitle:    "Christmas Series Blind Box",
			RedeemCommand:  "xmas-redeem",
			DisplayCommand: "xmas",
			ResetCommand:   "xmas-reset",
			Slots: slots(3, 1,
				"Snowy", "Piney", "Starry", "Socky", "Gingey", "Nicky", "Dancey", "Secret"),
		},
	}
}

// slots builds a catalog where the first seven rewards share a weight and
// the secret eighth reward is rarer.
func slots(common, secret int, names ...string) []domain.RewardSlot {
	keys := domain.CanonicalSlots()
	out := make([]domain.RewardSlot, len(names))
	for i, name := range names {
		w := common
		if keys[i] == domain.Reward8 {
			w = secret
		}
		out[i] = domain.RewardSlot{Key: keys[i], Name: name, Weight: w}
	}
	return out
}
