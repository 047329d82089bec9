package catalog

// ConfigVersion is the expected version string of catalog files
const ConfigVersion = "1.0"

// Built-in collection types
const (
	CollectionCoobubu   = "coobubu"
	CollectionOlliepop  = "olliepop"
	CollectionChristmas = "christmas"
)

// Validation failure reasons
const (
	ReasonNoCatalogs         = "no catalogs configured"
	ReasonEmptyType          = "collection type is empty"
	ReasonDuplicateType      = "duplicate collection type"
	ReasonSlotCount          = "expected %d slots, got %d"
	ReasonUnknownSlot        = "unknown slot key %q"
	ReasonDuplicateSlot      = "duplicate slot key %q"
	ReasonNegativeWeight     = "slot %q has negative weight %d"
	ReasonZeroTotalWeight    = "total weight must be positive"
	ReasonDuplicateTitle     = "reward title %q already used by %q"
	ReasonDuplicateCommand   = "command %q already used by %q"
	ReasonUnsupportedVersion = "unsupported config version %q"
	ReasonLoadFailed         = "failed to load catalog file"
)
