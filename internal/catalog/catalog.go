package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lukeramljak/charsibot/internal/domain"
	"github.com/lukeramljak/charsibot/internal/utils"
)

// CommandAction is what a chat command does to a collection
type CommandAction int

const (
	ActionRedeem CommandAction = iota + 1
	ActionDisplay
	ActionReset
)

// ModeratorOnly reports whether only moderators may trigger the action
func (a CommandAction) ModeratorOnly() bool {
	return a == ActionRedeem || a == ActionReset
}

func (a CommandAction) String() string {
	switch a {
	case ActionRedeem:
		return "redeem"
	case ActionDisplay:
		return "display"
	case ActionReset:
		return "reset"
	}
	return "unknown"
}

// CommandRoute maps a chat command to a collection and action
type CommandRoute struct {
	CollectionType string
	Action         CommandAction
}

// File is the on-disk catalog format
type File struct {
	Version     string                     `json:"version"`
	Collections []domain.CollectionCatalog `json:"collections"`
}

// Catalog is the immutable table of blind box series. Build it once with
// New or Load and share it by reference.
type Catalog struct {
	byType   map[string]domain.CollectionCatalog
	byTitle  map[string]string
	commands map[string]CommandRoute
	order    []string
}

// New validates the catalogs and freezes them into a Catalog.
// Slots are stored in canonical order regardless of input order.
func New(catalogs []domain.CollectionCatalog) (*Catalog, error) {
	if len(catalogs) == 0 {
		return nil, configErr("", ReasonNoCatalogs)
	}

	c := &Catalog{
		byType:   make(map[string]domain.CollectionCatalog, len(catalogs)),
		byTitle:  make(map[string]string),
		commands: make(map[string]CommandRoute),
	}

	for _, in := range catalogs {
		cat := in
		cat.CollectionType = strings.TrimSpace(cat.CollectionType)
		if cat.CollectionType == "" {
			return nil, configErr("", ReasonEmptyType)
		}
		if _, dup := c.byType[cat.CollectionType]; dup {
			return nil, configErr(cat.CollectionType, ReasonDuplicateType)
		}

		slots, err := validateSlots(cat.CollectionType, cat.Slots)
		if err != nil {
			return nil, err
		}
		cat.Slots = slots

		if cat.RewardTitle != "" {
			if owner, dup := c.byTitle[cat.RewardTitle]; dup {
				return nil, configErr(cat.CollectionType, ReasonDuplicateTitle, cat.RewardTitle, owner)
			}
			c.byTitle[cat.RewardTitle] = cat.CollectionType
		}

		routes := []struct {
			cmd    *string
			action CommandAction
		}{
			{&cat.RedeemCommand, ActionRedeem},
			{&cat.DisplayCommand, ActionDisplay},
			{&cat.ResetCommand, ActionReset},
		}
		for _, r := range routes {
			*r.cmd = NormalizeCommand(*r.cmd)
			if *r.cmd == "" {
				continue
			}
			if owner, dup := c.commands[*r.cmd]; dup {
				return nil, configErr(cat.CollectionType, ReasonDuplicateCommand, *r.cmd, owner.CollectionType)
			}
			c.commands[*r.cmd] = CommandRoute{CollectionType: cat.CollectionType, Action: r.action}
		}

		c.byType[cat.CollectionType] = cat
		c.order = append(c.order, cat.CollectionType)
	}

	return c, nil
}

func validateSlots(collectionType string, in []domain.RewardSlot) ([]domain.RewardSlot, error) {
	if len(in) != domain.SlotCount {
		return nil, configErr(collectionType, ReasonSlotCount, domain.SlotCount, len(in))
	}

	ordered := make([]domain.RewardSlot, domain.SlotCount)
	seen := make([]bool, domain.SlotCount)
	total := 0
	for _, s := range in {
		idx, ok := s.Key.Index()
		if !ok {
			return nil, configErr(collectionType, ReasonUnknownSlot, s.Key)
		}
		if seen[idx] {
			return nil, configErr(collectionType, ReasonDuplicateSlot, s.Key)
		}
		if s.Weight < 0 {
			return nil, configErr(collectionType, ReasonNegativeWeight, s.Key, s.Weight)
		}
		seen[idx] = true
		ordered[idx] = s
		total += s.Weight
	}
	if total <= 0 {
		return nil, configErr(collectionType, ReasonZeroTotalWeight)
	}
	return ordered, nil
}

// Default returns the built-in catalog table
func Default() *Catalog {
	c, err := New(DefaultCatalogs())
	if err != nil {
		panic(fmt.Sprintf("built-in catalogs are invalid: %v", err))
	}
	return c
}

// Load reads a catalog file. An empty path yields the built-in table.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	var f File
	if err := utils.LoadJSON(path, &f); err != nil {
		return nil, &ConfigError{Reason: ReasonLoadFailed, Err: err}
	}
	if f.Version != "" && f.Version != ConfigVersion {
		return nil, configErr("", ReasonUnsupportedVersion, f.Version)
	}

	return New(f.Collections)
}

// Get returns the catalog for a collection type
func (c *Catalog) Get(collectionType string) (domain.CollectionCatalog, error) {
	cat, ok := c.byType[collectionType]
	if !ok {
		return domain.CollectionCatalog{}, fmt.Errorf("%w: %q", domain.ErrUnknownCollectionType, collectionType)
	}
	return clone(cat), nil
}

// ByRewardTitle resolves a channel point reward title to its catalog
func (c *Catalog) ByRewardTitle(title string) (domain.CollectionCatalog, bool) {
	t, ok := c.byTitle[title]
	if !ok {
		return domain.CollectionCatalog{}, false
	}
	return clone(c.byType[t]), true
}

// ResolveCommand resolves a chat command (with or without "!") to a route
func (c *Catalog) ResolveCommand(command string) (CommandRoute, bool) {
	r, ok := c.commands[NormalizeCommand(command)]
	return r, ok
}

// All returns every catalog in configuration order
func (c *Catalog) All() []domain.CollectionCatalog {
	out := make([]domain.CollectionCatalog, 0, len(c.order))
	for _, t := range c.order {
		out = append(out, clone(c.byType[t]))
	}
	return out
}

// Types returns the configured collection types in configuration order
func (c *Catalog) Types() []string {
	return slices.Clone(c.order)
}

// NormalizeCommand lowercases a command and strips the leading "!"
func NormalizeCommand(cmd string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(cmd), "!"))
}

func clone(c domain.CollectionCatalog) domain.CollectionCatalog {
	c.Slots = slices.Clone(c.Slots)
	return c
}
