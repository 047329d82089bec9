package domain

// StatColumn names a per-user counter in the user_stats table
type StatColumn string

const (
	StatStrength     StatColumn = "strength"
	StatIntelligence StatColumn = "intelligence"
	StatCharisma     StatColumn = "charisma"
	StatLuck         StatColumn = "luck"
	StatDexterity    StatColumn = "dexterity"
	StatPenis        StatColumn = "penis"
)

// DefaultStatValue is assigned to every counter on first touch
const DefaultStatValue = 3

// StatInfo describes how a stat is presented in chat
type StatInfo struct {
	Column  StatColumn
	Display string // e.g. "Strength"
	Abbrev  string // e.g. "STR"
	Emoji   string
}

// StatList is the ordered set of tracked stats
var StatList = []StatInfo{
	{Column: StatStrength, Display: "Strength", Abbrev: "STR", Emoji: "💪"},
	{Column: StatIntelligence, Display: "Intelligence", Abbrev: "INT", Emoji: "🧠"},
	{Column: StatCharisma, Display: "Charisma", Abbrev: "CHA", Emoji: "✨"},
	{Column: StatLuck, Display: "Luck", Abbrev: "LUCK", Emoji: "🍀"},
	{Column: StatDexterity, Display: "Dexterity", Abbrev: "DEX", Emoji: "🤸"},
	{Column: StatPenis, Display: "Penis", Abbrev: "PENIS", Emoji: "🍆"},
}

// LookupStat returns the stat info for a column name
func LookupStat(column string) (StatInfo, bool) {
	for _, s := range StatList {
		if string(s.Column) == column {
			return s, true
		}
	}
	return StatInfo{}, false
}

// UserStats holds one user's counters
type UserStats struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Strength     int    `json:"strength"`
	Intelligence int    `json:"intelligence"`
	Charisma     int    `json:"charisma"`
	Luck         int    `json:"luck"`
	Dexterity    int    `json:"dexterity"`
	Penis        int    `json:"penis"`
}

// Value returns the counter for a column
func (s *UserStats) Value(column StatColumn) int {
	switch column {
	case StatStrength:
		return s.Strength
	case StatIntelligence:
		return s.Intelligence
	case StatCharisma:
		return s.Charisma
	case StatLuck:
		return s.Luck
	case StatDexterity:
		return s.Dexterity
	case StatPenis:
		return s.Penis
	}
	return 0
}

// StatLeader is the top user for a single stat
type StatLeader struct {
	Column   StatColumn `json:"column"`
	Username string     `json:"username"`
	Value    int        `json:"value"`
}
