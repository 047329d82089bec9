package stats

// PotionLossChance is the probability that a potion lowers the stat instead of raising it
const PotionLossChance = 0.05

// Chat message formats
const (
	FormatStatsMessage     = "%s's stats: %s"
	FormatPotionMessage    = "A shifty looking merchant hands %[1]s a glittering potion. Without hesitation, they sink the whole drink. %[1]s %[2]s %[3]s"
	FormatTemptDiceMessage = "%s has rolled with initiative."
	LeaderboardPrefix      = "Stats leaderboard: "
	StatSeparator          = " | "
	PotionOutcomeGained    = "gained"
	PotionOutcomeLost      = "lost"
)

// Parse errors shown to moderators in chat
const (
	ErrMsgModifyStatFormat = "Expected format: !addstat/!rmstat @user stat amount"
	ErrMsgNoMention        = "No user mention found"
	ErrMsgInvalidNumber    = "Invalid number"
	ErrMsgUnknownStat      = "Unknown stat"
	ErrMsgUserIDRequired   = "user id is required"
)

// Log messages
const (
	LogMsgStatModified      = "Stat modified"
	LogMsgPotionDrunk       = "Potion drunk"
	LogMsgModifyStatFailed  = "Failed to modify stat"
	LogMsgPublishFailed     = "Failed to publish stat event"
	LogMsgLeaderboardFailed = "Failed to load stat leader"
)
