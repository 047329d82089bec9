package twitch

import "time"

// PlatformTwitch labels chat command metrics
const PlatformTwitch = "twitch"

// Built-in chat commands. Blind box commands come from the catalog.
const (
	CmdStats       = "stats"
	CmdAddStat     = "addstat"
	CmdRemoveStat  = "rmstat"
	CmdLeaderboard = "leaderboard"
	CmdCollections = "collections"
)

// Channel point rewards handled outside the blind box catalog
const (
	RewardDrinkPotion = "Drink a Potion"
	RewardTemptDice   = "Tempt the Dice"
)

// Badges that grant moderator commands
const (
	BadgeModerator   = "moderator"
	BadgeBroadcaster = "broadcaster"
)

// Caches
const (
	DedupeCacheSize = 1024
	UserCacheSize   = 5000
	UserCacheTTL    = 24 * time.Hour
)

// Chat replies
const (
	MsgModeratorOnly     = "You must be a moderator to use this command"
	MsgUnknownUser       = "I haven't seen %s in chat yet"
	MsgUnknownStat       = "Unknown stat. Try one of: %s"
	MsgCollectionReset   = "%s's %s collection has been reset"
	MsgNoCompleted       = "Nobody has completed a collection yet"
	MsgSomethingWrong    = "Something went wrong, try again in a bit"
	CompletedSeparator   = " | "
	CompletedNamesJoiner = ", "
)

// Log messages
const (
	LogMsgCommandReceived      = "Chat command received"
	LogMsgCommandHandled       = "Chat command handled"
	LogMsgCommandFailed        = "Chat command failed"
	LogMsgModeratorOnly        = "Non-moderator attempted to use mod command"
	LogMsgRedemptionHandled    = "Redemption handled"
	LogMsgRedemptionIgnored    = "Redemption has no handler"
	LogMsgDuplicateMessage     = "Duplicate chat message ignored"
	LogMsgEnqueueFailed        = "Failed to queue chat command"
	LogMsgConnected            = "Connected to Twitch chat"
	LogMsgDisconnected         = "Disconnected from Twitch chat"
	LogMsgReplyLoggedOnly      = "Chat reply (no chat connection)"
	LogMsgInvalidModifyCommand = "Invalid modify stat command"
)
