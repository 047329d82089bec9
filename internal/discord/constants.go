package discord

import "time"

// PlatformDiscord labels chat command metrics
const PlatformDiscord = "discord"

// CommandTimeout bounds the service calls behind one slash command
const CommandTimeout = 10 * time.Second

// Slash command names
const (
	CmdPing        = "ping"
	CmdCompleted   = "completed"
	CmdCollections = "collections"
	CmdLeaderboard = "leaderboard"
)

// Embed colors
const (
	ColorGold  = 0xf1c40f
	ColorTeal  = 0x1abc9c
	ColorBlue  = 0x3498db
	FooterText = "charsibot"
)

// Replies
const (
	MsgPong           = "Pong! 🏓"
	MsgNoCompleted    = "Nobody has completed a collection yet"
	MsgNoLeaders      = "No stats recorded yet"
	MsgCommandFailed  = "There was an error while executing this command"
	TitleCompleted    = "🧸 Completed Collections"
	TitleCollections  = "📦 Blind Box Collections"
	TitleLeaderboard  = "🏆 Leaderboard"
	SlotOddsFormat    = "%s (%.1f%%)"
	SlotNameSeparator = ", "
)

// Log messages
const (
	LogMsgBotRunning        = "Discord bot is now running"
	LogMsgBotReady          = "Discord bot is ready"
	LogMsgCheckingCommands  = "Checking Discord commands"
	LogMsgCommandsUnchanged = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated   = "Commands updated"
	LogMsgUnknownCommand    = "No handler for slash command"
	LogMsgCommandFailed     = "Slash command failed"
	LogMsgDeferFailed       = "Failed to send deferred response"
	LogMsgEditFailed        = "Failed to edit interaction response"
	LogMsgRespondFailed     = "Failed to respond to interaction"
)
