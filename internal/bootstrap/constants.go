package bootstrap

import "time"

// DirPermission is the permission for directories created at startup
const DirPermission = 0755

// ShutdownTimeout bounds the whole graceful shutdown sequence
const ShutdownTimeout = 15 * time.Second

// Job names registered with the scheduler
const (
	JobNameCompletedCollections = "completed_collections"
)

// Log messages for startup
const (
	LogMsgStorageOpened          = "Storage opened"
	LogMsgCatalogLoaded          = "Blind box catalog loaded"
	LogMsgEventSystemInitialized = "Event system initialized"
	LogMsgTwitchDisabled         = "Twitch chat disabled, redemptions still accepted over HTTP"
	LogMsgTwitchStarting         = "Twitch chat starting"
	LogMsgDiscordDisabled        = "Discord bot disabled"
	LogMsgDiscordStarting        = "Discord bot starting"
	LogMsgComponentFailed        = "Component stopped with error"
	LogMsgShutdownSignal         = "Shutdown signal received"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoppingScheduler    = "Stopping scheduler"
	LogMsgStoppingWorkers      = "Stopping worker pool"
	LogMsgStoppingHub          = "Stopping overlay hub"
	LogMsgClosingStorage       = "Closing storage"
	LogMsgServerStopped        = "Server stopped"
)

// Error messages
const (
	ErrMsgFailedOpenStorage     = "failed to open storage"
	ErrMsgFailedCreateDataDir   = "failed to create data directory"
	ErrMsgFailedMigrate         = "failed to migrate database"
	ErrMsgFailedLoadCatalog     = "failed to load blind box catalog"
	ErrMsgFailedCreateScheduler = "failed to create scheduler"
	ErrMsgFailedScheduleJob     = "failed to schedule job"
	ErrMsgFailedCreateTwitch    = "failed to create Twitch client"
	ErrMsgFailedCreateDiscord   = "failed to create Discord bot"
)
