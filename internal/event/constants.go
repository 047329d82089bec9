package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeySource = "source"
)

// Trigger sources recorded in event metadata
const (
	SourceHTTP    = "http"
	SourceTwitch  = "twitch"
	SourceDiscord = "discord"
)

// Error and log message constants
const (
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
	ErrMsgHandlerPanicFormat = "handler for %s panicked: %v"
)
