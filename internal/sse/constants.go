package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50
)

// Connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// WriteTimeout is the timeout for writing to client connections
	WriteTimeout = 10 * time.Second

	// PongWait is how long a WebSocket client may stay silent before it is dropped
	PongWait = 2 * time.Minute

	// MaxMessageSize bounds inbound WebSocket frames from overlays
	MaxMessageSize = 64 * 1024
)

// Transports
const (
	TransportSSE       = "sse"
	TransportWebSocket = "websocket"
)

// Event types pushed to overlay clients
const (
	// EventTypeConnected greets a newly connected client
	EventTypeConnected = "connected"

	// EventTypePong answers any message sent by a WebSocket overlay
	EventTypePong = "pong"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected      = "Overlay client connected"
	LogMsgClientDisconnected   = "Overlay client disconnected"
	LogMsgEventBroadcast       = "Broadcasting overlay event"
	LogMsgBroadcastQueueFull   = "Overlay broadcast queue full, event dropped"
	LogMsgClientBufferFull     = "Overlay client buffer full, event dropped"
	LogMsgWriteError           = "Failed to write overlay event"
	LogMsgReadError            = "Failed to read overlay message"
	LogMsgFlushError           = "Failed to flush SSE response"
	LogMsgUpgradeFailed        = "WebSocket upgrade failed"
	LogMsgOverlayMessage       = "Message from overlay"
	LogMsgUnexpectedPayload    = "Unexpected event payload type"
	LogMsgSubscriberRegistered = "Overlay subscriber registered for event types"
)
