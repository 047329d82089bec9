package sse

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lukeramljak/charsibot/internal/metrics"
)

// Event is the frame delivered to overlay clients
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// NewEvent stamps a payload with a fresh ID and the current time
func NewEvent(eventType string, data interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Data:      data,
	}
}

// Client represents a connected overlay client
type Client struct {
	ID           string
	Transport    string
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all events, otherwise only specified types
}

func (c *Client) wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// Hub manages overlay client connections and event broadcasting.
// Delivery is best-effort: a client whose buffer is full misses the event,
// and nothing is replayed to clients that connect later.
type Hub struct {
	clients      map[string]*Client
	broadcast    chan Event
	clientBuffer int
	mu           sync.RWMutex
	closed       bool
	shutdown     chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
}

// NewHub creates a new Hub with default buffer sizes
func NewHub() *Hub {
	return NewHubWithBuffers(BroadcastBufferSize, ClientEventBuffer)
}

// NewHubWithBuffers creates a Hub with explicit broadcast and per-client buffer sizes
func NewHubWithBuffers(broadcastBuffer, clientBuffer int) *Hub {
	return &Hub{
		clients:      make(map[string]*Client),
		broadcast:    make(chan Event, broadcastBuffer),
		clientBuffer: clientBuffer,
		shutdown:     make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts down the hub and closes every client channel
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for id, client := range h.clients {
			close(client.EventChannel)
			metrics.OverlayClients.WithLabelValues(client.Transport).Dec()
			delete(h.clients, id)
		}
		h.closed = true
		h.mu.Unlock()
	})
}

// run is the main broadcast loop
func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case event := <-h.broadcast:
			h.deliver(event)
		case <-h.shutdown:
			return
		}
	}
}

// deliver fans one event out to every interested client without blocking
func (h *Hub) deliver(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		if !client.wants(event.Type) {
			continue
		}

		select {
		case client.EventChannel <- event:
		default:
			metrics.OverlayEventsDropped.WithLabelValues(event.Type).Inc()
			slog.Warn(LogMsgClientBufferFull,
				"client_id", client.ID,
				"transport", client.Transport,
				"event_type", event.Type,
				"event_id", event.ID)
		}
	}
}

// Subscribe registers a new client. An empty eventTypes list receives every event.
// Subscribing after Stop returns a client whose channel is already closed.
func (h *Hub) Subscribe(transport string, eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.NewString(),
		Transport:    transport,
		EventChannel: make(chan Event, h.clientBuffer),
	}

	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(client.EventChannel)
		return client
	}

	h.clients[client.ID] = client
	metrics.OverlayClients.WithLabelValues(transport).Inc()
	return client
}

// Unsubscribe removes a client and closes its channel. Unknown IDs are ignored.
func (h *Hub) Unsubscribe(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client, ok := h.clients[clientID]
	if !ok {
		return
	}
	close(client.EventChannel)
	delete(h.clients, clientID)
	metrics.OverlayClients.WithLabelValues(client.Transport).Dec()
}

// Publish queues an event for every interested client and never blocks.
// If the broadcast queue is full the event is dropped and counted.
func (h *Hub) Publish(eventType string, data interface{}) {
	event := NewEvent(eventType, data)

	select {
	case h.broadcast <- event:
		metrics.OverlayEventsSent.WithLabelValues(eventType).Inc()
		slog.Debug(LogMsgEventBroadcast, "event_type", eventType, "event_id", event.ID)
	default:
		metrics.OverlayEventsDropped.WithLabelValues(eventType).Inc()
		slog.Warn(LogMsgBroadcastQueueFull, "event_type", eventType, "event_id", event.ID)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage formats an event for transmission over SSE
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	// SSE format: "id: <id>\nevent: <type>\ndata: <json>\n\n"
	msg := "id: " + event.ID + "\n"
	msg += "event: " + event.Type + "\n"
	msg += "data: " + string(data) + "\n\n"

	return []byte(msg), nil
}
