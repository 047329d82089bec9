package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/lukeramljak/charsibot/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Source returns the trigger source recorded in the metadata, if any
func (e Event) Source() string {
	s, _ := e.GetMetadataValue(MetadataKeySource).(string)
	return s
}

// Blind box and stats event types
const (
	BlindBoxRedeemed    Type = "blindbox.redeemed"
	CollectionDisplayed Type = "blindbox.collection_displayed"
	CollectionReset     Type = "blindbox.collection_reset"
	StatModified        Type = "stats.modified"
)

// CollectionResetPayloadV1 is the typed payload for collection reset events
type CollectionResetPayloadV1 struct {
	UserID         string `json:"user_id"`
	CollectionType string `json:"collection_type"`
}

// StatModifiedPayloadV1 is the typed payload for stat modification events
type StatModifiedPayloadV1 struct {
	UserID   string            `json:"user_id"`
	Username string            `json:"username"`
	Column   domain.StatColumn `json:"column"`
	Delta    int               `json:"delta"`
	Value    int               `json:"value"`
}

// Type-safe event constructors

// NewBlindBoxRedeemedEvent creates a redemption event carrying the overlay payload
func NewBlindBoxRedeemedEvent(payload domain.BlindBoxRedemptionPayload, source string) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     BlindBoxRedeemed,
		Payload:  payload,
		Metadata: sourceMetadata(source),
	}
}

// NewCollectionDisplayedEvent creates a collection display event
func NewCollectionDisplayedEvent(payload domain.CollectionDisplayPayload, source string) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     CollectionDisplayed,
		Payload:  payload,
		Metadata: sourceMetadata(source),
	}
}

// NewCollectionResetEvent creates a collection reset event
func NewCollectionResetEvent(userID, collectionType, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CollectionReset,
		Payload: CollectionResetPayloadV1{
			UserID:         userID,
			CollectionType: collectionType,
		},
		Metadata: sourceMetadata(source),
	}
}

// NewStatModifiedEvent creates a stat modification event
func NewStatModifiedEvent(payload StatModifiedPayloadV1, source string) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     StatModified,
		Payload:  payload,
		Metadata: sourceMetadata(source),
	}
}

func sourceMetadata(source string) Metadata {
	if source == "" {
		return nil
	}
	return Metadata{MetadataKeySource: source}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event type. A failing or
// panicking handler does not stop the remaining handlers; their errors are
// collected and returned together.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := safeCall(ctx, handler, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

func safeCall(ctx context.Context, handler Handler, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf(ErrMsgHandlerPanicFormat, event.Type, r)
		}
	}()
	return handler(ctx, event)
}
