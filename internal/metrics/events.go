package metrics

import (
	"context"
	"strconv"

	"github.com/lukeramljak/charsibot/internal/domain"
	"github.com/lukeramljak/charsibot/internal/event"
	"github.com/lukeramljak/charsibot/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.BlindBoxRedeemed,
		event.CollectionDisplayed,
		event.CollectionReset,
		event.StatModified,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.BlindBoxRedeemed:
		p, err := event.DecodePayload[domain.BlindBoxRedemptionPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		BlindBoxRedemptions.WithLabelValues(p.CollectionType, strconv.FormatBool(p.IsNew)).Inc()

	case event.CollectionReset:
		p, err := event.DecodePayload[event.CollectionResetPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		CollectionResets.WithLabelValues(p.CollectionType).Inc()

	case event.StatModified:
		p, err := event.DecodePayload[event.StatModifiedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		StatChanges.WithLabelValues(string(p.Column)).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// SetCompletedCollections replaces the completed-collections gauge values
func SetCompletedCollections(collectionTypes []string, completed []domain.CompletedCollection) {
	counts := make(map[string]int, len(collectionTypes))
	for _, t := range collectionTypes {
		counts[t] = 0
	}
	for _, c := range completed {
		counts[c.CollectionType] = len(c.Usernames)
	}
	for t, n := range counts {
		CollectionsCompleted.WithLabelValues(t).Set(float64(n))
	}
}
