package sse

import (
	"context"
	"log/slog"

	"github.com/lukeramljak/charsibot/internal/domain"
	"github.com/lukeramljak/charsibot/internal/event"
)

// Broadcaster is the part of Hub the subscriber needs
type Broadcaster interface {
	Publish(eventType string, data interface{})
}

// Subscriber bridges the internal event bus to the overlay hub
type Subscriber struct {
	hub Broadcaster
	bus event.Bus
}

// NewSubscriber creates a new overlay subscriber
func NewSubscriber(hub Broadcaster, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all overlay-facing event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.BlindBoxRedeemed, s.handleRedemption)
	s.bus.Subscribe(event.CollectionDisplayed, s.handleCollectionDisplay)

	slog.Info(LogMsgSubscriberRegistered,
		"types", []string{
			string(event.BlindBoxRedeemed),
			string(event.CollectionDisplayed),
		})
}

func (s *Subscriber) handleRedemption(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.BlindBoxRedemptionPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.publish(payload)
	return nil
}

func (s *Subscriber) handleCollectionDisplay(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.CollectionDisplayPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
		return nil
	}
	s.publish(payload)
	return nil
}

func (s *Subscriber) publish(payload domain.OverlayEvent) {
	s.hub.Publish(payload.OverlayEventType(), payload)
}
