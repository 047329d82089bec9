package bootstrap

import (
	"log/slog"

	"github.com/lukeramljak/charsibot/internal/event"
	"github.com/lukeramljak/charsibot/internal/metrics"
	"github.com/lukeramljak/charsibot/internal/sse"
)

// InitializeEventSystem creates the event bus and the overlay hub, then
// subscribes the overlay relay and the metrics collector to the bus.
// The hub is started; callers stop it on shutdown.
func InitializeEventSystem() (*event.MemoryBus, *sse.Hub) {
	bus := event.NewMemoryBus()

	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	metrics.NewEventMetricsCollector().Register(bus)

	slog.Info(LogMsgEventSystemInitialized)
	return bus, hub
}
