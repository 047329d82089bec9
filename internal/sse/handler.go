package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Handler returns an HTTP handler streaming hub events as Server-Sent Events.
// Clients may pass ?types=a,b to receive only those event types.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := http.NewResponseController(w)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		eventTypes := parseTypes(r.URL.Query().Get("types"))

		client := hub.Subscribe(TransportSSE, eventTypes)
		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"transport", TransportSSE,
			"filters", eventTypes,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unsubscribe(client.ID)
			slog.Info(LogMsgClientDisconnected,
				"client_id", client.ID,
				"transport", TransportSSE,
				"total_clients", hub.ClientCount())
		}()

		send := func(event Event) bool {
			msg, err := FormatSSEMessage(event)
			if err != nil {
				slog.Error(LogMsgWriteError, "error", err, "event_type", event.Type)
				return true
			}
			_ = rc.SetWriteDeadline(time.Now().Add(WriteTimeout))
			if _, err := w.Write(msg); err != nil {
				slog.Warn(LogMsgWriteError, "client_id", client.ID, "error", err)
				return false
			}
			if err := rc.Flush(); err != nil {
				slog.Warn(LogMsgFlushError, "client_id", client.ID, "error", err)
				return false
			}
			return true
		}

		connected := NewEvent(EventTypeConnected, map[string]interface{}{
			"client_id": client.ID,
			"filters":   eventTypes,
		})
		if !send(connected) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// Hub is shutting down
					return
				}
				if !send(event) {
					return
				}

			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}

func parseTypes(param string) []string {
	if param == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(param, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
