package sse

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Overlays run as browser sources on arbitrary local origins
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebSocketHandler returns an HTTP handler that streams hub events over a
// WebSocket. Every inbound message is answered with a pong frame.
func WebSocketHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn(LogMsgUpgradeFailed, "error", err, "remote_addr", r.RemoteAddr)
			return
		}
		defer conn.Close()

		eventTypes := parseTypes(r.URL.Query().Get("types"))
		client := hub.Subscribe(TransportWebSocket, eventTypes)
		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"transport", TransportWebSocket,
			"filters", eventTypes,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unsubscribe(client.ID)
			slog.Info(LogMsgClientDisconnected,
				"client_id", client.ID,
				"transport", TransportWebSocket,
				"total_clients", hub.ClientCount())
		}()

		pongs := make(chan struct{}, 1)
		readDone := make(chan struct{})
		go readPump(conn, client.ID, pongs, readDone)

		writePump(conn, client, pongs, readDone)
	}
}

// readPump drains inbound frames. gorilla allows one concurrent reader, so
// replies are handed to the writer through pongs.
func readPump(conn *websocket.Conn, clientID string, pongs chan<- struct{}, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(MaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(PongWait))
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug(LogMsgReadError, "client_id", clientID, "error", err)
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(PongWait))
		slog.Debug(LogMsgOverlayMessage, "client_id", clientID, "message", string(msg))

		select {
		case pongs <- struct{}{}:
		default:
			// a pong is already pending
		}
	}
}

// writePump is the only goroutine writing to conn
func writePump(conn *websocket.Conn, client *Client, pongs <-chan struct{}, readDone <-chan struct{}) {
	ticker := time.NewTicker(KeepaliveInterval)
	defer ticker.Stop()

	write := func(v interface{}) bool {
		data, err := json.Marshal(v)
		if err != nil {
			slog.Error(LogMsgWriteError, "client_id", client.ID, "error", err)
			return true
		}
		_ = conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			slog.Warn(LogMsgWriteError, "client_id", client.ID, "error", err)
			return false
		}
		return true
	}

	if !write(NewEvent(EventTypeConnected, map[string]interface{}{"client_id": client.ID})) {
		return
	}

	for {
		select {
		case <-readDone:
			return

		case event, ok := <-client.EventChannel:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(WriteTimeout))
				return
			}
			if !write(event) {
				return
			}

		case <-pongs:
			if !write(Event{Type: EventTypePong, Timestamp: time.Now().Unix()}) {
				return
			}

		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(WriteTimeout)); err != nil {
				return
			}
		}
	}
}
