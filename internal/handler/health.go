package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/lukeramljak/charsibot/internal/database"
)

// ReadinessTimeout bounds the database ping in /readyz
const ReadinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Clients *int   `json:"clients,omitempty"`
}

// ClientCounter reports how many overlay clients are connected
type ClientCounter interface {
	ClientCount() int
}

// HandleHealthz provides a basic liveness check. When clients is non-nil the
// number of connected overlay clients is included.
func HandleHealthz(clients ClientCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HealthResponse{Status: "ok"}
		if clients != nil {
			n := clients.ClientCount()
			response.Clients = &n
		}
		respondJSON(w, http.StatusOK, response)
	}
}

// HandleReadyz provides a readiness check that validates database connectivity
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			slog.Error(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "database connection failed",
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
