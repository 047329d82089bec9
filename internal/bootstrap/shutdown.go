package bootstrap

import (
	"context"
	"log/slog"

	"github.com/lukeramljak/charsibot/internal/database"
	"github.com/lukeramljak/charsibot/internal/scheduler"
	"github.com/lukeramljak/charsibot/internal/server"
	"github.com/lukeramljak/charsibot/internal/sse"
	"github.com/lukeramljak/charsibot/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Hub       *sse.Hub
	Storage   database.Pool
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (stop enqueueing jobs)
// 3. Worker pool (finish queued chat commands and jobs)
// 4. Overlay hub (disconnect clients)
// 5. Storage
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	if c.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		c.Scheduler.Stop()
	}

	if c.Pool != nil {
		slog.Info(LogMsgStoppingWorkers)
		c.Pool.Stop()
	}

	if c.Hub != nil {
		slog.Info(LogMsgStoppingHub)
		c.Hub.Stop()
	}

	if c.Storage != nil {
		slog.Info(LogMsgClosingStorage)
		c.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
