package bootstrap

import (
	"context"
	"log/slog"

	"github.com/cwilder/lifequest/internal/event"
	"github.com/cwilder/lifequest/internal/persistence"
	"github.com/cwilder/lifequest/internal/scheduler"
	"github.com/cwilder/lifequest/internal/server"
	"github.com/cwilder/lifequest/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Saver     *persistence.Saver
	Publisher *event.ResilientPublisher
	Storage   *Storage
}

// GracefulShutdown stops everything in dependency order: the HTTP server
// first so no new mutations arrive, then the scheduler and pool so no reset
// fires mid-shutdown, then the saver so the final snapshot lands, then the
// publisher and the storage handles. Errors are logged, never re-raised;
// shutdown always runs to the end.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.Pool != nil {
		components.Pool.Stop()
	}

	if components.Saver != nil {
		components.Saver.Close()
	}

	if components.Publisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		components.Publisher.Drain()
	}

	if components.Storage != nil {
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
