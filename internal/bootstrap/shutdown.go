package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/HackArena_Go/internal/event"
	"github.com/osse101/HackArena_Go/internal/repository"
	"github.com/osse101/HackArena_Go/internal/scheduler"
	"github.com/osse101/HackArena_Go/internal/server"
	"github.com/osse101/HackArena_Go/internal/sse"
	"github.com/osse101/HackArena_Go/internal/telemetry"
	"github.com/osse101/HackArena_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Stream             *sse.Hub
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	Pool               *worker.Pool
	ResilientPublisher *event.ResilientPublisher
	Store              repository.Store
	Tracing            telemetry.ShutdownFunc
}

// GracefulShutdown stops components in dependency order:
// 1. Feed stream hub, then the HTTP server (open streams end first)
// 2. Scheduler and worker pool (no new regen passes)
// 3. Event publisher (flush pending retries)
// 4. Storage, then tracing
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	if c.Stream != nil {
		c.Stream.Stop()
	}
	if c.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownWorkers)
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Store != nil {
		c.Store.Close()
	}

	if c.Tracing != nil {
		if err := c.Tracing(ctx); err != nil {
			slog.Error(LogMsgTelemetryShutdownFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
