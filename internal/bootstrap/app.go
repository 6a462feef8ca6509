package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/osse101/HackArena_Go/internal/catalog"
	"github.com/osse101/HackArena_Go/internal/config"
	"github.com/osse101/HackArena_Go/internal/discord"
	"github.com/osse101/HackArena_Go/internal/economy"
	"github.com/osse101/HackArena_Go/internal/engine"
	"github.com/osse101/HackArena_Go/internal/event"
	"github.com/osse101/HackArena_Go/internal/feed"
	"github.com/osse101/HackArena_Go/internal/hack"
	"github.com/osse101/HackArena_Go/internal/player"
	"github.com/osse101/HackArena_Go/internal/quest"
	"github.com/osse101/HackArena_Go/internal/quiz"
	"github.com/osse101/HackArena_Go/internal/scheduler"
	"github.com/osse101/HackArena_Go/internal/server"
	"github.com/osse101/HackArena_Go/internal/sse"
	"github.com/osse101/HackArena_Go/internal/telemetry"
	"github.com/osse101/HackArena_Go/internal/worker"
)

// ShutdownTimeout bounds graceful shutdown after a signal
const ShutdownTimeout = 15 * time.Second

// App is the fully wired process.
type App struct {
	Config    *config.Config
	Store     Store
	Bus       *event.MemoryBus
	Publisher *event.ResilientPublisher
	Cache     *catalog.Cache
	Stream    *sse.Hub
	Server    *server.Server
	Players   player.Service
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler

	shutdownTracing telemetry.ShutdownFunc
}

// New builds every component from cfg. Nothing is started yet.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, cfg.ServiceName, cfg.Version)
	if err != nil {
		slog.Warn(LogMsgTelemetryFailed, "endpoint", cfg.OTLPEndpoint, "error", err)
	}

	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	bus, publisher, err := InitializeEventSystem(cfg)
	if err != nil {
		store.Close()
		return nil, err
	}

	rnd, err := hackSampler(cfg.RNGSeed)
	if err != nil {
		store.Close()
		return nil, err
	}

	runner := engine.NewRunner(store, publisher, engine.Config{
		MaxAttempts: cfg.TxMaxAttempts,
		BaseDelay:   cfg.TxRetryBaseDelay,
		MaxDelay:    cfg.TxRetryMaxDelay,
	})
	cache := catalog.NewCache(store, catalog.Config{Size: cfg.CatalogCacheSize, TTL: cfg.CatalogCacheTTL})
	feedPub := feed.NewPublisher()

	hackSvc := hack.NewService(store, runner, feedPub, rnd)
	economySvc := economy.NewService(cache, store, runner, feedPub)
	questSvc := quest.NewService(cache, store, runner, feedPub)
	quizSvc := quiz.NewService(cache, runner)
	feedSvc := feed.NewService(store, runner)
	playerSvc := player.NewService(store, runner, publisher)

	stream := sse.NewHub()
	deps := EventHandlerDependencies{EventBus: bus, QuestService: questSvc, Stream: stream}
	if cfg.DiscordRelayEnabled() {
		session, err := discord.NewSession()
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDiscordRelay, err)
		}
		deps.DiscordExecutor = session
		deps.DiscordWebhookID = cfg.DiscordWebhookID
		deps.DiscordToken = cfg.DiscordWebhookToken
	}
	if err := RegisterEventHandlers(deps); err != nil {
		store.Close()
		return nil, err
	}

	srv := server.NewServer(server.Deps{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		Store:          store,
		Cache:          cache,
		Hack:           hackSvc,
		Economy:        economySvc,
		Quest:          questSvc,
		Quiz:           quizSvc,
		Feed:           feedSvc,
		Players:        playerSvc,
		Stream:         stream,
	})

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)

	return &App{
		Config:          cfg,
		Store:           store,
		Bus:             bus,
		Publisher:       publisher,
		Cache:           cache,
		Stream:          stream,
		Server:          srv,
		Players:         playerSvc,
		Pool:            pool,
		Scheduler:       scheduler.New(pool),
		shutdownTracing: shutdownTracing,
	}, nil
}

// hackSampler seeds the hack RNG. Zero draws a random seed.
func hackSampler(seed int64) (hack.Rand, error) {
	if seed == 0 {
		var err error
		if seed, err = hack.NewSeed(); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedSeedRNG, err)
		}
	}
	slog.Info(LogMsgHackSamplerReady, "seed", seed)
	return hack.NewLockedRand(seed), nil
}

// Run starts the workers and the HTTP server and blocks until ctx is
// cancelled or the server fails. It always shuts down before returning.
func (a *App) Run(ctx context.Context) error {
	a.Pool.Start()
	if a.Config.StaminaRegenAmount > 0 {
		a.Scheduler.Schedule(a.Config.StaminaRegenInterval, worker.NewStaminaRegenJob(a.Players, a.Config.StaminaRegenAmount))
		slog.Info(LogMsgStaminaRegenStarted,
			"amount", a.Config.StaminaRegenAmount,
			"interval", a.Config.StaminaRegenInterval)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Server.Start()
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info(LogMsgSignalReceived)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error(LogMsgServerFailed, "error", err)
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	a.Shutdown(shutdownCtx)

	return runErr
}

// Shutdown stops every component. See GracefulShutdown for the order.
func (a *App) Shutdown(ctx context.Context) {
	GracefulShutdown(ctx, ShutdownComponents{
		Stream:             a.Stream,
		Server:             a.Server,
		Scheduler:          a.Scheduler,
		Pool:               a.Pool,
		ResilientPublisher: a.Publisher,
		Store:              a.Store,
		Tracing:            a.shutdownTracing,
	})
}
