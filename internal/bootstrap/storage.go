package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/HackArena_Go/internal/config"
	"github.com/osse101/HackArena_Go/internal/database"
	"github.com/osse101/HackArena_Go/internal/database/memory"
	"github.com/osse101/HackArena_Go/internal/database/postgres"
	"github.com/osse101/HackArena_Go/internal/repository"
	"github.com/osse101/HackArena_Go/internal/seed"
)

// Store is a storage backend the server can also ping for readiness.
type Store interface {
	repository.Store
	Ping(ctx context.Context) error
}

// OpenStore opens the configured backend, applies migrations for postgres and
// seeds the starter catalog. The memory backend always starts seeded.
func OpenStore(ctx context.Context, cfg *config.Config) (Store, error) {
	var store Store
	switch cfg.StorageBackend {
	case config.BackendMemory:
		store = memory.NewStore()
	case config.BackendPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenPool, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsDone)
		store = postgres.NewStore(pool)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StorageBackend)
	}

	if cfg.SeedOnStart || cfg.StorageBackend == config.BackendMemory {
		if err := SeedStore(ctx, store); err != nil {
			store.Close()
			return nil, err
		}
	}

	slog.Info(LogMsgStorageReady, "backend", cfg.StorageBackend)
	return store, nil
}

// SeedStore applies the embedded starter catalog. Existing players are kept.
func SeedStore(ctx context.Context, store repository.Store) error {
	catalog, err := seed.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadSeed, err)
	}
	res, err := seed.Apply(ctx, store, catalog)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedApplySeed, err)
	}
	slog.Info(LogMsgCatalogSeeded,
		"version", catalog.Version,
		"shop_items", res.ShopItems,
		"task_templates", res.TaskTemplates,
		"questions", res.Questions,
		"players_created", res.PlayersCreated,
		"players_skipped", res.PlayersSkipped)
	return nil
}
