// Command hackctl is the operator CLI for a HackArena deployment. It talks to
// the configured storage backend directly, so the server does not need to be
// running.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/HackArena_Go/internal/bootstrap"
	"github.com/osse101/HackArena_Go/internal/config"
	"github.com/osse101/HackArena_Go/internal/engine"
	"github.com/osse101/HackArena_Go/internal/feed"
	"github.com/osse101/HackArena_Go/internal/player"
)

const commandTimeout = 30 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError("%v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hackctl",
		Short:        "HackArena operator CLI",
		SilenceUsage: true,
	}

	root.AddCommand(
		newWaitDBCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newPlayersCmd(),
		newRegenCmd(),
		newFeedCmd(),
	)
	return root
}

// env is what every data command needs: the store plus the services built on it.
type env struct {
	store   bootstrap.Store
	players player.Service
	feed    feed.Service
}

// openEnv loads config and opens the store without seeding.
func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg.SeedOnStart = false

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	runner := engine.NewRunner(store, nil, engine.Config{
		MaxAttempts: cfg.TxMaxAttempts,
		BaseDelay:   cfg.TxRetryBaseDelay,
		MaxDelay:    cfg.TxRetryMaxDelay,
	})
	return &env{
		store:   store,
		players: player.NewService(store, runner, nil),
		feed:    feed.NewService(store, runner),
	}, nil
}

func (e *env) Close() { e.store.Close() }

// withEnv runs fn against a freshly opened env under the command timeout.
func withEnv(cmd *cobra.Command, fn func(ctx context.Context, e *env) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()
	return fn(ctx, e)
}

func requirePositive(name string, v int) error {
	if v < 1 {
		return fmt.Errorf("--%s must be at least 1, got %d", name, v)
	}
	return nil
}
