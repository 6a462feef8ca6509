package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/HackArena_Go/internal/bootstrap"
	"github.com/osse101/HackArena_Go/internal/config"
	"github.com/osse101/HackArena_Go/internal/database"
)

func newWaitDBCmd() *cobra.Command {
	var (
		attempts int
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "wait-db",
		Short: "Block until PostgreSQL accepts connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePositive("attempts", attempts); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			printHeader("Waiting for database")

			for i := 1; i <= attempts; i++ {
				pool, err := database.NewPool(cfg.GetDBConnString(), 1, time.Minute, time.Minute)
				if err == nil {
					pool.Close()
					printSuccess("Database is ready")
					return nil
				}
				printWarn("Database not ready (%d/%d): %v", i, attempts, err)

				select {
				case <-cmd.Context().Done():
					return cmd.Context().Err()
				case <-time.After(interval):
				}
			}
			return fmt.Errorf("database not ready after %d attempts", attempts)
		},
	}
	cmd.Flags().IntVar(&attempts, "attempts", 30, "connection attempts before giving up")
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "delay between attempts")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending PostgreSQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.StorageBackend != config.BackendPostgres {
				printWarn("STORAGE_BACKEND=%s has no migrations", cfg.StorageBackend)
				return nil
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()
			pool, err := database.NewPool(cfg.GetDBConnString(), 1, time.Minute, time.Minute)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := database.Migrate(ctx, pool); err != nil {
				return err
			}
			printSuccess("Migrations applied")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the starter catalog and demo players",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(ctx context.Context, e *env) error {
				if err := bootstrap.SeedStore(ctx, e.store); err != nil {
					return err
				}
				printSuccess("Starter catalog seeded")
				return nil
			})
		},
	}
}

func newRegenCmd() *cobra.Command {
	var amount int
	cmd := &cobra.Command{
		Use:   "regen",
		Short: "Run one stamina regeneration pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePositive("amount", amount); err != nil {
				return err
			}
			return withEnv(cmd, func(ctx context.Context, e *env) error {
				n, err := e.players.RegenerateStamina(ctx, amount)
				if err != nil {
					return err
				}
				printSuccess("Regenerated %d stamina for %d players", amount, n)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&amount, "amount", 5, "stamina added to each player, capped at their max")
	return cmd
}

func newFeedCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the most recent feed entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(ctx context.Context, e *env) error {
				items, err := e.feed.Recent(ctx, limit)
				if err != nil {
					return err
				}
				printFeed(cmd.OutOrStdout(), items)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of entries")
	return cmd
}
