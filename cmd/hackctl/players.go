package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "List players",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(ctx context.Context, e *env) error {
				players, err := e.players.List(ctx)
				if err != nil {
					return err
				}
				printPlayers(cmd.OutOrStdout(), players)
				return nil
			})
		},
	}
	cmd.AddCommand(newPlayersDeleteCmd())
	return cmd
}

func newPlayersDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <player-id>",
		Short: "Delete a player with their inventory and tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !yes {
				ok, err := confirm(fmt.Sprintf("Delete player %s?", id))
				if err != nil {
					return err
				}
				if !ok {
					printWarn("Aborted")
					return nil
				}
			}
			return withEnv(cmd, func(ctx context.Context, e *env) error {
				if err := e.players.Delete(ctx, id); err != nil {
					return err
				}
				printSuccess("Deleted player %s", id)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
