package repository

import (
	"context"
	"errors"

	"github.com/osse101/HackArena_Go/internal/logger"
)

// ErrTxClosed is returned by Commit or Rollback on a finished transaction.
var ErrTxClosed = errors.New("tx is closed")

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		// Rollback after Commit is expected
		if !errors.Is(err, ErrTxClosed) {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}
