package engine

import "time"

// Retry defaults
const (
	DefaultMaxAttempts = 8
	DefaultBaseDelay   = 75 * time.Millisecond
	DefaultMaxDelay    = 1200 * time.Millisecond
)

// TracerName is the instrumentation scope for engine spans
const TracerName = "github.com/osse101/HackArena_Go/internal/engine"

// Span attribute keys
const (
	AttrOperation = "tx.operation"
	AttrAttempts  = "tx.attempts"
)

// Log messages
const (
	LogMsgTxConflict     = "Transaction conflict, retrying"
	LogMsgTxExhausted    = "Transaction retries exhausted"
	LogMsgPublishFailed  = "Post-commit event publish failed"
	LogMsgTxCommitted    = "Transaction committed"
	ErrMsgBeginTxFailed  = "failed to begin transaction"
	ErrMsgCommitFailed   = "failed to commit transaction"
	ErrFmtExhausted      = "%w: %s gave up after %d attempts"
)
