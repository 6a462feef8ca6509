package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/event"
	"github.com/osse101/HackArena_Go/internal/logger"
	"github.com/osse101/HackArena_Go/internal/metrics"
	"github.com/osse101/HackArena_Go/internal/repository"
)

// TxBeginner opens storage transactions
type TxBeginner interface {
	BeginTx(ctx context.Context) (repository.Tx, error)
}

// Config bounds the conflict retry loop
type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultConfig returns the production retry budget
func DefaultConfig() Config {
	return Config{
		MaxAttempts: DefaultMaxAttempts,
		BaseDelay:   DefaultBaseDelay,
		MaxDelay:    DefaultMaxDelay,
	}
}

// Func is the body of one transaction attempt. It may run several times, so
// it must derive every decision from what it reads through u.
type Func func(ctx context.Context, u *Unit) error

// Runner executes a Func as an all-or-nothing unit, retrying on write conflicts.
type Runner struct {
	db     TxBeginner
	events event.Publisher
	cfg    Config
	tracer trace.Tracer
	seq    *sequencer
}

// NewRunner creates a Runner. events may be nil.
func NewRunner(db TxBeginner, events event.Publisher, cfg Config) *Runner {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	if cfg.MaxDelay < cfg.BaseDelay {
		cfg.MaxDelay = cfg.BaseDelay
	}
	return &Runner{
		db:     db,
		events: events,
		cfg:    cfg,
		tracer: otel.Tracer(TracerName),
		seq:    newSequencer(),
	}
}

// Run executes fn inside a transaction named op.
//
// A domain.ErrTxConflict from fn or from commit aborts the attempt and
// schedules another one after an exponential backoff. Any other error aborts
// without retry. Events emitted by the successful attempt are published in
// emission order once the commit has returned, and events of different runs
// are published in the order their commits happened.
func (r *Runner) Run(ctx context.Context, op string, fn Func) error {
	ctx, span := r.tracer.Start(ctx, "tx."+op, trace.WithAttributes(attribute.String(AttrOperation, op)))
	defer span.End()

	start := time.Now()
	defer func() { metrics.TxDuration.WithLabelValues(op).Observe(time.Since(start).Seconds()) }()

	log := logger.FromContext(ctx)
	delay := r.cfg.BaseDelay

	for attempt := 1; ; attempt++ {
		metrics.TxAttempts.WithLabelValues(op).Inc()

		ticket, pending, err := r.attempt(ctx, fn)
		if err == nil {
			span.SetAttributes(attribute.Int(AttrAttempts, attempt))
			metrics.TxOutcomes.WithLabelValues(op, metrics.OutcomeSuccess).Inc()
			log.Debug(LogMsgTxCommitted, "operation", op, "attempts", attempt)
			if r.events != nil {
				r.seq.deliver(ctx, ticket, pending, r.publish)
			}
			return nil
		}

		if !errors.Is(err, domain.ErrTxConflict) {
			metrics.TxOutcomes.WithLabelValues(op, outcomeFor(err)).Inc()
			span.SetAttributes(attribute.Int(AttrAttempts, attempt))
			if outcomeFor(err) == metrics.OutcomeError {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return err
		}

		metrics.TxConflicts.WithLabelValues(op).Inc()
		if attempt >= r.cfg.MaxAttempts {
			metrics.TxExhausted.WithLabelValues(op).Inc()
			metrics.TxOutcomes.WithLabelValues(op, metrics.OutcomeExhausted).Inc()
			log.Warn(LogMsgTxExhausted, "operation", op, "attempts", attempt)
			exhausted := fmt.Errorf(ErrFmtExhausted, domain.ErrConflictRetryExhausted, op, attempt)
			span.SetAttributes(attribute.Int(AttrAttempts, attempt))
			span.SetStatus(codes.Error, exhausted.Error())
			return exhausted
		}

		log.Debug(LogMsgTxConflict, "operation", op, "attempt", attempt, "delay", delay)
		if err := sleepWithContext(ctx, delay); err != nil {
			return err
		}
		delay = min(delay*2, r.cfg.MaxDelay)
	}
}

func (r *Runner) attempt(ctx context.Context, fn Func) (uint64, []pendingEvent, error) {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	u := &Unit{Tx: tx}
	if err := fn(ctx, u); err != nil {
		return 0, nil, err
	}

	if r.events == nil {
		if err := tx.Commit(ctx); err != nil {
			return 0, nil, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
		}
		return 0, nil, nil
	}

	ticket, err := r.seq.commit(ctx, tx)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", ErrMsgCommitFailed, err)
	}
	return ticket, u.pending, nil
}

// publish delivers committed events. Delivery failures are logged only: the
// state change is already durable.
func (r *Runner) publish(ctx context.Context, pending []pendingEvent) {
	for _, p := range pending {
		evt := p.resolve()
		if err := r.events.Publish(ctx, evt); err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			logger.FromContext(ctx).Error(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
		}
	}
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return metrics.OutcomeValidation
	case errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
