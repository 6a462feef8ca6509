package engine

import (
	"context"
	"sync"

	"github.com/osse101/HackArena_Go/internal/repository"
)

// sequencer numbers commits and releases their events strictly in that
// order. A commit that finishes publishing early waits in ready until every
// earlier ticket has been delivered.
type sequencer struct {
	commitMu sync.Mutex
	issued   uint64

	mu       sync.Mutex
	next     uint64
	ready    map[uint64]batch
	draining bool
}

type batch struct {
	ctx     context.Context
	pending []pendingEvent
}

func newSequencer() *sequencer {
	return &sequencer{ready: make(map[uint64]batch)}
}

// commit commits tx and takes the next ticket under one lock, so ticket
// order is commit order.
func (s *sequencer) commit(ctx context.Context, tx repository.Tx) (uint64, error) {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	ticket := s.issued
	s.issued++
	return ticket, nil
}

// deliver hands over the events of a committed ticket. Whichever caller
// closes a gap drains every contiguous batch; a caller that arrives while
// another is draining returns at once and its batch is picked up by the
// drainer. This keeps nested runs started from event handlers deadlock-free.
func (s *sequencer) deliver(ctx context.Context, ticket uint64, pending []pendingEvent, publish func(context.Context, []pendingEvent)) {
	s.mu.Lock()
	s.ready[ticket] = batch{ctx: ctx, pending: pending}
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true

	for {
		b, ok := s.ready[s.next]
		if !ok {
			s.draining = false
			s.mu.Unlock()
			return
		}
		delete(s.ready, s.next)
		s.next++
		s.mu.Unlock()

		publish(b.ctx, b.pending)

		s.mu.Lock()
	}
}
