package engine

import (
	"context"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/event"
	"github.com/osse101/HackArena_Go/internal/repository"
)

// Unit is the handle a transaction body works through. It embeds the storage
// transaction and buffers events until commit.
type Unit struct {
	repository.Tx
	pending []pendingEvent
}

type pendingEvent struct {
	evt  event.Event
	feed *domain.FeedItem
}

// resolve builds the event to publish. Feed events are built late so they
// carry the sequence number assigned at commit.
func (p pendingEvent) resolve() event.Event {
	if p.feed != nil {
		return event.NewFeedPublishedEvent(*p.feed)
	}
	return p.evt
}

// Emit queues an event for publication after a successful commit. Events
// from an aborted attempt are discarded.
func (u *Unit) Emit(evt event.Event) {
	u.pending = append(u.pending, pendingEvent{evt: evt})
}

// AppendFeedItem writes the feed entry and queues its feed.published event.
func (u *Unit) AppendFeedItem(ctx context.Context, item *domain.FeedItem) error {
	if err := u.Tx.AppendFeedItem(ctx, item); err != nil {
		return err
	}
	u.pending = append(u.pending, pendingEvent{feed: item})
	return nil
}

// Pending reports how many events are queued. Intended for tests.
func (u *Unit) Pending() int {
	return len(u.pending)
}
