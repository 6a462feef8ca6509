package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/logger"
)

// Appender is the slice of a transaction the publisher writes through.
// engine.Unit satisfies it and turns each append into a feed.published event.
type Appender interface {
	AppendFeedItem(ctx context.Context, item *domain.FeedItem) error
}

// Publisher appends narrated entries inside the caller's transaction, so an
// entry exists exactly when the action that produced it committed.
type Publisher struct {
	Narrator *Narrator
	now      func() time.Time
}

// NewPublisher creates a Publisher with English number formatting
func NewPublisher() *Publisher {
	return &Publisher{
		Narrator: NewNarrator(language.English),
		now:      time.Now,
	}
}

// Append writes one entry of the given type.
func (p *Publisher) Append(ctx context.Context, tx Appender, typ domain.FeedType, actorID, targetID, text string) (*domain.FeedItem, error) {
	item := &domain.FeedItem{
		ID:        uuid.NewString(),
		Type:      typ,
		Text:      text,
		ActorID:   actorID,
		TargetID:  targetID,
		Reactions: domain.NewReactionCounters(),
		CreatedAt: p.now().UTC(),
	}
	if err := tx.AppendFeedItem(ctx, item); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgAppendFeedFailed, err)
	}
	logger.FromContext(ctx).Debug(LogMsgFeedAppended, "feed_id", item.ID, "type", typ)
	return item, nil
}

// Hack narrates a resolved hack naming both parties.
func (p *Publisher) Hack(ctx context.Context, tx Appender, attacker, defender *domain.Player, res domain.HackResult) (*domain.FeedItem, error) {
	return p.Append(ctx, tx, domain.FeedTypeHack, attacker.ID, defender.ID, p.Narrator.Hack(attacker, defender, res))
}

func (p *Publisher) Purchase(ctx context.Context, tx Appender, buyer *domain.Player, item *domain.ShopItem) (*domain.FeedItem, error) {
	return p.Append(ctx, tx, domain.FeedTypePurchase, buyer.ID, "", p.Narrator.Purchase(buyer, item))
}

func (p *Publisher) Activation(ctx context.Context, tx Appender, player *domain.Player, item *domain.ShopItem) (*domain.FeedItem, error) {
	return p.Append(ctx, tx, domain.FeedTypeActivation, player.ID, "", p.Narrator.Activation(player, item))
}

func (p *Publisher) TaskClaimed(ctx context.Context, tx Appender, player *domain.Player, tmpl *domain.TaskTemplate) (*domain.FeedItem, error) {
	return p.Append(ctx, tx, domain.FeedTypeTask, player.ID, "", p.Narrator.TaskClaimed(player, tmpl))
}
