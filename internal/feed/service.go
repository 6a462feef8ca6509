package feed

import (
	"context"
	"fmt"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/engine"
	"github.com/osse101/HackArena_Go/internal/logger"
	"github.com/osse101/HackArena_Go/internal/repository"
)

// Service exposes the read side of the feed and reaction counters
type Service interface {
	Recent(ctx context.Context, limit int) ([]domain.FeedItem, error)
	React(ctx context.Context, feedID, emoji string) (*domain.FeedItem, error)
}

type service struct {
	repo   repository.Feed
	runner *engine.Runner
}

// NewService creates a new feed service
func NewService(repo repository.Feed, runner *engine.Runner) Service {
	return &service{repo: repo, runner: runner}
}

// Recent returns the newest entries first. limit is clamped to [1, MaxLimit]
// with DefaultLimit for non-positive values.
func (s *service) Recent(ctx context.Context, limit int) ([]domain.FeedItem, error) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	items, err := s.repo.RecentFeed(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetFeedFailed, err)
	}
	return items, nil
}

// React increments one reaction counter. Counters are the only mutable part
// of a feed entry.
func (s *service) React(ctx context.Context, feedID, emoji string) (*domain.FeedItem, error) {
	log := logger.FromContext(ctx)
	if !domain.IsValidReaction(emoji) {
		return nil, domain.ErrInvalidReaction
	}

	var out *domain.FeedItem
	err := s.runner.Run(ctx, OpReact, func(ctx context.Context, u *engine.Unit) error {
		item, err := u.GetFeedItem(ctx, feedID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgReadFeedFailed, err)
		}
		if item == nil {
			return domain.ErrFeedItemNotFound
		}

		if item.Reactions == nil {
			item.Reactions = domain.NewReactionCounters()
		}
		item.Reactions[emoji]++
		if err := u.UpdateFeedReactions(ctx, feedID, item.Reactions); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgUpdateReactions, err)
		}
		out = item
		return nil
	})
	if err != nil {
		log.Warn(LogMsgReactFailed, "feed_id", feedID, "error", err)
		return nil, err
	}

	log.Info(LogMsgReactionAdded, "feed_id", feedID, "emoji", emoji)
	return out, nil
}
