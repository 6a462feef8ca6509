package repository

import (
	"context"

	"github.com/osse101/HackArena_Go/internal/domain"
)

// Feed defines read access to the activity feed
type Feed interface {
	// RecentFeed returns up to limit entries, newest commit first.
	RecentFeed(ctx context.Context, limit int) ([]domain.FeedItem, error)
}
