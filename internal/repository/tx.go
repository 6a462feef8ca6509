package repository

import (
	"context"

	"github.com/osse101/HackArena_Go/internal/domain"
)

// Tx is a single atomic unit of work over the mutable game records.
//
// Implementations must detect conflicting concurrent writes and report them
// as domain.ErrTxConflict from any method, including Commit. Getters return
// (nil, nil) when the record does not exist.
//
// All reads must precede the first write. Backends that validate optimistically
// reject a read issued after a write with domain.ErrReadAfterWrite.
type Tx interface {
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	// GetPlayers loads several players in ascending id order. Missing ids are
	// absent from the result map.
	GetPlayers(ctx context.Context, playerIDs ...string) (map[string]*domain.Player, error)
	GetInventoryItem(ctx context.Context, inventoryID string) (*domain.InventoryItem, error)
	FindInventoryItem(ctx context.Context, playerID, itemID string) (*domain.InventoryItem, error)
	GetUserTask(ctx context.Context, taskID string) (*domain.UserTask, error)
	FindUserTask(ctx context.Context, playerID, templateID string) (*domain.UserTask, error)
	ListUserTasksByStatus(ctx context.Context, playerID string, status domain.TaskStatus) ([]domain.UserTask, error)
	GetFeedItem(ctx context.Context, feedID string) (*domain.FeedItem, error)

	UpdatePlayer(ctx context.Context, player *domain.Player) error
	DeletePlayer(ctx context.Context, playerID string) error
	InsertInventoryItem(ctx context.Context, item *domain.InventoryItem) error
	UpdateInventoryItem(ctx context.Context, item *domain.InventoryItem) error
	DeleteInventoryItem(ctx context.Context, inventoryID string) error
	InsertUserTask(ctx context.Context, task *domain.UserTask) error
	UpdateUserTask(ctx context.Context, task *domain.UserTask) error
	// AppendFeedItem adds an entry to the feed. Item.Seq is set no later than
	// Commit and reflects commit order.
	AppendFeedItem(ctx context.Context, item *domain.FeedItem) error
	UpdateFeedReactions(ctx context.Context, feedID string, reactions map[string]int) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
