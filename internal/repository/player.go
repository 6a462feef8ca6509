package repository

import (
	"context"

	"github.com/osse101/HackArena_Go/internal/domain"
)

// Player defines non-transactional player persistence
type Player interface {
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	// CreatePlayer inserts a new player. Duplicate usernames return
	// domain.ErrUsernameTaken.
	CreatePlayer(ctx context.Context, player *domain.Player) error
	ListInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error)
	ListUserTasks(ctx context.Context, playerID string) ([]domain.UserTask, error)
	// RegenerateStamina raises every player's stamina by amount, capped at
	// stamina_max, as one atomic statement. Returns rows changed.
	RegenerateStamina(ctx context.Context, amount int) (int64, error)
}
