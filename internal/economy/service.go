package economy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/engine"
	"github.com/osse101/HackArena_Go/internal/feed"
	"github.com/osse101/HackArena_Go/internal/logger"
	"github.com/osse101/HackArena_Go/internal/repository"
)

// PurchaseResult describes a committed purchase
type PurchaseResult struct {
	Message         string                `json:"message"`
	Item            domain.ShopItem       `json:"item"`
	CredsBalance    int                   `json:"creds_balance"`
	StaminaRestored int                   `json:"stamina_restored,omitempty"`
	Inventory       *domain.InventoryItem `json:"inventory,omitempty"`
}

// ActivationResult describes a committed activation. Inventory is nil when
// the row was consumed.
type ActivationResult struct {
	Message         string                `json:"message"`
	Item            domain.ShopItem       `json:"item"`
	Inventory       *domain.InventoryItem `json:"inventory,omitempty"`
	StaminaRestored int                   `json:"stamina_restored,omitempty"`
	HackingSkill    int                   `json:"hacking_skill"`
	SecurityLevel   int                   `json:"security_level"`
}

// Service defines the shop and inventory operations
type Service interface {
	ListShopItems(ctx context.Context) ([]domain.ShopItem, error)
	GetInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error)
	Purchase(ctx context.Context, playerID, itemID string) (*PurchaseResult, error)
	Activate(ctx context.Context, playerID, inventoryID string) (*ActivationResult, error)
}

type service struct {
	catalog repository.Catalog
	players repository.Player
	runner  *engine.Runner
	feed    *feed.Publisher
	now     func() time.Time
}

// NewService creates a new economy service
func NewService(catalog repository.Catalog, players repository.Player, runner *engine.Runner, feedPub *feed.Publisher) Service {
	return &service{
		catalog: catalog,
		players: players,
		runner:  runner,
		feed:    feedPub,
		now:     time.Now,
	}
}

func (s *service) ListShopItems(ctx context.Context) ([]domain.ShopItem, error) {
	items, err := s.catalog.ListShopItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListShopFailed, err)
	}
	return items, nil
}

func (s *service) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	p, err := s.players.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetPlayerFailed, err)
	}
	if p == nil {
		return nil, domain.ErrPlayerNotFound
	}

	inv, err := s.players.ListInventory(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetInventoryFailed, err)
	}
	return inv, nil
}

// shopItem loads a catalog entry. Catalog data is immutable, so it is read
// outside the transaction.
func (s *service) shopItem(ctx context.Context, itemID string) (*domain.ShopItem, error) {
	item, err := s.catalog.GetShopItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetItemFailed, err)
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

// narrates reports whether an item's activity goes to the feed
func narrates(item *domain.ShopItem) bool {
	return item.Tier >= FeedMinTier || item.ItemType == domain.ItemTypePermanentBoost
}

// logRefusal logs validation and not-found outcomes at Warn and anything
// else at Error.
func logRefusal(ctx context.Context, msg string, err error, args ...any) {
	log := logger.FromContext(ctx)
	args = append(args, "error", err)
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
		log.Warn(msg, args...)
		return
	}
	log.Error(msg, args...)
}
