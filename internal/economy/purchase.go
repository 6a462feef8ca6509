package economy

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/engine"
	"github.com/osse101/HackArena_Go/internal/event"
	"github.com/osse101/HackArena_Go/internal/logger"
)

// Purchase debits the item price and grants the item in one transaction.
// Stamina refills apply immediately and never create an inventory row.
func (s *service) Purchase(ctx context.Context, playerID, itemID string) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseCalled, "player_id", playerID, "item_id", itemID)

	item, err := s.shopItem(ctx, itemID)
	if err != nil {
		logRefusal(ctx, LogMsgPurchaseRefused, err, "player_id", playerID, "item_id", itemID)
		return nil, err
	}

	var out PurchaseResult
	err = s.runner.Run(ctx, OpPurchase, func(ctx context.Context, u *engine.Unit) error {
		out = PurchaseResult{Item: *item}

		player, err := u.GetPlayer(ctx, playerID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgGetPlayerFailed, err)
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}

		var inv *domain.InventoryItem
		if !item.IsStaminaRefill() {
			if inv, err = u.FindInventoryItem(ctx, playerID, item.ID); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgGetInventoryFailed, err)
			}
		}

		if player.Creds < item.Price {
			return domain.ErrInsufficientFunds
		}
		player.AddCreds(-item.Price)
		player.LastOnlineAt = s.now().UTC()

		if item.IsStaminaRefill() {
			out.StaminaRestored = player.RefillStamina(item.Payload.Value)
		}
		if err := u.UpdatePlayer(ctx, player); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgUpdatePlayerFailed, err)
		}

		if !item.IsStaminaRefill() {
			granted, err := grant(ctx, u, inv, playerID, item.ID)
			if err != nil {
				return err
			}
			out.Inventory = granted
		}

		if narrates(item) {
			if _, err := s.feed.Purchase(ctx, u, player, item); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgNarrateFailed, err)
			}
		}

		u.Emit(event.NewItemPurchasedEvent(playerID, item))
		out.CredsBalance = player.Creds
		return nil
	})
	if err != nil {
		logRefusal(ctx, LogMsgPurchaseRefused, err, "player_id", playerID, "item_id", itemID)
		return nil, err
	}

	out.Message = fmt.Sprintf(MsgFmtPurchased, item.Title)
	log.Info(LogMsgItemPurchased, "player_id", playerID, "item_id", itemID, "creds_balance", out.CredsBalance)
	return &out, nil
}

// grant adds one unit to the player's stack, creating it when absent.
func grant(ctx context.Context, u *engine.Unit, inv *domain.InventoryItem, playerID, itemID string) (*domain.InventoryItem, error) {
	if inv == nil {
		inv = &domain.InventoryItem{
			ID:       uuid.NewString(),
			PlayerID: playerID,
			ItemID:   itemID,
			Qty:      1,
		}
		if err := u.InsertInventoryItem(ctx, inv); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgUpdateInventoryFailed, err)
		}
		return inv, nil
	}

	inv.Qty++
	if err := u.UpdateInventoryItem(ctx, inv); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgUpdateInventoryFailed, err)
	}
	return inv, nil
}
