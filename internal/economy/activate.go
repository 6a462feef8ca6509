package economy

import (
	"context"
	"fmt"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/engine"
	"github.com/osse101/HackArena_Go/internal/event"
	"github.com/osse101/HackArena_Go/internal/logger"
)

// Activate uses one inventory row. Permanent boosts and consumables spend a
// unit; every other type is switched on once and stays on.
func (s *service) Activate(ctx context.Context, playerID, inventoryID string) (*ActivationResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgActivateCalled, "player_id", playerID, "inventory_id", inventoryID)

	var out ActivationResult
	err := s.runner.Run(ctx, OpActivate, func(ctx context.Context, u *engine.Unit) error {
		out = ActivationResult{}

		inv, err := u.GetInventoryItem(ctx, inventoryID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgGetInventoryFailed, err)
		}
		if inv == nil {
			return domain.ErrInventoryNotFound
		}
		if inv.PlayerID != playerID {
			return domain.ErrNotOwner
		}
		if inv.Activated {
			return domain.ErrItemAlreadyActive
		}
		if inv.Qty <= 0 {
			return domain.ErrItemDepleted
		}

		item, err := s.shopItem(ctx, inv.ItemID)
		if err != nil {
			return err
		}

		player, err := u.GetPlayer(ctx, playerID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgGetPlayerFailed, err)
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}

		switch item.ItemType {
		case domain.ItemTypePermanentBoost:
			if item.BoostsHacking() {
				player.HackingSkill += item.Payload.Value
			} else {
				player.SecurityLevel += item.Payload.Value
			}
			if err := s.consume(ctx, u, player, inv); err != nil {
				return err
			}
		case domain.ItemTypeConsumable:
			if item.IsStaminaRefill() {
				out.StaminaRestored = player.RefillStamina(item.Payload.Value)
			}
			if err := s.consume(ctx, u, player, inv); err != nil {
				return err
			}
		default:
			now := s.now().UTC()
			inv.Activated = true
			inv.ActivatedAt = &now
			if err := u.UpdateInventoryItem(ctx, inv); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgUpdateInventoryFailed, err)
			}
		}

		if narrates(item) {
			if _, err := s.feed.Activation(ctx, u, player, item); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgNarrateFailed, err)
			}
		}

		remaining := inv.Qty
		if remaining > 0 {
			out.Inventory = inv
		}
		u.Emit(event.NewItemActivatedEvent(playerID, item, remaining))

		out.Item = *item
		out.HackingSkill = player.HackingSkill
		out.SecurityLevel = player.SecurityLevel
		return nil
	})
	if err != nil {
		logRefusal(ctx, LogMsgActivateRefused, err, "player_id", playerID, "inventory_id", inventoryID)
		return nil, err
	}

	out.Message = fmt.Sprintf(MsgFmtActivated, out.Item.Title)
	log.Info(LogMsgItemActivated, "player_id", playerID, "item_id", out.Item.ID, "item_type", out.Item.ItemType)
	return &out, nil
}

// consume writes the player and spends one unit, deleting the row at zero.
func (s *service) consume(ctx context.Context, u *engine.Unit, player *domain.Player, inv *domain.InventoryItem) error {
	player.LastOnlineAt = s.now().UTC()
	if err := u.UpdatePlayer(ctx, player); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpdatePlayerFailed, err)
	}

	inv.Qty--
	if inv.Qty == 0 {
		if err := u.DeleteInventoryItem(ctx, inv.ID); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgUpdateInventoryFailed, err)
		}
		return nil
	}
	if err := u.UpdateInventoryItem(ctx, inv); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUpdateInventoryFailed, err)
	}
	return nil
}
