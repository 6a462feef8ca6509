package quest

import (
	"context"
	"fmt"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/event"
	"github.com/osse101/HackArena_Go/internal/logger"
)

// EventHandler turns committed gameplay events into task progress
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new quest event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{
		service: service,
	}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.HackResolved, h.HandleHackResolved)
	bus.Subscribe(event.ItemPurchased, h.HandleItemPurchased)
	bus.Subscribe(event.ItemActivated, h.HandleItemActivated)
	bus.Subscribe(event.QuizAnswered, h.HandleQuizAnswered)
}

// HandleHackResolved counts every hack and every win for the attacker
func (h *EventHandler) HandleHackResolved(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.HackResolvedPayload](evt.Payload)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodePayload, evt.Type, err)
	}

	h.advance(ctx, payload.AttackerID, domain.ConditionHacks)
	if payload.Win {
		h.advance(ctx, payload.AttackerID, domain.ConditionHackWins)
	}
	return nil
}

func (h *EventHandler) HandleItemPurchased(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.ItemPurchasedPayload](evt.Payload)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodePayload, evt.Type, err)
	}
	h.advance(ctx, payload.PlayerID, domain.ConditionPurchases)
	return nil
}

func (h *EventHandler) HandleItemActivated(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.ItemActivatedPayload](evt.Payload)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodePayload, evt.Type, err)
	}
	h.advance(ctx, payload.PlayerID, domain.ConditionActivations)
	return nil
}

func (h *EventHandler) HandleQuizAnswered(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.QuizAnsweredPayload](evt.Payload)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodePayload, evt.Type, err)
	}
	if payload.Correct {
		h.advance(ctx, payload.PlayerID, domain.ConditionQuizCorrect)
	}
	return nil
}

// advance logs failures instead of returning them; the triggering action
// has already committed.
func (h *EventHandler) advance(ctx context.Context, playerID, condition string) {
	if _, err := h.service.Advance(ctx, playerID, condition, 1); err != nil {
		logger.FromContext(ctx).Warn(LogMsgAdvanceFailed, "player_id", playerID, "condition", condition, "error", err)
	}
}
