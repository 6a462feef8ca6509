package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/event"
)

// Subscriber bridges the event bus to the hub
type Subscriber struct {
	hub *Hub
}

// NewSubscriber creates a subscriber broadcasting into hub
func NewSubscriber(hub *Hub) *Subscriber {
	return &Subscriber{hub: hub}
}

// Register subscribes to the events the stream carries
func (s *Subscriber) Register(bus event.Bus) {
	bus.Subscribe(event.FeedPublished, s.handleFeedPublished)
	bus.Subscribe(event.HackResolved, s.handleHackResolved)
	bus.Subscribe(event.StaminaRegenerated, s.handleStaminaRegenerated)
	slog.Info(LogMsgSubscriberReady)
}

func (s *Subscriber) handleFeedPublished(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.FeedPublishedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(EventTypeFeed, payload.Item)
	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeFeed, "seq", payload.Item.Seq)
	return nil
}

func (s *Subscriber) handleHackResolved(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.HackResolvedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(EventTypeHack, HackPayload{
		AttackerID: payload.AttackerID,
		DefenderID: payload.DefenderID,
		Win:        payload.Win,
		LootCreds:  payload.LootCreds,
	})
	return nil
}

func (s *Subscriber) handleStaminaRegenerated(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.StaminaRegeneratedPayload](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}
	s.hub.Broadcast(EventTypeStamina, StaminaPayload{
		PlayersAffected: payload.PlayersAffected,
		Amount:          payload.Amount,
	})
	return nil
}
