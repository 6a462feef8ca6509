package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/event"
	"github.com/osse101/HackArena_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every event the engine publishes
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.HackResolved,
		event.ItemPurchased,
		event.ItemActivated,
		event.TaskClaimed,
		event.QuizAnswered,
		event.FeedPublished,
		event.StaminaRegenerated,
	} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent updates business metrics for a single event
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.HackResolved:
		var p domain.HackResolvedPayload
		if p, err = event.DecodePayload[domain.HackResolvedPayload](evt.Payload); err == nil {
			outcome := OutcomeLoss
			if p.Win {
				outcome = OutcomeWin
				LootTransferred.Add(float64(p.LootCreds))
			}
			HacksResolved.WithLabelValues(outcome).Inc()
		}

	case event.ItemPurchased:
		var p domain.ItemPurchasedPayload
		if p, err = event.DecodePayload[domain.ItemPurchasedPayload](evt.Payload); err == nil {
			ItemsPurchased.WithLabelValues(string(p.ItemType)).Inc()
			CredsSpent.Add(float64(p.Price))
		}

	case event.ItemActivated:
		var p domain.ItemActivatedPayload
		if p, err = event.DecodePayload[domain.ItemActivatedPayload](evt.Payload); err == nil {
			ItemsActivated.WithLabelValues(string(p.ItemType)).Inc()
		}

	case event.TaskClaimed:
		TasksClaimed.Inc()

	case event.QuizAnswered:
		var p domain.QuizAnsweredPayload
		if p, err = event.DecodePayload[domain.QuizAnsweredPayload](evt.Payload); err == nil {
			QuizAnswers.WithLabelValues(strconv.FormatBool(p.Correct)).Inc()
		}

	case event.FeedPublished:
		var p domain.FeedPublishedPayload
		if p, err = event.DecodePayload[domain.FeedPublishedPayload](evt.Payload); err == nil {
			FeedPublished.WithLabelValues(string(p.Item.Type)).Inc()
		}

	case event.StaminaRegenerated:
		var p domain.StaminaRegeneratedPayload
		if p, err = event.DecodePayload[domain.StaminaRegeneratedPayload](evt.Payload); err == nil {
			StaminaRegenerated.Add(float64(p.PlayersAffected))
		}
	}

	if err != nil {
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
		return nil
	}
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
