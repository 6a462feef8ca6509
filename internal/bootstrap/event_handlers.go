package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/HackArena_Go/internal/discord"
	"github.com/osse101/HackArena_Go/internal/event"
	"github.com/osse101/HackArena_Go/internal/metrics"
	"github.com/osse101/HackArena_Go/internal/quest"
	"github.com/osse101/HackArena_Go/internal/sse"
)

// EventHandlerDependencies holds what the bus subscribers need.
type EventHandlerDependencies struct {
	EventBus     event.Bus
	QuestService quest.Service

	// Stream is nil when the live feed stream is not served
	Stream *sse.Hub

	// DiscordExecutor is nil when the relay is disabled
	DiscordExecutor  discord.WebhookExecutor
	DiscordWebhookID string
	DiscordToken     string
}

// RegisterEventHandlers subscribes the metrics collector and the quest
// progress handler, plus the feed stream and Discord relay when configured.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	quest.NewEventHandler(deps.QuestService).Register(deps.EventBus)
	slog.Info(LogMsgQuestHandlerRegistered)

	if deps.Stream != nil {
		sse.NewSubscriber(deps.Stream).Register(deps.EventBus)
	}

	if deps.DiscordExecutor == nil {
		slog.Info(LogMsgDiscordRelayDisabled)
		return nil
	}
	relay, err := discord.NewRelay(deps.DiscordExecutor, deps.DiscordWebhookID, deps.DiscordToken)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedCreateDiscordRelay, err)
	}
	relay.Register(deps.EventBus)
	slog.Info(LogMsgDiscordRelayRegistered, "webhook_id", deps.DiscordWebhookID)

	return nil
}
