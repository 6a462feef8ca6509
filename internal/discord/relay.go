package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/event"
)

// WebhookExecutor posts a message through a Discord webhook.
// *discordgo.Session satisfies it.
type WebhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Relay forwards committed feed entries to a Discord channel webhook.
type Relay struct {
	exec      WebhookExecutor
	webhookID string
	token     string
}

// NewRelay creates a relay bound to one webhook.
func NewRelay(exec WebhookExecutor, webhookID, token string) (*Relay, error) {
	if exec == nil {
		return nil, errors.New(errMsgNilExecutor)
	}
	return &Relay{exec: exec, webhookID: webhookID, token: token}, nil
}

// NewSession opens a token-less REST session, which is all webhook execution needs.
func NewSession() (*discordgo.Session, error) {
	return discordgo.New("")
}

// Register subscribes the relay to feed.published events.
func (r *Relay) Register(bus event.Bus) {
	bus.Subscribe(event.FeedPublished, r.handleFeedPublished)
	slog.Info(logMsgRelayRegistered, "webhook_id", r.webhookID)
}

func (r *Relay) handleFeedPublished(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.FeedPublishedPayload](evt.Payload)
	if err != nil {
		// A malformed payload will never succeed, so don't ask for a retry.
		slog.Warn(logMsgParseError, "error", err, "event_type", evt.Type)
		return nil
	}

	params := &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{buildEmbed(payload.Item)},
	}

	if _, err := r.exec.WebhookExecute(r.webhookID, r.token, false, params, discordgo.WithContext(ctx)); err != nil {
		slog.Error(logMsgSendError, "error", err, "seq", payload.Item.Seq)
		return fmt.Errorf("relay feed item %d: %w", payload.Item.Seq, err)
	}

	slog.Debug(logMsgSent, "seq", payload.Item.Seq, "type", payload.Item.Type)
	return nil
}

func buildEmbed(item domain.FeedItem) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       titleFor(item.Type),
		Description: item.Text,
		Color:       colorFor(item.Type),
		Fields: []*discordgo.MessageEmbedField{
			{Name: fieldActor, Value: item.ActorID, Inline: true},
			{Name: fieldSequence, Value: fmt.Sprintf("%d", item.Seq), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: embedFooter},
	}

	if item.TargetID != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fieldTarget,
			Value:  item.TargetID,
			Inline: true,
		})
	}

	ts := item.CreatedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	embed.Timestamp = ts.UTC().Format(time.RFC3339)

	return embed
}

func titleFor(t domain.FeedType) string {
	switch t {
	case domain.FeedTypeHack:
		return "💀 Breach Detected"
	case domain.FeedTypePurchase:
		return "💰 Black Market Deal"
	case domain.FeedTypeActivation:
		return "⚡ Module Online"
	case domain.FeedTypeTask:
		return "📋 Contract Closed"
	case domain.FeedTypeQuiz:
		return "🧠 Knowledge Check"
	default:
		return "📡 Network Activity"
	}
}

func colorFor(t domain.FeedType) int {
	switch t {
	case domain.FeedTypeHack:
		return colorHack
	case domain.FeedTypePurchase:
		return colorPurchase
	case domain.FeedTypeActivation:
		return colorActivation
	case domain.FeedTypeTask:
		return colorTask
	case domain.FeedTypeQuiz:
		return colorQuiz
	default:
		return colorDefault
	}
}
