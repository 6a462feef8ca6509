package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/HackArena_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string         `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type           `json:"type"`
	Payload  interface{}    `json:"payload"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Event types published by the transaction engine
const (
	HackResolved       Type = domain.EventTypeHackResolved
	ItemPurchased      Type = domain.EventTypeItemPurchased
	ItemActivated      Type = domain.EventTypeItemActivated
	TaskAccepted       Type = domain.EventTypeTaskAccepted
	TaskCompleted      Type = domain.EventTypeTaskCompleted
	TaskClaimed        Type = domain.EventTypeTaskClaimed
	QuizAnswered       Type = domain.EventTypeQuizAnswered
	FeedPublished      Type = domain.EventTypeFeedPublished
	StaminaRegenerated Type = domain.EventTypeStaminaRegenerated
)

// NewHackResolvedEvent creates a hack.resolved event
func NewHackResolvedEvent(attackerID, defenderID string, result domain.HackResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    HackResolved,
		Payload: domain.HackResolvedPayload{
			AttackerID:  attackerID,
			DefenderID:  defenderID,
			Win:         result.Win,
			LootCreds:   result.Loot.Creds,
			StaminaCost: result.StaminaCost,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewItemPurchasedEvent creates an item.purchased event
func NewItemPurchasedEvent(playerID string, item *domain.ShopItem) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemPurchased,
		Payload: domain.ItemPurchasedPayload{
			PlayerID:  playerID,
			ItemID:    item.ID,
			ItemType:  item.ItemType,
			Price:     item.Price,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemActivatedEvent creates an item.activated event
func NewItemActivatedEvent(playerID string, item *domain.ShopItem, remainingQty int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemActivated,
		Payload: domain.ItemActivatedPayload{
			PlayerID:     playerID,
			ItemID:       item.ID,
			ItemType:     item.ItemType,
			RemainingQty: remainingQty,
			Timestamp:    time.Now().Unix(),
		},
	}
}

// NewTaskEvent creates a task.* event for the given lifecycle type
func NewTaskEvent(eventType Type, task *domain.UserTask, tmpl *domain.TaskTemplate) Event {
	payload := domain.TaskPayload{
		PlayerID:   task.PlayerID,
		TaskID:     task.ID,
		TemplateID: task.TemplateID,
		Status:     task.Status,
		Timestamp:  time.Now().Unix(),
	}
	if eventType == TaskClaimed && tmpl != nil {
		payload.RewardCreds = tmpl.RewardCreds
		payload.RewardXP = tmpl.RewardXP
	}
	return Event{Version: EventSchemaVersion, Type: eventType, Payload: payload}
}

// NewQuizAnsweredEvent creates a quiz.answered event
func NewQuizAnsweredEvent(playerID string, result domain.QuizResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuizAnswered,
		Payload: domain.QuizAnsweredPayload{
			PlayerID:   playerID,
			QuestionID: result.QuestionID,
			Correct:    result.Correct,
			CredsDelta: result.CredsDelta,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewFeedPublishedEvent creates a feed.published event. The item must already
// carry its committed sequence number.
func NewFeedPublishedEvent(item domain.FeedItem) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     FeedPublished,
		Payload:  domain.FeedPublishedPayload{Item: item},
		Metadata: map[string]any{MetadataKeySeq: item.Seq},
	}
}

// NewStaminaRegeneratedEvent creates a stamina.regenerated event
func NewStaminaRegeneratedEvent(affected int64, amount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StaminaRegenerated,
		Payload: domain.StaminaRegeneratedPayload{
			PlayersAffected: affected,
			Amount:          amount,
			Timestamp:       time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher is the publish side of a bus
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously, in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
