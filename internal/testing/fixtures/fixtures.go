// Package fixtures provides the demo roster and catalog used across package
// tests, plus a recorder for published events.
package fixtures

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/event"
	"github.com/osse101/HackArena_Go/internal/repository"
)

// Player ids
const (
	NeoPwnerID     = "user-001"
	GlitchWitchID  = "user-002"
	CyberSamuraiID = "user-003"
	DarkCodeID     = "user-004"
)

// Item ids
const (
	IceBreakerID   = "item-001"
	FirewallID     = "item-002"
	EnergyDrinkID  = "item-003"
	NeonFrameID    = "item-004"
	ZeroDayKitID   = "item-005"
	TaskFirstBlood = "task-first-blood"
	TaskShopper    = "task-shopper"
	QuestionPorts  = "q-ports"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func player(id, username, display string, creds, xp, skill, sec int) *domain.Player {
	return &domain.Player{
		ID:            id,
		Username:      username,
		DisplayName:   display,
		Creds:         creds,
		XP:            xp,
		Level:         domain.LevelForXP(xp),
		Stamina:       95,
		StaminaMax:    100,
		HackingSkill:  skill,
		SecurityLevel: sec,
		Badges:        []string{},
		LastOnlineAt:  epoch,
		CreatedAt:     epoch,
	}
}

// Players returns fresh copies of the demo roster.
func Players() []*domain.Player {
	neo := player(NeoPwnerID, "n3o_pwnr", "NeoPwner", 5000, 1250, 30, 25)
	neo.Badges = []string{"10_wins_streak", "alpha_tester"}
	return []*domain.Player{
		neo,
		player(GlitchWitchID, "gl1tch_w1tch", "GlitchWitch", 8200, 2100, 28, 32),
		player(CyberSamuraiID, "cyb3r_samura1", "CyberSamurai", 3450, 900, 22, 20),
		player(DarkCodeID, "d4rk_c0de", "DarkCode", 15000, 3500, 45, 40),
	}
}

func intPtr(v int) *int { return &v }

// ShopItems returns the demo catalog.
func ShopItems() []domain.ShopItem {
	return []domain.ShopItem{
		{ID: IceBreakerID, Slug: "attack-boost-10", Title: "ICE Breaker v1", Price: 250, Tier: 1,
			ItemType: domain.ItemTypeBooster, Payload: domain.ItemPayload{Effect: domain.EffectAttackPercent, Value: 10, Duration: intPtr(3600)}},
		{ID: FirewallID, Slug: "defense-boost-10", Title: "Firewall Shield", Price: 250, Tier: 1,
			ItemType: domain.ItemTypeBooster, Payload: domain.ItemPayload{Effect: domain.EffectDefensePercent, Value: 10, Duration: intPtr(3600)}},
		{ID: EnergyDrinkID, Slug: "stamina-refill-small", Title: "Energy Drink", Price: 500, Tier: 1,
			ItemType: domain.ItemTypeConsumable, Payload: domain.ItemPayload{Effect: domain.EffectStaminaRefill, Value: 25}},
		{ID: NeonFrameID, Slug: "neon-avatar-frame", Title: "Neon Frame", Price: 1000, Tier: 2,
			ItemType: domain.ItemTypeCosmetic, Payload: domain.ItemPayload{Effect: domain.EffectCosmeticFrame, Value: 1}},
		{ID: ZeroDayKitID, Slug: "zero-day-kit", Title: "Zero-Day Kit", Price: 2000, Tier: 3,
			ItemType: domain.ItemTypePermanentBoost, Payload: domain.ItemPayload{Effect: domain.EffectHackingSkill, Value: 5}},
	}
}

// TaskTemplates returns the demo task board.
func TaskTemplates() []domain.TaskTemplate {
	return []domain.TaskTemplate{
		{ID: TaskFirstBlood, Title: "First Blood", Description: "Win a hack", RewardCreds: 100, RewardXP: 50,
			Condition: domain.TaskCondition{Type: domain.ConditionHackWins, Count: 1}},
		{ID: TaskShopper, Title: "Window Shopper", Description: "Buy two items", RewardCreds: 50, RewardXP: 20,
			Condition: domain.TaskCondition{Type: domain.ConditionPurchases, Count: 2}},
	}
}

// Questions returns the demo quiz bank.
func Questions() []domain.Question {
	return []domain.Question{
		{ID: QuestionPorts, Prompt: "Which port does HTTPS use by default?", Choices: []string{"21", "80", "443", "8080"},
			CorrectChoice: 2, Category: "networking"},
	}
}

// Seed loads the roster, catalog, task board and quiz bank into store.
func Seed(t testing.TB, store repository.Store) {
	t.Helper()
	ctx := context.Background()
	for _, item := range ShopItems() {
		require.NoError(t, store.UpsertShopItem(ctx, item))
	}
	for _, tmpl := range TaskTemplates() {
		require.NoError(t, store.UpsertTaskTemplate(ctx, tmpl))
	}
	for _, q := range Questions() {
		require.NoError(t, store.UpsertQuestion(ctx, q))
	}
	for _, p := range Players() {
		require.NoError(t, store.CreatePlayer(ctx, p))
	}
}

// Recorder is an event.Publisher that keeps every event it receives.
type Recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *Recorder) Publish(ctx context.Context, e event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

// Events returns a copy of what was published, in order.
func (r *Recorder) Events() []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event.Event(nil), r.events...)
}

// Types lists the published event types in order.
func (r *Recorder) Types() []event.Type {
	var out []event.Type
	for _, e := range r.Events() {
		out = append(out, e.Type)
	}
	return out
}
