package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/event"
)

func TestEventMetricsCollector_HackOutcomes(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	winsBefore := testutil.ToFloat64(HacksResolved.WithLabelValues(OutcomeWin))
	lossesBefore := testutil.ToFloat64(HacksResolved.WithLabelValues(OutcomeLoss))
	lootBefore := testutil.ToFloat64(LootTransferred)

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.NewHackResolvedEvent("a", "d", domain.HackResult{Win: true, Loot: domain.Loot{Creds: 55}})))
	require.NoError(t, bus.Publish(ctx, event.NewHackResolvedEvent("a", "d", domain.HackResult{Win: false})))

	assert.Equal(t, winsBefore+1, testutil.ToFloat64(HacksResolved.WithLabelValues(OutcomeWin)))
	assert.Equal(t, lossesBefore+1, testutil.ToFloat64(HacksResolved.WithLabelValues(OutcomeLoss)))
	assert.Equal(t, lootBefore+55, testutil.ToFloat64(LootTransferred))
}

func TestEventMetricsCollector_Purchase(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	item := &domain.ShopItem{ID: "boost", Price: 300, ItemType: domain.ItemTypeBooster}
	before := testutil.ToFloat64(ItemsPurchased.WithLabelValues(string(domain.ItemTypeBooster)))
	spentBefore := testutil.ToFloat64(CredsSpent)

	require.NoError(t, bus.Publish(context.Background(), event.NewItemPurchasedEvent("p1", item)))

	assert.Equal(t, before+1, testutil.ToFloat64(ItemsPurchased.WithLabelValues(string(domain.ItemTypeBooster))))
	assert.Equal(t, spentBefore+300, testutil.ToFloat64(CredsSpent))
}

func TestEventMetricsCollector_IgnoresMalformedPayload(t *testing.T) {
	c := NewEventMetricsCollector()
	err := c.HandleEvent(context.Background(), event.Event{Type: event.QuizAnswered, Payload: make(chan int)})
	assert.NoError(t, err)
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Post("/api/v1/feed/{id}/react", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/api/v1/feed/{id}/react", "202"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/feed/abc/react", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/api/v1/feed/{id}/react", "202")))
}
