package sse

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/event"
)

func newHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub()
	t.Cleanup(h.Stop)
	return h
}

func registered(t *testing.T, h *Hub, types ...string) *Client {
	t.Helper()
	c := h.Register(types, "")
	require.NotNil(t, c)
	return c
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e, ok := <-c.Events:
		require.True(t, ok, "channel closed")
		return e
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestHub_BroadcastReachesClientsInOrder(t *testing.T) {
	h := newHub(t)
	a := registered(t, h)
	b := registered(t, h)

	h.Broadcast(EventTypeHack, HackPayload{AttackerID: "user-004", Win: true})
	h.Broadcast(EventTypeFeed, "entry")

	for _, c := range []*Client{a, b} {
		first, second := receive(t, c), receive(t, c)
		assert.Equal(t, EventTypeHack, first.Type)
		assert.Equal(t, "1", first.ID)
		assert.Equal(t, EventTypeFeed, second.Type)
		assert.Equal(t, "2", second.ID)
	}
}

func TestHub_FilterSkipsOtherTypes(t *testing.T) {
	h := newHub(t)
	c := registered(t, h, EventTypeFeed)

	h.Broadcast(EventTypeStamina, StaminaPayload{Amount: 5})
	h.Broadcast(EventTypeFeed, "entry")

	assert.Equal(t, EventTypeFeed, receive(t, c).Type)
}

func TestHub_ReplaysAfterLastEventID(t *testing.T) {
	h := newHub(t)
	for i := 0; i < 4; i++ {
		h.Broadcast(EventTypeFeed, i)
	}
	h.Broadcast(EventTypeStamina, StaminaPayload{Amount: 1})

	c := h.Register([]string{EventTypeFeed}, "2")
	require.NotNil(t, c)

	assert.Equal(t, "3", receive(t, c).ID)
	assert.Equal(t, "4", receive(t, c).ID)
	assert.Empty(t, c.Events, "filtered types are not replayed")

	fresh := h.Register(nil, "")
	assert.Empty(t, fresh.Events, "no replay without a last event id")
}

func TestHub_ReplayBufferKeepsNewest(t *testing.T) {
	h := newHub(t)
	for i := 0; i < ReplayBufferSize+10; i++ {
		h.Broadcast(EventTypeFeed, i)
	}

	c := h.Register(nil, "0")
	require.NotNil(t, c)

	assert.Len(t, c.Events, ReplayBufferSize)
	assert.Equal(t, "11", receive(t, c).ID)
}

func TestHub_LaggingClientIsDisconnected(t *testing.T) {
	h := newHub(t)
	slow := registered(t, h)
	fast := registered(t, h)

	for i := 0; i < ClientEventBuffer+1; i++ {
		h.Broadcast(EventTypeFeed, i)
		<-fast.Events
	}

	assert.Equal(t, 1, h.ClientCount())
	for range ClientEventBuffer {
		<-slow.Events
	}
	_, ok := <-slow.Events
	assert.False(t, ok, "the lagging client's channel is closed, not skipped")
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	h := newHub(t)
	c := registered(t, h)

	h.Unregister(c.ID)

	assert.Equal(t, 0, h.ClientCount())
	_, ok := <-c.Events
	assert.False(t, ok)
}

func TestHub_StopIsIdempotent(t *testing.T) {
	h := NewHub()
	c := registered(t, h)

	h.Stop()
	h.Stop()

	_, ok := <-c.Events
	assert.False(t, ok)
	assert.Nil(t, h.Register(nil, ""))
	h.Broadcast(EventTypeFeed, "ignored")
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "7", Type: EventTypeFeed, Payload: map[string]int{"seq": 3}})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: 7\nevent: feed\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "\n\n"))
	assert.Contains(t, s, `"seq":3`)

	msg, err = FormatSSEMessage(Event{Type: EventTypeConnected})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(msg), "event: connected\n"), "control events carry no id")
}

func TestSubscriber_BridgesBusEvents(t *testing.T) {
	h := newHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(h).Register(bus)
	c := registered(t, h)
	ctx := context.Background()

	item := domain.FeedItem{ID: "f-1", Seq: 9, Type: domain.FeedTypePurchase, Text: "bought", Reactions: domain.NewReactionCounters()}
	require.NoError(t, bus.Publish(ctx, event.NewFeedPublishedEvent(item)))

	e := receive(t, c)
	assert.Equal(t, EventTypeFeed, e.Type)
	got, ok := e.Payload.(domain.FeedItem)
	require.True(t, ok)
	assert.Equal(t, int64(9), got.Seq)

	require.NoError(t, bus.Publish(ctx, event.NewStaminaRegeneratedEvent(4, 5)))
	e = receive(t, c)
	assert.Equal(t, EventTypeStamina, e.Type)
	assert.Equal(t, StaminaPayload{PlayersAffected: 4, Amount: 5}, e.Payload)
}

func TestSubscriber_IgnoresBadPayload(t *testing.T) {
	h := newHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(h).Register(bus)

	err := bus.Publish(context.Background(), event.Event{Type: event.HackResolved, Payload: make(chan int)})

	assert.NoError(t, err)
}
