// Package sse streams committed game activity to browsers as server-sent events.
package sse

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one message on the stream. Broadcast events carry a hub-wide
// increasing ID that clients echo back in Last-Event-ID.
type Event struct {
	ID        string      `json:"id,omitempty"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`

	seq uint64
}

// Client is one connected stream. Events is closed when the client is
// unregistered, falls behind, or the hub stops.
type Client struct {
	ID     string
	Events chan Event
	filter map[string]bool
}

func (c *Client) wants(eventType string) bool {
	return c.filter == nil || c.filter[eventType]
}

// Hub fans events out to clients in broadcast order and keeps the last
// ReplayBufferSize events for reconnects.
//
// A client never skips an event silently: when its buffer is full it is
// disconnected, and reconnecting with the last ID it saw replays the gap.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*Client
	history []Event
	lastSeq uint64
	stopped bool
}

// NewHub creates a hub ready for use.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		history: make([]Event, 0, ReplayBufferSize),
	}
}

// Register adds a client filtered to eventTypes, or to everything when
// empty. Buffered events newer than lastEventID are queued for it first.
// It returns nil once the hub is stopped.
func (h *Hub) Register(eventTypes []string, lastEventID string) *Client {
	client := &Client{
		ID:     uuid.NewString(),
		Events: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		client.filter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.filter[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		return nil
	}

	if after, err := strconv.ParseUint(lastEventID, 10, 64); err == nil {
		replayed := 0
		for _, e := range h.history {
			if e.seq > after && client.wants(e.Type) {
				client.Events <- e
				replayed++
			}
		}
		slog.Debug(LogMsgReplayed, "client_id", client.ID, "last_event_id", lastEventID, "count", replayed)
	}

	h.clients[client.ID] = client
	return client
}

// Unregister removes a client and closes its channel.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client, ok := h.clients[clientID]; ok {
		close(client.Events)
		delete(h.clients, clientID)
	}
}

// Broadcast assigns the next stream ID to an event and delivers it to
// every interested client.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		return
	}

	h.lastSeq++
	event := Event{
		ID:        strconv.FormatUint(h.lastSeq, 10),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
		seq:       h.lastSeq,
	}

	if len(h.history) == ReplayBufferSize {
		copy(h.history, h.history[1:])
		h.history = h.history[:ReplayBufferSize-1]
	}
	h.history = append(h.history, event)

	for id, client := range h.clients {
		if !client.wants(eventType) {
			continue
		}
		select {
		case client.Events <- event:
		default:
			slog.Warn(LogMsgClientLagging, "client_id", id, "event_id", event.ID)
			close(client.Events)
			delete(h.clients, id)
		}
	}
}

// Stop closes every client channel and refuses new clients. Safe to call twice.
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		return
	}
	h.stopped = true
	for id, client := range h.clients {
		close(client.Events)
		delete(h.clients, id)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// FormatSSEMessage renders an event in text/event-stream framing. Events
// without an ID omit the id field so they do not move the client's
// Last-Event-ID.
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	var msg []byte
	if event.ID != "" {
		msg = append(msg, "id: "+event.ID+"\n"...)
	}
	msg = append(msg, "event: "+event.Type+"\n"...)
	msg = append(msg, "data: "...)
	msg = append(msg, data...)
	msg = append(msg, "\n\n"...)
	return msg, nil
}
