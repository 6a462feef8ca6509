package sse

import "time"

// Buffer sizes. A client buffer must hold a full replay.
const (
	ReplayBufferSize  = 64
	ClientEventBuffer = 2 * ReplayBufferSize
)

// KeepaliveInterval is how often idle streams get a ping
const KeepaliveInterval = 30 * time.Second

// Stream event types
const (
	EventTypeFeed      = "feed"
	EventTypeHack      = "hack"
	EventTypeStamina   = "stamina"
	EventTypeConnected = "connected"
)

// Keepalives are SSE comments so they never reach client event handlers
const KeepaliveComment = ": keepalive\n\n"

// HeaderLastEventID is sent by browsers when an EventSource reconnects.
// QueryParamLastEventID serves clients that cannot set headers.
const (
	HeaderLastEventID     = "Last-Event-ID"
	QueryParamLastEventID = "last_event_id"
)

// QueryParamTypes selects which stream event types a client receives
const QueryParamTypes = "types"

// Log messages
const (
	LogMsgClientConnected    = "Feed stream client connected"
	LogMsgClientDisconnected = "Feed stream client disconnected"
	LogMsgEventBroadcast     = "Broadcasting stream event"
	LogMsgClientLagging      = "Feed stream client fell behind, disconnecting"
	LogMsgReplayed           = "Replayed buffered stream events"
	LogMsgWriteError         = "Failed to write stream event"
	LogMsgInvalidPayload     = "Ignoring event with undecodable payload"
	LogMsgSubscriberReady    = "Feed stream subscriber registered"
	ErrMsgStreamClosed       = "feed stream is shutting down"
	ErrMsgUnknownStreamType  = "unknown stream event type"
)
