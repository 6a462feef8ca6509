package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Handler streams hub events to one client until it disconnects.
// ?types=feed,hack narrows the stream; Last-Event-ID resumes after a
// reconnect.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var eventTypes []string
		if filter := r.URL.Query().Get(QueryParamTypes); filter != "" {
			for _, t := range strings.Split(filter, ",") {
				t = strings.TrimSpace(t)
				if !ValidEventTypes[t] {
					http.Error(w, ErrMsgUnknownStreamType+": "+t, http.StatusBadRequest)
					return
				}
				eventTypes = append(eventTypes, t)
			}
		}

		rc := http.NewResponseController(w)

		lastEventID := r.Header.Get(HeaderLastEventID)
		if lastEventID == "" {
			lastEventID = r.URL.Query().Get(QueryParamLastEventID)
		}

		client := hub.Register(eventTypes, lastEventID)
		if client == nil {
			http.Error(w, ErrMsgStreamClosed, http.StatusServiceUnavailable)
			return
		}
		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()
		slog.Info(LogMsgClientConnected, "client_id", client.ID, "filters", eventTypes, "last_event_id", lastEventID)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		if err := rc.Flush(); err != nil {
			slog.Error(LogMsgWriteError, "error", err)
			return
		}

		write := func(msg []byte) bool {
			if _, err := w.Write(msg); err != nil {
				slog.Warn(LogMsgWriteError, "client_id", client.ID, "error", err)
				return false
			}
			return rc.Flush() == nil
		}
		send := func(event Event) bool {
			msg, err := FormatSSEMessage(event)
			if err != nil {
				slog.Error(LogMsgWriteError, "client_id", client.ID, "error", err)
				return true
			}
			return write(msg)
		}

		if !send(Event{
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]interface{}{"client_id": client.ID, "filters": eventTypes},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-client.Events:
				if !ok {
					return
				}
				if !send(event) {
					return
				}
			case <-ticker.C:
				if !write([]byte(KeepaliveComment)) {
					return
				}
			}
		}
	}
}
