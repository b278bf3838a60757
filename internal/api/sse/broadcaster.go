package sse

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/wordcrumble/wordcrumble-go/internal/model"
)

// Broadcaster turns game events into SSE frames on a hub.
type Broadcaster struct {
	hub    *Hub
	logger *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:    hub,
		logger: logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// eventFrame is the wire shape of a broadcast event
type eventFrame struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id,omitempty"`
	Payload   any       `json:"payload,omitempty"`
}

// Sink returns an event sink that broadcasts each event to all
// connected clients, named by its event type.
func (b *Broadcaster) Sink() model.EventSink {
	return func(e model.Event) {
		data, err := json.Marshal(eventFrame{
			Type:      string(e.Type),
			Timestamp: e.Timestamp,
			SessionID: string(e.SessionID),
			Payload:   e.Payload,
		})
		if err != nil {
			b.logger.Error("sse failed to marshal event",
				slog.String("type", string(e.Type)),
				slog.Any("error", err))
			return
		}
		b.hub.BroadcastEvent(string(e.Type), string(data))
	}
}
