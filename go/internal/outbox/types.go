package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OutboxEvent represents an outbox event for the application layer
type OutboxEvent struct {
	ID        uuid.UUID       `json:"id"`
	TimerID   string          `json:"timer_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	SentAt    *time.Time      `json:"sent_at,omitempty"`
}

// Envelope is the wire format of an event on the message bus.
type Envelope struct {
	EventID   string          `json:"eventId"`
	EventType string          `json:"eventType"`
	TimerID   string          `json:"timerId"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// NewEnvelope wraps event for publishing.
func NewEnvelope(event OutboxEvent, at time.Time) Envelope {
	return Envelope{
		EventID:   event.ID.String(),
		EventType: event.EventType,
		TimerID:   event.TimerID,
		Timestamp: at.UTC(),
		Payload:   event.Payload,
	}
}
