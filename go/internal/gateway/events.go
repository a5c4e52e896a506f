package gateway

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mcdev12/contest-timer/go/internal/timer/events"
)

// TimerEvent is the message pushed to WebSocket clients.
type TimerEvent struct {
	ID        string          `json:"id"`        // Event UUID
	TimerID   string          `json:"timer_id"`  // Always the contest timer
	Type      events.Type     `json:"type"`      // Event type
	Timestamp time.Time       `json:"timestamp"` // Event creation time
	Data      json.RawMessage `json:"data"`      // events.TimerPayload
}

// NewTimerEvent builds a TimerEvent carrying payload.
func NewTimerEvent(id string, eventType events.Type, payload events.TimerPayload) (*TimerEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return &TimerEvent{
		ID:        id,
		TimerID:   payload.TimerID,
		Type:      eventType,
		Timestamp: payload.OccurredAt,
		Data:      data,
	}, nil
}

// Payload decodes the event data.
func (e *TimerEvent) Payload() (events.TimerPayload, error) {
	var payload events.TimerPayload
	if err := json.Unmarshal(e.Data, &payload); err != nil {
		return events.TimerPayload{}, fmt.Errorf("unmarshal %s payload: %w", e.Type, err)
	}
	return payload, nil
}
