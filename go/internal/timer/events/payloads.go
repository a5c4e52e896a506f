package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event payload types that are shared between the timer, outbox and gateway packages

// Type identifies a timer domain event.
type Type string

const (
	TypeTimerStarted Type = "TimerStarted"
	TypeTimerPaused  Type = "TimerPaused"
	TypeTimerReset   Type = "TimerReset"
	TypeTimerExpired Type = "TimerExpired"
	TypeTimerStatus  Type = "TimerStatus"
)

// Known reports whether t is one of the event types above.
func (t Type) Known() bool {
	switch t {
	case TypeTimerStarted, TypeTimerPaused, TypeTimerReset, TypeTimerExpired, TypeTimerStatus:
		return true
	}
	return false
}

// TimerPayload is the timer snapshot carried by every timer event.
// Clients count down locally from Remaining when Paused is false.
type TimerPayload struct {
	TimerID       string    `json:"timer_id"`
	Remaining     int       `json:"remaining"`
	Paused        bool      `json:"paused"`
	IsOver        bool      `json:"isOver"`
	TotalDuration int       `json:"total_duration"`
	Version       int64     `json:"version"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Encode validates an event and returns its JSON payload as stored in the
// outbox.
func Encode(eventType Type, payload TimerPayload) ([]byte, error) {
	if !eventType.Known() {
		return nil, fmt.Errorf("unknown event type %q", eventType)
	}
	if payload.TimerID == "" {
		return nil, fmt.Errorf("invalid %s payload: timer_id is required", eventType)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return data, nil
}
