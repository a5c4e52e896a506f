package models

import "time"

// TimerID is the well-known key of the single contest timer record.
const TimerID = "contest"

// DefaultTotalDuration is the contest length used when none is configured (1h30m).
const DefaultTotalDuration = 5400

// TimerMode is either Running or Paused.
type TimerMode interface {
	timerMode()
}

// Running means the timer is counting down from a (possibly reconstructed) start instant.
type Running struct {
	StartedAt time.Time
}

// Paused means the timer is stopped with Remaining seconds left.
type Paused struct {
	Remaining int
}

func (Running) timerMode() {}
func (Paused) timerMode()  {}

// Timer represents the contest timer record.
type Timer struct {
	ID            string    `json:"id"`
	TotalDuration int       `json:"total_duration"` // seconds, immutable after creation
	Mode          TimerMode `json:"-"`
	Version       int64     `json:"version"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewTimer returns the default record: paused with the full duration left.
func NewTimer(totalDuration int) *Timer {
	return &Timer{
		ID:            TimerID,
		TotalDuration: totalDuration,
		Mode:          Paused{Remaining: totalDuration},
	}
}

// IsRunning reports whether the timer is counting down.
func (t *Timer) IsRunning() bool {
	_, ok := t.Mode.(Running)
	return ok
}

// WithMode returns a copy of t in the given mode.
func (t *Timer) WithMode(mode TimerMode) *Timer {
	next := *t
	next.Mode = mode
	return &next
}

// TimerStatus is what clients see when polling the timer.
type TimerStatus struct {
	Remaining int  `json:"remaining"`
	Paused    bool `json:"paused"`
	IsOver    bool `json:"isOver"`
}
