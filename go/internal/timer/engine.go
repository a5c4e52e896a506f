package timer

import (
	"math"
	"time"

	"github.com/looplab/fsm"
	"github.com/mcdev12/contest-timer/go/internal/models"
)

const (
	stateRunning = "running"
	statePaused  = "paused"

	eventStart = "start"
	eventPause = "pause"
	eventReset = "reset"
)

// transitions is the timer lifecycle. "Over" is not a state: it is a paused or
// running timer whose remaining time reached zero.
var transitions = fsm.Events{
	{Name: eventStart, Src: []string{statePaused}, Dst: stateRunning},
	{Name: eventPause, Src: []string{stateRunning}, Dst: statePaused},
	{Name: eventReset, Src: []string{stateRunning, statePaused}, Dst: statePaused},
}

func currentState(t *models.Timer) string {
	if t.IsRunning() {
		return stateRunning
	}
	return statePaused
}

// permitted reports whether event is a transition out of t's current state.
func permitted(t *models.Timer, event string) bool {
	return fsm.NewFSM(currentState(t), transitions, fsm.Callbacks{}).Can(event)
}

// Remaining returns the whole seconds left on t at now, clamped to [0, TotalDuration].
func Remaining(t *models.Timer, now time.Time) int {
	switch m := t.Mode.(type) {
	case models.Running:
		if m.StartedAt.IsZero() {
			return t.TotalDuration
		}
		elapsed := int(math.Floor(now.Sub(m.StartedAt).Seconds()))
		return clamp(t.TotalDuration-elapsed, t.TotalDuration)
	case models.Paused:
		return clamp(m.Remaining, t.TotalDuration)
	default:
		return t.TotalDuration
	}
}

func clamp(remaining, total int) int {
	return max(0, min(remaining, total))
}

// Start resumes a paused timer so that elapsed time continues from where it
// stopped. Starting a running timer is a no-op. The returned bool reports
// whether the state changed.
func Start(t *models.Timer, now time.Time) (*models.Timer, bool) {
	if running, ok := t.Mode.(models.Running); ok && running.StartedAt.IsZero() {
		return t.WithMode(models.Running{StartedAt: now}), true
	}
	if !permitted(t, eventStart) {
		return t, false
	}

	elapsed := t.TotalDuration - Remaining(t, now)
	startedAt := now.Add(-time.Duration(elapsed) * time.Second)
	return t.WithMode(models.Running{StartedAt: startedAt}), true
}

// Pause snapshots the remaining time of a running timer. Pausing a paused
// timer is a no-op.
func Pause(t *models.Timer, now time.Time) (*models.Timer, bool) {
	if !permitted(t, eventPause) {
		return t, false
	}
	return t.WithMode(models.Paused{Remaining: Remaining(t, now)}), true
}

// Reset pauses the timer with the full duration left. TotalDuration is kept.
func Reset(t *models.Timer, now time.Time) (*models.Timer, bool) {
	if !permitted(t, eventReset) {
		return t, false
	}
	if paused, ok := t.Mode.(models.Paused); ok && paused.Remaining == t.TotalDuration {
		return t, false
	}
	return t.WithMode(models.Paused{Remaining: t.TotalDuration}), true
}

// Status is the client-facing view of t at now.
func Status(t *models.Timer, now time.Time) models.TimerStatus {
	remaining := Remaining(t, now)
	return models.TimerStatus{
		Remaining: remaining,
		Paused:    !t.IsRunning(),
		IsOver:    remaining <= 0,
	}
}
