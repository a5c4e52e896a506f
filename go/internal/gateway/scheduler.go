package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/contest-timer/go/internal/timer/events"
	"github.com/rs/zerolog/log"
)

// ExpiryScheduler turns the running countdown into a TimerExpired
// notification. It keeps at most one pending deadline; any later event
// replaces or cancels it.
type ExpiryScheduler struct {
	clock    clockwork.Clock
	onExpire func(events.TimerPayload)

	mu         sync.Mutex
	active     clockwork.Timer
	stop       chan struct{}
	generation uint64
}

func NewExpiryScheduler(clock clockwork.Clock, onExpire func(events.TimerPayload)) *ExpiryScheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ExpiryScheduler{
		clock:    clock,
		onExpire: onExpire,
	}
}

// Observe updates the pending deadline from a timer event.
func (s *ExpiryScheduler) Observe(ctx context.Context, eventType events.Type, payload events.TimerPayload) {
	switch eventType {
	case events.TypeTimerStarted, events.TypeTimerStatus:
		if payload.Paused || payload.Remaining <= 0 {
			s.Cancel()
			return
		}
		s.schedule(ctx, payload)
	case events.TypeTimerPaused, events.TypeTimerReset, events.TypeTimerExpired:
		s.Cancel()
	}
}

// schedule arms a one-shot timer for the moment remaining reaches zero,
// measured from when the event occurred.
func (s *ExpiryScheduler) schedule(ctx context.Context, payload events.TimerPayload) {
	deadline := payload.OccurredAt.Add(time.Duration(payload.Remaining) * time.Second)
	wait := deadline.Sub(s.clock.Now())
	if wait < 0 {
		wait = 0
	}

	s.mu.Lock()
	s.cancelLocked()
	gen := s.generation
	t := s.clock.NewTimer(wait)
	stop := make(chan struct{})
	s.active = t
	s.stop = stop
	s.mu.Unlock()

	go func() {
		select {
		case <-stop:
		case <-t.Chan():
			if !s.fired(gen) {
				return
			}
			expired := payload
			expired.Remaining = 0
			expired.IsOver = true
			expired.OccurredAt = deadline.UTC()
			log.Info().Int64("version", payload.Version).Msg("timer expired")
			s.onExpire(expired)
		case <-ctx.Done():
			s.mu.Lock()
			if s.generation == gen {
				s.cancelLocked()
			}
			s.mu.Unlock()
		}
	}()

	log.Debug().
		Time("deadline", deadline).
		Dur("wait", wait).
		Msg("scheduled expiry")
}

// fired clears the pending deadline if gen is still current.
func (s *ExpiryScheduler) fired(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		return false
	}
	s.active = nil
	s.stop = nil
	return true
}

// Cancel drops the pending deadline, if any.
func (s *ExpiryScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

func (s *ExpiryScheduler) cancelLocked() {
	s.generation++
	if s.active != nil {
		stopAndDrainTimer(s.active)
		close(s.stop)
		s.active = nil
		s.stop = nil
	}
}

// Pending reports whether an expiry is scheduled.
func (s *ExpiryScheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active != nil
}

// stopAndDrainTimer stops a timer and drains its channel.
func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
