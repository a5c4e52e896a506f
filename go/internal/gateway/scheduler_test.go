package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/contest-timer/go/internal/timer/events"
)

var t0 = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func newTestScheduler(t *testing.T) (*ExpiryScheduler, *clockwork.FakeClock, chan events.TimerPayload) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(t0)
	fired := make(chan events.TimerPayload, 4)
	return NewExpiryScheduler(clock, func(p events.TimerPayload) { fired <- p }), clock, fired
}

func expectNoExpiry(t *testing.T, fired <-chan events.TimerPayload) {
	t.Helper()
	select {
	case p := <-fired:
		t.Fatalf("unexpected expiry %+v", p)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestExpirySchedulerFiresAtDeadline(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s, clock, fired := newTestScheduler(t)

	s.Observe(ctx, events.TypeTimerStarted, events.TimerPayload{
		TimerID:    "contest",
		Remaining:  10,
		Version:    3,
		OccurredAt: t0,
	})
	if !s.Pending() {
		t.Fatal("no expiry pending after start")
	}

	clock.Advance(9 * time.Second)
	expectNoExpiry(t, fired)

	clock.Advance(time.Second)
	select {
	case p := <-fired:
		if p.Remaining != 0 || !p.IsOver || p.Paused {
			t.Errorf("expired payload = %+v", p)
		}
		if !p.OccurredAt.Equal(t0.Add(10 * time.Second)) {
			t.Errorf("OccurredAt = %v, want deadline", p.OccurredAt)
		}
		if p.Version != 3 {
			t.Errorf("Version = %d, want 3", p.Version)
		}
	case <-time.After(time.Second):
		t.Fatal("expiry did not fire")
	}
	if s.Pending() {
		t.Error("expiry still pending after firing")
	}
}

func TestExpirySchedulerCancelledByPause(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s, clock, fired := newTestScheduler(t)

	s.Observe(ctx, events.TypeTimerStarted, events.TimerPayload{Remaining: 5, OccurredAt: t0})
	s.Observe(ctx, events.TypeTimerPaused, events.TimerPayload{Remaining: 3, Paused: true, OccurredAt: t0.Add(2 * time.Second)})

	clock.Advance(time.Minute)
	expectNoExpiry(t, fired)
	if s.Pending() {
		t.Error("expiry pending after pause")
	}
}

func TestExpirySchedulerRescheduleReplacesDeadline(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s, clock, fired := newTestScheduler(t)

	s.Observe(ctx, events.TypeTimerStarted, events.TimerPayload{Remaining: 5, OccurredAt: t0})
	s.Observe(ctx, events.TypeTimerStarted, events.TimerPayload{Remaining: 30, OccurredAt: t0})

	clock.Advance(10 * time.Second)
	expectNoExpiry(t, fired)

	clock.Advance(20 * time.Second)
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("rescheduled expiry did not fire")
	}
	expectNoExpiry(t, fired)
}

func TestExpirySchedulerIgnoresPausedOrExpiredSnapshots(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestScheduler(t)

	s.Observe(ctx, events.TypeTimerStatus, events.TimerPayload{Remaining: 100, Paused: true, OccurredAt: t0})
	if s.Pending() {
		t.Error("paused snapshot scheduled an expiry")
	}
	s.Observe(ctx, events.TypeTimerStatus, events.TimerPayload{Remaining: 0, IsOver: true, OccurredAt: t0})
	if s.Pending() {
		t.Error("expired snapshot scheduled an expiry")
	}
}
