package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Probe reports whether one dependency is usable.
type Probe func(ctx context.Context) error

// Status is the result of a readiness check.
type Status struct {
	Healthy         bool              `json:"healthy"`
	Checks          map[string]string `json:"checks"`
	EventsProcessed uint64            `json:"events_processed,omitempty"`
	PendingEvents   int               `json:"pending_events,omitempty"`
	LastEventTime   *time.Time        `json:"last_event_time,omitempty"`
	Errors          []string          `json:"errors"`
}

// RelayStats is implemented by the outbox listener.
type RelayStats interface {
	Running() bool
	Stats() (uint64, time.Time)
}

// PendingCounter is implemented by the outbox app.
type PendingCounter interface {
	PendingEvents(ctx context.Context) (int, error)
}

// Checker runs named probes and, when an outbox relay is wired, reports its
// progress.
type Checker struct {
	probes    []namedProbe
	relay     RelayStats
	pending   PendingCounter
	threshold time.Duration
	maxQueued int
}

type namedProbe struct {
	name  string
	probe Probe
}

// NewChecker creates a Checker. threshold is how long pending events may sit
// without the relay making progress before the service is reported unhealthy.
func NewChecker(threshold time.Duration) *Checker {
	return &Checker{
		threshold: threshold,
		maxQueued: 1000,
	}
}

// Add registers a named probe.
func (c *Checker) Add(name string, probe Probe) *Checker {
	c.probes = append(c.probes, namedProbe{name: name, probe: probe})
	return c
}

// WithRelay reports outbox progress from relay and pending.
func (c *Checker) WithRelay(relay RelayStats, pending PendingCounter) *Checker {
	c.relay = relay
	c.pending = pending
	return c
}

func (c *Checker) Check(ctx context.Context) Status {
	status := Status{
		Healthy: true,
		Checks:  make(map[string]string, len(c.probes)+1),
		Errors:  []string{},
	}

	for _, p := range c.probes {
		if err := p.probe(ctx); err != nil {
			status.Healthy = false
			status.Checks[p.name] = "down"
			status.Errors = append(status.Errors, fmt.Sprintf("%s: %v", p.name, err))
			continue
		}
		status.Checks[p.name] = "ok"
	}

	if c.relay == nil {
		return status
	}

	processed, last := c.relay.Stats()
	status.EventsProcessed = processed
	if !last.IsZero() {
		status.LastEventTime = &last
	}

	if c.relay.Running() {
		status.Checks["outbox_listener"] = "ok"
	} else {
		status.Healthy = false
		status.Checks["outbox_listener"] = "down"
		status.Errors = append(status.Errors, "listener not active")
	}

	if c.pending == nil {
		return status
	}
	pending, err := c.pending.PendingEvents(ctx)
	if err != nil {
		status.Errors = append(status.Errors, fmt.Sprintf("failed to count pending events: %v", err))
		return status
	}
	status.PendingEvents = pending
	if pending > c.maxQueued {
		status.Errors = append(status.Errors, fmt.Sprintf("high pending event count: %d", pending))
	}
	if pending > 0 && !last.IsZero() && time.Since(last) > c.threshold {
		status.Healthy = false
		status.Errors = append(status.Errors, fmt.Sprintf("no events processed for %s", time.Since(last).Round(time.Second)))
	}

	return status
}

func (c *Checker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := c.Check(ctx)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if !status.Healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(status); err != nil {
		log.Error().Err(err).Msg("failed to encode health status")
	}
}
