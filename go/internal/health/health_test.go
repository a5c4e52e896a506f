package health

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type fakeRelay struct {
	running   bool
	processed uint64
	last      time.Time
}

func (r fakeRelay) Running() bool               { return r.running }
func (r fakeRelay) Stats() (uint64, time.Time) { return r.processed, r.last }

type fakePending int

func (p fakePending) PendingEvents(ctx context.Context) (int, error) { return int(p), nil }

func ok(ctx context.Context) error { return nil }

func TestCheckerAllHealthy(t *testing.T) {
	c := NewChecker(time.Minute).Add("store", ok).Add("nats", ok)

	status := c.Check(context.Background())
	if !status.Healthy {
		t.Fatalf("Healthy = false, errors = %v", status.Errors)
	}
	if diff := cmp.Diff(map[string]string{"store": "ok", "nats": "ok"}, status.Checks); diff != "" {
		t.Errorf("checks (-want +got):\n%s", diff)
	}
}

func TestCheckerProbeFailure(t *testing.T) {
	c := NewChecker(time.Minute).
		Add("store", func(ctx context.Context) error { return errors.New("connection refused") })

	rec := httptest.NewRecorder()
	c.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status code = %d, want 503", rec.Code)
	}
	var status Status
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatal(err)
	}
	if status.Checks["store"] != "down" || len(status.Errors) != 1 {
		t.Errorf("status = %+v", status)
	}
}

func TestCheckerRelay(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		relay   fakeRelay
		pending fakePending
		healthy bool
	}{
		{"idle", fakeRelay{running: true}, 0, true},
		{"progressing", fakeRelay{running: true, processed: 4, last: now}, 2, true},
		{"stalled", fakeRelay{running: true, processed: 4, last: now.Add(-time.Hour)}, 2, false},
		{"stopped", fakeRelay{running: false}, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewChecker(time.Minute).Add("store", ok).WithRelay(tc.relay, tc.pending)
			status := c.Check(context.Background())
			if status.Healthy != tc.healthy {
				t.Errorf("Healthy = %v, want %v (errors %v)", status.Healthy, tc.healthy, status.Errors)
			}
			if status.PendingEvents != int(tc.pending) {
				t.Errorf("PendingEvents = %d, want %d", status.PendingEvents, tc.pending)
			}
		})
	}
}

// brokenWriter accepts headers but fails every body write.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (w brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write: broken pipe")
}

func TestServeHTTPLogsEncodeFailure(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	w := brokenWriter{httptest.NewRecorder()}
	NewChecker(time.Minute).Add("store", ok).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz/ready", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(buf.String(), "failed to encode health status") || !strings.Contains(buf.String(), "broken pipe") {
		t.Errorf("log output = %q, want encode failure", buf.String())
	}
}
