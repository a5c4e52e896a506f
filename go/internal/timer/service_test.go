package timer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
)

func newTestServer(t *testing.T, app TimerApp) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	NewService(app).RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, method, url string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("%s %s Content-Type = %q, want application/json", method, url, ct)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode %s %s: %v", method, url, err)
	}
	return resp.StatusCode, body
}

func TestServiceControlFlow(t *testing.T) {
	clock := clockwork.NewFakeClockAt(t0)
	app := NewApp(NewMemoryRepository(), nil, clock, Config{TotalDuration: 10, LazyCreate: true})
	srv := newTestServer(t, app)

	code, body := doRequest(t, http.MethodGet, srv.URL+"/api/time")
	if code != http.StatusOK {
		t.Fatalf("GET /api/time = %d", code)
	}
	if diff := cmp.Diff(map[string]any{"remaining": 10.0, "paused": true, "isOver": false}, body); diff != "" {
		t.Errorf("initial body (-want +got):\n%s", diff)
	}

	for _, path := range []string{"/api/start", "/api/pause", "/api/start"} {
		code, body = doRequest(t, http.MethodPost, srv.URL+path)
		if code != http.StatusOK {
			t.Fatalf("POST %s = %d", path, code)
		}
		if diff := cmp.Diff(map[string]any{"success": true}, body); diff != "" {
			t.Errorf("POST %s body (-want +got):\n%s", path, diff)
		}
	}

	clock.Advance(15 * time.Second)
	_, body = doRequest(t, http.MethodGet, srv.URL+"/api/time")
	if diff := cmp.Diff(map[string]any{"remaining": 0.0, "paused": false, "isOver": true}, body); diff != "" {
		t.Errorf("expired body (-want +got):\n%s", diff)
	}

	doRequest(t, http.MethodPost, srv.URL+"/api/reset")
	_, body = doRequest(t, http.MethodGet, srv.URL+"/api/time")
	if diff := cmp.Diff(map[string]any{"remaining": 10.0, "paused": true, "isOver": false}, body); diff != "" {
		t.Errorf("reset body (-want +got):\n%s", diff)
	}
}

func TestServiceTimerNotFound(t *testing.T) {
	app := NewApp(NewMemoryRepository(), nil, clockwork.NewFakeClockAt(t0), Config{LazyCreate: false})
	srv := newTestServer(t, app)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/time"},
		{http.MethodPost, "/api/start"},
		{http.MethodPost, "/api/pause"},
		{http.MethodPost, "/api/reset"},
	} {
		code, body := doRequest(t, tc.method, srv.URL+tc.path)
		if code != http.StatusNotFound {
			t.Errorf("%s %s = %d, want 404", tc.method, tc.path, code)
		}
		if diff := cmp.Diff(map[string]any{"error": "Timer not found"}, body); diff != "" {
			t.Errorf("%s %s body (-want +got):\n%s", tc.method, tc.path, diff)
		}
	}
}

func TestServiceStorageUnavailable(t *testing.T) {
	app := NewApp(failingRepo{err: ErrStorageUnavailable}, nil, clockwork.NewFakeClockAt(t0), Config{LazyCreate: true})
	srv := newTestServer(t, app)

	code, body := doRequest(t, http.MethodPost, srv.URL+"/api/start")
	if code != http.StatusServiceUnavailable {
		t.Errorf("POST /api/start = %d, want 503", code)
	}
	if body["error"] != "Timer storage unavailable" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestServiceMethodNotAllowed(t *testing.T) {
	app := NewApp(NewMemoryRepository(), nil, clockwork.NewFakeClockAt(t0), Config{LazyCreate: true})
	srv := newTestServer(t, app)

	code, _ := doRequest(t, http.MethodGet, srv.URL+"/api/start")
	if code != http.StatusMethodNotAllowed {
		t.Errorf("GET /api/start = %d, want 405", code)
	}
	code, _ = doRequest(t, http.MethodPost, srv.URL+"/api/time")
	if code != http.StatusMethodNotAllowed {
		t.Errorf("POST /api/time = %d, want 405", code)
	}
	code, _ = doRequest(t, http.MethodGet, srv.URL+"/api/unknown")
	if code != http.StatusNotFound {
		t.Errorf("GET /api/unknown = %d, want 404", code)
	}
}
