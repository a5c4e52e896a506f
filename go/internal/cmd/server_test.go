package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"connectrpc.com/grpcreflect"

	timerv1 "github.com/mcdev12/contest-timer/go/internal/genproto/timer/v1"
	"github.com/mcdev12/contest-timer/go/internal/genproto/timer/v1/timerv1connect"
)

func newMemoryServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(newMemoryHandler(t))
	t.Cleanup(srv.Close)
	return srv
}

func newMemoryHandler(t *testing.T) http.Handler {
	t.Helper()
	clearConfigEnv(t)
	t.Setenv("TIMER_STORE", "memory")
	t.Setenv("TOTAL_DURATION", "120")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	store, err := setupStore(ctx, cfg)
	if err != nil {
		t.Fatal(err)
	}
	services, err := setupServices(ctx, cfg, store)
	if err != nil {
		t.Fatalf("setupServices() error = %v", err)
	}
	services.Run(ctx)

	return setupServer(cfg, services).Handler
}

func fetch(t *testing.T, method, url string) (int, string) {
	t.Helper()
	req, _ := http.NewRequest(method, url, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestServerRoutes(t *testing.T) {
	srv := newMemoryServer(t)

	code, body := fetch(t, http.MethodGet, srv.URL+"/api/time")
	if code != http.StatusOK || !strings.Contains(body, `"remaining":120`) {
		t.Errorf("GET /api/time = %d %s", code, body)
	}

	code, body = fetch(t, http.MethodPost, srv.URL+"/api/start")
	if code != http.StatusOK || !strings.Contains(body, `"success":true`) {
		t.Errorf("POST /api/start = %d %s", code, body)
	}

	code, body = fetch(t, http.MethodGet, srv.URL+"/health")
	if code != http.StatusOK || body != "OK" {
		t.Errorf("GET /health = %d %s", code, body)
	}

	code, body = fetch(t, http.MethodGet, srv.URL+"/healthz/ready")
	var ready struct {
		Healthy bool              `json:"healthy"`
		Checks  map[string]string `json:"checks"`
	}
	if err := json.Unmarshal([]byte(body), &ready); err != nil {
		t.Fatalf("GET /healthz/ready body %q: %v", body, err)
	}
	if code != http.StatusOK || !ready.Healthy || ready.Checks["store"] != "ok" {
		t.Errorf("GET /healthz/ready = %d %s", code, body)
	}

	code, body = fetch(t, http.MethodGet, srv.URL+"/")
	if code != http.StatusOK || !strings.Contains(body, "Contest Timer") {
		t.Errorf("GET / = %d", code)
	}

	code, _ = fetch(t, http.MethodGet, srv.URL+"/api/nope")
	if code != http.StatusNotFound {
		t.Errorf("GET /api/nope = %d, want 404", code)
	}
}

func TestServerRPC(t *testing.T) {
	srv := newMemoryServer(t)

	client := timerv1connect.NewTimerServiceClient(srv.Client(), srv.URL)
	res, err := client.Pause(context.Background(), connect.NewRequest(&timerv1.PauseRequest{}))
	if err != nil {
		t.Fatalf("Pause error = %v", err)
	}
	if res.Msg.GetRemaining() != 120 || !res.Msg.GetPaused() {
		t.Errorf("Pause response = %v", res.Msg)
	}
}

func TestServerReflection(t *testing.T) {
	srv := httptest.NewUnstartedServer(newMemoryHandler(t))
	srv.EnableHTTP2 = true
	srv.StartTLS()
	t.Cleanup(srv.Close)

	stream := grpcreflect.NewClient(srv.Client(), srv.URL).NewStream(context.Background())
	defer stream.Close()

	names, err := stream.ListServices()
	if err != nil {
		t.Fatalf("ListServices() error = %v", err)
	}
	for _, name := range names {
		if string(name) == timerv1connect.TimerServiceName {
			return
		}
	}
	t.Errorf("ListServices() = %v, want %s", names, timerv1connect.TimerServiceName)
}
