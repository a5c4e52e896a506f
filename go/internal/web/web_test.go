package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func get(t *testing.T, h http.Handler, target string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	body, _ := io.ReadAll(rec.Result().Body)
	return rec.Code, string(body)
}

func TestEmbeddedClient(t *testing.T) {
	h := Handler("")

	for _, target := range []string{"/", "/some/client/route"} {
		code, body := get(t, h, target)
		if code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", target, code)
		}
		if !strings.Contains(body, `id="timer"`) {
			t.Errorf("GET %s did not return index.html", target)
		}
	}

	code, body := get(t, h, "/script.js")
	if code != http.StatusOK || !strings.Contains(body, "/api/time") {
		t.Errorf("GET /script.js = %d", code)
	}
}

func TestClientFromDisk(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("custom build"), 0o644); err != nil {
		t.Fatal(err)
	}

	code, body := get(t, Handler(dir), "/missing.png")
	if code != http.StatusOK || body != "custom build" {
		t.Errorf("GET /missing.png = %d %q", code, body)
	}
}

func TestRejectsWrites(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler("").ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST / = %d, want 405", rec.Code)
	}
}
