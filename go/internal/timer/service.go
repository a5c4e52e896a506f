package timer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcdev12/contest-timer/go/internal/models"
	"github.com/rs/zerolog/log"
)

// TimerApp defines what the HTTP layer needs from the app layer
type TimerApp interface {
	GetStatus(ctx context.Context) (models.TimerStatus, error)
	Start(ctx context.Context) (models.TimerStatus, error)
	Pause(ctx context.Context) (models.TimerStatus, error)
	Reset(ctx context.Context) (models.TimerStatus, error)
}

// CommandResponse is the body returned by the control endpoints.
type CommandResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body of every failed /api request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Service serves the /api/* JSON endpoints.
type Service struct {
	app TimerApp
}

// NewService creates a new timer HTTP service
func NewService(app TimerApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes registers the timer routes with an HTTP mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/time", s.HandleGetTime)
	mux.HandleFunc("/api/start", s.commandHandler("start", s.app.Start))
	mux.HandleFunc("/api/pause", s.commandHandler("pause", s.app.Pause))
	mux.HandleFunc("/api/reset", s.commandHandler("reset", s.app.Reset))
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
	})
}

// HandleGetTime handles GET /api/time
func (s *Service) HandleGetTime(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	status, err := s.app.GetStatus(r.Context())
	if err != nil {
		writeError(w, "get time", err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// commandHandler handles POST /api/{start,pause,reset}
func (s *Service) commandHandler(name string, cmd func(context.Context) (models.TimerStatus, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			methodNotAllowed(w, http.MethodPost)
			return
		}

		if _, err := cmd(r.Context()); err != nil {
			writeError(w, name, err)
			return
		}
		writeJSON(w, http.StatusOK, CommandResponse{Success: true})
	}
}

func methodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
}

// writeError maps app errors to HTTP status codes.
func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrTimerNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Timer not found"})
	case errors.Is(err, ErrStorageUnavailable):
		log.Error().Err(err).Str("op", op).Msg("timer storage unavailable")
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "Timer storage unavailable"})
	default:
		log.Error().Err(err).Str("op", op).Msg("timer request failed")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
