package timer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/contest-timer/go/internal/models"
	"github.com/mcdev12/contest-timer/go/internal/timer/events"
	"github.com/rs/zerolog/log"
)

// TimerRepository defines what the app layer needs from the timer store
type TimerRepository interface {
	Get(ctx context.Context) (*models.Timer, error)
	CreateDefault(ctx context.Context, totalDuration int) (*models.Timer, error)
	// Save stores t. eventType names the change so stores that keep an
	// outbox can record it atomically; other stores ignore it.
	Save(ctx context.Context, t *models.Timer, eventType events.Type) (*models.Timer, error)
	Ping(ctx context.Context) error
}

// EventEmitter receives a timer event after every state change. Leave it nil
// when the repository writes events itself.
type EventEmitter interface {
	Emit(ctx context.Context, eventType events.Type, payload events.TimerPayload) error
}

// Config holds the app settings read at startup.
type Config struct {
	TotalDuration int  // seconds, used only when the record is created
	LazyCreate    bool // create the record on first request instead of answering ErrTimerNotFound
}

// App handles timer business logic.
//
// Every command is a read-modify-write against the store with no lock and no
// version check: two commands interleaving between their Get and Save lose
// one update (last writer wins). Commands are idempotent in effect, so
// re-issuing converges.
type App struct {
	repo    TimerRepository
	emitter EventEmitter
	clock   clockwork.Clock
	cfg     Config
}

// NewApp creates a new timer App. emitter may be nil.
func NewApp(repo TimerRepository, emitter EventEmitter, clock clockwork.Clock, cfg Config) *App {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if cfg.TotalDuration <= 0 {
		cfg.TotalDuration = models.DefaultTotalDuration
	}
	return &App{
		repo:    repo,
		emitter: emitter,
		clock:   clock,
		cfg:     cfg,
	}
}

// Init creates the timer record if it does not exist yet.
func (a *App) Init(ctx context.Context) (*models.Timer, error) {
	t, err := a.repo.CreateDefault(ctx, a.cfg.TotalDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize timer: %w", err)
	}

	if t.TotalDuration != a.cfg.TotalDuration {
		log.Warn().
			Int("stored_duration", t.TotalDuration).
			Int("configured_duration", a.cfg.TotalDuration).
			Msg("timer already exists with a different duration; keeping stored duration")
	}

	log.Info().
		Int("total_duration", t.TotalDuration).
		Int("remaining", Remaining(t, a.clock.Now())).
		Bool("running", t.IsRunning()).
		Msg("timer initialized")
	return t, nil
}

// GetStatus returns the remaining time of the timer.
func (a *App) GetStatus(ctx context.Context) (models.TimerStatus, error) {
	t, err := a.load(ctx)
	if err != nil {
		return models.TimerStatus{}, err
	}
	return Status(t, a.clock.Now()), nil
}

// Snapshot returns the current timer state in event form, for clients that
// have just connected.
func (a *App) Snapshot(ctx context.Context) (events.TimerPayload, error) {
	t, err := a.load(ctx)
	if err != nil {
		return events.TimerPayload{}, err
	}
	return eventPayload(t, a.clock.Now()), nil
}

// Start starts or resumes the timer.
func (a *App) Start(ctx context.Context) (models.TimerStatus, error) {
	return a.apply(ctx, eventStart, Start, events.TypeTimerStarted)
}

// Pause pauses a running timer.
func (a *App) Pause(ctx context.Context) (models.TimerStatus, error) {
	return a.apply(ctx, eventPause, Pause, events.TypeTimerPaused)
}

// Reset pauses the timer with the full duration left.
func (a *App) Reset(ctx context.Context) (models.TimerStatus, error) {
	return a.apply(ctx, eventReset, Reset, events.TypeTimerReset)
}

// Ping checks that the store is reachable.
func (a *App) Ping(ctx context.Context) error {
	return a.repo.Ping(ctx)
}

type command func(t *models.Timer, now time.Time) (*models.Timer, bool)

func (a *App) apply(ctx context.Context, name string, cmd command, eventType events.Type) (models.TimerStatus, error) {
	current, err := a.load(ctx)
	if err != nil {
		return models.TimerStatus{}, err
	}

	now := a.clock.Now()
	next, changed := cmd(current, now)
	if !changed {
		log.Debug().
			Str("command", name).
			Bool("running", current.IsRunning()).
			Msg("timer command is a no-op")
		return Status(current, now), nil
	}

	next.UpdatedAt = now.UTC()
	saved, err := a.repo.Save(ctx, next, eventType)
	if err != nil {
		return models.TimerStatus{}, fmt.Errorf("failed to %s timer: %w", name, err)
	}

	status := Status(saved, now)
	log.Info().
		Str("command", name).
		Int("remaining", status.Remaining).
		Bool("paused", status.Paused).
		Int64("version", saved.Version).
		Msg("timer updated")

	a.emit(ctx, eventType, eventPayload(saved, now))
	return status, nil
}

// load returns the timer record, creating it first when lazy creation is on.
func (a *App) load(ctx context.Context) (*models.Timer, error) {
	t, err := a.repo.Get(ctx)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, ErrTimerNotFound) || !a.cfg.LazyCreate {
		return nil, err
	}

	log.Info().Msg("timer not found, creating default record")
	return a.repo.CreateDefault(ctx, a.cfg.TotalDuration)
}

// eventPayload describes t as seen at now.
func eventPayload(t *models.Timer, now time.Time) events.TimerPayload {
	status := Status(t, now)
	return events.TimerPayload{
		TimerID:       t.ID,
		Remaining:     status.Remaining,
		Paused:        status.Paused,
		IsOver:        status.IsOver,
		TotalDuration: t.TotalDuration,
		Version:       t.Version,
		OccurredAt:    now.UTC(),
	}
}

// emit never fails the command; the state is already saved.
func (a *App) emit(ctx context.Context, eventType events.Type, payload events.TimerPayload) {
	if a.emitter == nil {
		return
	}
	if err := a.emitter.Emit(ctx, eventType, payload); err != nil {
		log.Error().
			Err(err).
			Str("event_type", string(eventType)).
			Msg("failed to emit timer event")
	}
}
