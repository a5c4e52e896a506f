package timer

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mcdev12/contest-timer/go/internal/models"
	"github.com/mcdev12/contest-timer/go/internal/timer/db"
	"github.com/mcdev12/contest-timer/go/internal/timer/events"
)

// fakeQuerier is a single-row table with an outbox.
type fakeQuerier struct {
	row       *db.Timer
	err       error
	outboxErr error
	updates   []db.UpdateTimerParams
	outbox    []db.InsertTimerOutboxEventParams
}

// transact runs fn and restores the table and outbox when it fails.
func (q *fakeQuerier) transact(ctx context.Context, fn func(Querier) error) error {
	var row *db.Timer
	if q.row != nil {
		saved := *q.row
		row = &saved
	}
	outbox := len(q.outbox)

	if err := fn(q); err != nil {
		q.row = row
		q.outbox = q.outbox[:outbox]
		return err
	}
	return nil
}

func (q *fakeQuerier) InsertTimerOutboxEvent(ctx context.Context, arg db.InsertTimerOutboxEventParams) error {
	if q.outboxErr != nil {
		return q.outboxErr
	}
	q.outbox = append(q.outbox, arg)
	return nil
}

func (q *fakeQuerier) GetTimer(ctx context.Context, id string) (db.Timer, error) {
	if q.err != nil {
		return db.Timer{}, q.err
	}
	if q.row == nil || q.row.ID != id {
		return db.Timer{}, sql.ErrNoRows
	}
	return *q.row, nil
}

func (q *fakeQuerier) InsertTimerIfAbsent(ctx context.Context, arg db.InsertTimerIfAbsentParams) error {
	if q.err != nil {
		return q.err
	}
	if q.row != nil {
		return nil
	}
	q.row = &db.Timer{
		ID:              arg.ID,
		TotalDuration:   arg.TotalDuration,
		Paused:          true,
		PausedRemaining: sql.NullInt32{Int32: arg.TotalDuration, Valid: true},
		UpdatedAt:       arg.UpdatedAt,
	}
	return nil
}

func (q *fakeQuerier) UpdateTimer(ctx context.Context, arg db.UpdateTimerParams) (db.Timer, error) {
	if q.err != nil {
		return db.Timer{}, q.err
	}
	if q.row == nil {
		return db.Timer{}, sql.ErrNoRows
	}
	q.updates = append(q.updates, arg)
	q.row.StartTime = arg.StartTime
	q.row.Paused = arg.Paused
	q.row.PausedRemaining = arg.PausedRemaining
	q.row.UpdatedAt = arg.UpdatedAt
	q.row.Version++
	return *q.row, nil
}

func TestRepositoryGetMissing(t *testing.T) {
	repo := NewRepository(&fakeQuerier{}, nil)
	if _, err := repo.Get(context.Background()); !errors.Is(err, ErrTimerNotFound) {
		t.Errorf("Get() error = %v, want ErrTimerNotFound", err)
	}
}

func TestRepositoryCreateDefaultIsIdempotent(t *testing.T) {
	ctx := context.Background()
	q := &fakeQuerier{}
	repo := NewRepository(q, nil)

	first, err := repo.CreateDefault(ctx, 5400)
	if err != nil {
		t.Fatalf("CreateDefault() error = %v", err)
	}
	second, err := repo.CreateDefault(ctx, 60)
	if err != nil {
		t.Fatalf("CreateDefault() error = %v", err)
	}

	for _, tmr := range []*models.Timer{first, second} {
		if tmr.TotalDuration != 5400 {
			t.Errorf("TotalDuration = %d, want 5400", tmr.TotalDuration)
		}
		if diff := cmp.Diff(models.TimerMode(models.Paused{Remaining: 5400}), tmr.Mode); diff != "" {
			t.Errorf("mode mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestRepositorySaveRunningAndPaused(t *testing.T) {
	ctx := context.Background()
	q := &fakeQuerier{}
	repo := NewRepository(q, nil)
	if _, err := repo.CreateDefault(ctx, 600); err != nil {
		t.Fatal(err)
	}

	startedAt := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	saved, err := repo.Save(ctx, &models.Timer{
		TotalDuration: 600,
		Mode:          models.Running{StartedAt: startedAt},
		UpdatedAt:     startedAt,
	}, events.TypeTimerStarted)
	if err != nil {
		t.Fatalf("Save(running) error = %v", err)
	}
	wantRunning := db.UpdateTimerParams{
		ID:        models.TimerID,
		StartTime: sql.NullTime{Time: startedAt, Valid: true},
		Paused:    false,
		UpdatedAt: startedAt,
	}
	if diff := cmp.Diff(wantRunning, q.updates[0]); diff != "" {
		t.Errorf("running params (-want +got):\n%s", diff)
	}
	if saved.Version != 1 || !saved.IsRunning() {
		t.Errorf("saved = %+v, want running version 1", saved)
	}

	saved, err = repo.Save(ctx, &models.Timer{
		TotalDuration: 600,
		Mode:          models.Paused{Remaining: 321},
		UpdatedAt:     startedAt,
	}, events.TypeTimerPaused)
	if err != nil {
		t.Fatalf("Save(paused) error = %v", err)
	}
	wantPaused := db.UpdateTimerParams{
		ID:              models.TimerID,
		Paused:          true,
		PausedRemaining: sql.NullInt32{Int32: 321, Valid: true},
		UpdatedAt:       startedAt,
	}
	if diff := cmp.Diff(wantPaused, q.updates[1]); diff != "" {
		t.Errorf("paused params (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(models.TimerMode(models.Paused{Remaining: 321}), saved.Mode); diff != "" {
		t.Errorf("saved mode (-want +got):\n%s", diff)
	}
}

func TestRepositorySaveWithoutOutboxWritesNoEvent(t *testing.T) {
	ctx := context.Background()
	q := &fakeQuerier{}
	repo := NewRepository(q, nil)
	if _, err := repo.CreateDefault(ctx, 60); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Save(ctx, &models.Timer{Mode: models.Running{StartedAt: t0}}, events.TypeTimerStarted); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if len(q.outbox) != 0 {
		t.Errorf("outbox has %d events, want 0", len(q.outbox))
	}
}

func TestRepositorySaveWritesOutboxEvent(t *testing.T) {
	ctx := context.Background()
	q := &fakeQuerier{}
	repo := NewRepository(q, nil).WithOutbox()
	repo.inTx = q.transact
	if _, err := repo.CreateDefault(ctx, 600); err != nil {
		t.Fatal(err)
	}

	saved, err := repo.Save(ctx, &models.Timer{
		Mode:      models.Running{StartedAt: t0},
		UpdatedAt: t0.Add(30 * time.Second),
	}, events.TypeTimerStarted)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if len(q.outbox) != 1 {
		t.Fatalf("outbox has %d events, want 1", len(q.outbox))
	}
	event := q.outbox[0]
	if event.TimerID != models.TimerID || event.EventType != string(events.TypeTimerStarted) || !event.Payload.Valid {
		t.Errorf("outbox event = %+v", event)
	}
	var payload events.TimerPayload
	if err := json.Unmarshal(event.Payload.RawMessage, &payload); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	want := events.TimerPayload{
		TimerID:       models.TimerID,
		Remaining:     570,
		TotalDuration: 600,
		Version:       saved.Version,
		OccurredAt:    t0.Add(30 * time.Second),
	}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Errorf("payload (-want +got):\n%s", diff)
	}
}

func TestRepositoryFailedOutboxInsertRollsBackSave(t *testing.T) {
	ctx := context.Background()
	outboxErr := errors.New("pq: relation \"timer_outbox\" does not exist")
	q := &fakeQuerier{outboxErr: outboxErr}
	repo := NewRepository(q, nil).WithOutbox()
	repo.inTx = q.transact
	if _, err := repo.CreateDefault(ctx, 600); err != nil {
		t.Fatal(err)
	}

	_, err := repo.Save(ctx, &models.Timer{Mode: models.Running{StartedAt: t0}}, events.TypeTimerStarted)
	if !errors.Is(err, ErrStorageUnavailable) || !errors.Is(err, outboxErr) {
		t.Fatalf("Save() error = %v, want ErrStorageUnavailable wrapping the insert error", err)
	}
	if len(q.updates) != 1 {
		t.Errorf("UpdateTimer calls = %d, want 1 inside the transaction", len(q.updates))
	}

	stored, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.Version != 0 {
		t.Errorf("Version = %d, want 0 after rollback", stored.Version)
	}
	if diff := cmp.Diff(models.TimerMode(models.Paused{Remaining: 600}), stored.Mode); diff != "" {
		t.Errorf("stored mode after rollback (-want +got):\n%s", diff)
	}
}

func TestRepositoryPausedWithoutSnapshotReportsFullDuration(t *testing.T) {
	q := &fakeQuerier{row: &db.Timer{ID: models.TimerID, TotalDuration: 90, Paused: true}}
	tmr, err := NewRepository(q, nil).Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got := Remaining(tmr, time.Now()); got != 90 {
		t.Errorf("Remaining = %d, want 90", got)
	}
}

func TestRepositoryRunningWithoutStartTime(t *testing.T) {
	q := &fakeQuerier{row: &db.Timer{ID: models.TimerID, TotalDuration: 90, Paused: false}}
	tmr, err := NewRepository(q, nil).Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if diff := cmp.Diff(models.TimerMode(models.Running{}), tmr.Mode); diff != "" {
		t.Errorf("mode mismatch (-want +got):\n%s", diff)
	}
}

func TestRepositoryWrapsDriverErrors(t *testing.T) {
	ctx := context.Background()
	driverErr := errors.New("connection refused")
	repo := NewRepository(&fakeQuerier{err: driverErr}, nil)

	_, err := repo.Get(ctx)
	if !errors.Is(err, ErrStorageUnavailable) || !errors.Is(err, driverErr) {
		t.Errorf("Get() error = %v, want ErrStorageUnavailable wrapping driver error", err)
	}
	_, err = repo.CreateDefault(ctx, 10)
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("CreateDefault() error = %v, want ErrStorageUnavailable", err)
	}
	_, err = repo.Save(ctx, models.NewTimer(10), events.TypeTimerReset)
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("Save() error = %v, want ErrStorageUnavailable", err)
	}
}

func TestRepositorySaveMissingRow(t *testing.T) {
	_, err := NewRepository(&fakeQuerier{}, nil).Save(context.Background(), models.NewTimer(10), events.TypeTimerReset)
	if !errors.Is(err, ErrTimerNotFound) {
		t.Errorf("Save() error = %v, want ErrTimerNotFound", err)
	}
}

func TestMemoryRepositoryKeepsTotalDuration(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	if _, err := repo.Save(ctx, models.NewTimer(10), events.TypeTimerReset); !errors.Is(err, ErrTimerNotFound) {
		t.Errorf("Save() before create error = %v, want ErrTimerNotFound", err)
	}
	if _, err := repo.CreateDefault(ctx, 100); err != nil {
		t.Fatal(err)
	}
	saved, err := repo.Save(ctx, &models.Timer{TotalDuration: 1, Mode: models.Paused{Remaining: 50}}, events.TypeTimerPaused)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.TotalDuration != 100 || saved.Version != 1 {
		t.Errorf("saved = %+v, want duration 100 version 1", saved)
	}
}
