package timer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/contest-timer/go/internal/models"
	"github.com/mcdev12/contest-timer/go/internal/sqlutil"
	"github.com/mcdev12/contest-timer/go/internal/timer/db"
	"github.com/mcdev12/contest-timer/go/internal/timer/events"
	"github.com/rs/zerolog/log"
	"github.com/sqlc-dev/pqtype"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetTimer(ctx context.Context, id string) (db.Timer, error)
	InsertTimerIfAbsent(ctx context.Context, arg db.InsertTimerIfAbsentParams) error
	UpdateTimer(ctx context.Context, arg db.UpdateTimerParams) (db.Timer, error)
	InsertTimerOutboxEvent(ctx context.Context, arg db.InsertTimerOutboxEventParams) error
}

// txRunner runs fn against queries bound to a single transaction.
type txRunner func(ctx context.Context, fn func(q Querier) error) error

// Repository stores the timer record in a SQL database (Postgres or SQLite).
type Repository struct {
	queries Querier
	db      *sql.DB
	inTx    txRunner
	outbox  bool
}

// NewRepository creates a new timer repository. database may be nil, in which
// case writes run without a transaction and Ping always succeeds.
func NewRepository(querier Querier, database *sql.DB) *Repository {
	r := &Repository{
		queries: querier,
		db:      database,
	}
	r.inTx = r.runInTx
	return r
}

// WithOutbox makes Save write the command's event to timer_outbox in the same
// transaction as the state update. The row is only visible, and its NOTIFY
// only fires, once both writes commit.
func (r *Repository) WithOutbox() *Repository {
	r.outbox = true
	return r
}

func (r *Repository) runInTx(ctx context.Context, fn func(q Querier) error) error {
	if r.db == nil {
		return fn(r.queries)
	}
	return sqlutil.Run(ctx, r.db, func(tx *sql.Tx) *db.Queries { return db.New(tx) }, func(q *db.Queries) error {
		return fn(q)
	})
}

// Get returns the timer record or ErrTimerNotFound.
func (r *Repository) Get(ctx context.Context) (*models.Timer, error) {
	return r.get(ctx, r.queries)
}

func (r *Repository) get(ctx context.Context, q Querier) (*models.Timer, error) {
	row, err := q.GetTimer(ctx, models.TimerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTimerNotFound
		}
		return nil, fmt.Errorf("failed to get timer: %w: %w", ErrStorageUnavailable, err)
	}
	return r.dbTimerToModel(row), nil
}

// CreateDefault inserts the default record unless one exists and returns the
// stored record. Concurrent callers converge on the same row through the
// primary key conflict.
func (r *Repository) CreateDefault(ctx context.Context, totalDuration int) (*models.Timer, error) {
	var created *models.Timer
	err := r.inTx(ctx, func(q Querier) error {
		var err error
		created, err = r.createDefault(ctx, q, totalDuration)
		return err
	})
	if err != nil {
		return nil, txError("create timer", err)
	}
	return created, nil
}

func (r *Repository) createDefault(ctx context.Context, q Querier, totalDuration int) (*models.Timer, error) {
	err := q.InsertTimerIfAbsent(ctx, db.InsertTimerIfAbsentParams{
		ID:            models.TimerID,
		TotalDuration: int32(totalDuration),
		UpdatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert timer: %w: %w", ErrStorageUnavailable, err)
	}
	return r.get(ctx, q)
}

// Save persists the full state of t and returns the stored record with its new
// version. With the outbox enabled, an event of eventType describing the
// stored record is inserted in the same transaction; if that insert fails the
// update is rolled back.
func (r *Repository) Save(ctx context.Context, t *models.Timer, eventType events.Type) (*models.Timer, error) {
	params, err := updateParams(t)
	if err != nil {
		return nil, err
	}

	if !r.outbox {
		return r.save(ctx, r.queries, params)
	}

	var saved *models.Timer
	err = r.inTx(ctx, func(q Querier) error {
		var err error
		saved, err = r.save(ctx, q, params)
		if err != nil {
			return err
		}
		return r.insertEvent(ctx, q, eventType, saved, params.UpdatedAt)
	})
	if err != nil {
		return nil, txError("save timer", err)
	}
	return saved, nil
}

func updateParams(t *models.Timer) (db.UpdateTimerParams, error) {
	params := db.UpdateTimerParams{
		ID:        models.TimerID,
		UpdatedAt: t.UpdatedAt,
	}
	if params.UpdatedAt.IsZero() {
		params.UpdatedAt = time.Now().UTC()
	}

	switch m := t.Mode.(type) {
	case models.Running:
		params.StartTime = sqlutil.ToSqlTime(&m.StartedAt)
		params.Paused = false
	case models.Paused:
		remaining := m.Remaining
		params.Paused = true
		params.PausedRemaining = sqlutil.ToSqlInt32(&remaining)
	default:
		return params, fmt.Errorf("cannot save timer in mode %T", t.Mode)
	}
	return params, nil
}

func (r *Repository) save(ctx context.Context, q Querier, params db.UpdateTimerParams) (*models.Timer, error) {
	row, err := q.UpdateTimer(ctx, params)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTimerNotFound
		}
		return nil, fmt.Errorf("failed to save timer: %w: %w", ErrStorageUnavailable, err)
	}
	return r.dbTimerToModel(row), nil
}

func (r *Repository) insertEvent(ctx context.Context, q Querier, eventType events.Type, saved *models.Timer, now time.Time) error {
	data, err := events.Encode(eventType, eventPayload(saved, now))
	if err != nil {
		return err
	}

	id := uuid.New()
	err = q.InsertTimerOutboxEvent(ctx, db.InsertTimerOutboxEventParams{
		ID:        id,
		TimerID:   saved.ID,
		EventType: string(eventType),
		Payload:   pqtype.NullRawMessage{RawMessage: data, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("failed to insert %s event: %w: %w", eventType, ErrStorageUnavailable, err)
	}

	log.Debug().
		Str("event_id", id.String()).
		Str("event_type", string(eventType)).
		Int64("version", saved.Version).
		Msg("outbox event inserted")
	return nil
}

// txError classifies an error from a transactional write. Errors from the
// queries are already classified; anything else came from begin or commit.
func txError(op string, err error) error {
	if errors.Is(err, ErrTimerNotFound) || errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("failed to %s: %w: %w", op, ErrStorageUnavailable, err)
}

// Ping checks the database connection.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

// dbTimerToModel converts a database row to the domain model. A paused row
// without a snapshot reports the full duration.
func (r *Repository) dbTimerToModel(row db.Timer) *models.Timer {
	t := &models.Timer{
		ID:            row.ID,
		TotalDuration: int(row.TotalDuration),
		Version:       row.Version,
		UpdatedAt:     row.UpdatedAt,
	}

	if row.Paused {
		t.Mode = models.Paused{Remaining: sqlutil.FromSqlInt32Or(row.PausedRemaining, t.TotalDuration)}
		return t
	}

	var startedAt time.Time
	if start := sqlutil.FromSqlTime(row.StartTime); start != nil {
		startedAt = *start
	}
	t.Mode = models.Running{StartedAt: startedAt}
	return t
}
