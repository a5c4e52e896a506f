package outbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/contest-timer/go/internal/outbox/db"
	"github.com/mcdev12/contest-timer/go/internal/sqlutil"
)

// ErrEventNotFound is returned for an unknown or already sent outbox event.
var ErrEventNotFound = errors.New("outbox event not found or already sent")

// Querier defines what the repository needs from the database layer
type Querier interface {
	FetchUnsentOutbox(ctx context.Context, limit int32) ([]db.TimerOutbox, error)
	FetchOutboxByID(ctx context.Context, id uuid.UUID) (db.TimerOutbox, error)
	MarkOutboxSent(ctx context.Context, id uuid.UUID) error
	CountUnsentOutbox(ctx context.Context) (int64, error)
}

type Repository struct {
	queries Querier
}

func NewRepository(queries Querier) *Repository {
	return &Repository{
		queries: queries,
	}
}

func (r *Repository) FetchUnsentOutbox(ctx context.Context, limit int32) ([]OutboxEvent, error) {
	rows, err := r.queries.FetchUnsentOutbox(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}

	events := make([]OutboxEvent, len(rows))
	for i, row := range rows {
		events[i] = r.dbEventToModel(row)
	}
	return events, nil
}

func (r *Repository) FetchOutboxByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error) {
	row, err := r.queries.FetchOutboxByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to fetch outbox event by ID: %w", err)
	}

	event := r.dbEventToModel(row)
	return &event, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.MarkOutboxSent(ctx, id); err != nil {
		return fmt.Errorf("failed to mark outbox event as sent: %w", err)
	}
	return nil
}

func (r *Repository) CountUnsentOutbox(ctx context.Context) (int, error) {
	count, err := r.queries.CountUnsentOutbox(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unsent outbox events: %w", err)
	}
	return int(count), nil
}

func (r *Repository) dbEventToModel(row db.TimerOutbox) OutboxEvent {
	event := OutboxEvent{
		ID:        row.ID,
		TimerID:   row.TimerID,
		EventType: row.EventType,
		CreatedAt: row.CreatedAt,
	}
	if row.Payload.Valid {
		event.Payload = row.Payload.RawMessage
	}
	event.SentAt = sqlutil.FromSqlTime(row.SentAt)
	return event
}
