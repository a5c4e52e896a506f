package outbox

import (
	"context"

	"github.com/google/uuid"
)

// OutboxRepository defines what the app layer needs from the repository.
// Events are written by the timer repository in the same transaction as the
// state change; this side only reads and acknowledges them.
type OutboxRepository interface {
	FetchUnsentOutbox(ctx context.Context, limit int32) ([]OutboxEvent, error)
	FetchOutboxByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error)
	MarkOutboxSent(ctx context.Context, id uuid.UUID) error
	CountUnsentOutbox(ctx context.Context) (int, error)
}

// App handles outbox business logic
type App struct {
	repo OutboxRepository
}

// NewApp creates a new outbox App
func NewApp(repo OutboxRepository) *App {
	return &App{
		repo: repo,
	}
}

// PendingEvents returns how many events are waiting to be published.
func (a *App) PendingEvents(ctx context.Context) (int, error) {
	return a.repo.CountUnsentOutbox(ctx)
}
