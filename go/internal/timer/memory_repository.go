package timer

import (
	"context"
	"sync"
	"time"

	"github.com/mcdev12/contest-timer/go/internal/models"
	"github.com/mcdev12/contest-timer/go/internal/timer/events"
)

// MemoryRepository keeps the timer record in process memory. Each call is
// atomic on its own; like the SQL store it offers no read-modify-write
// transaction across calls.
type MemoryRepository struct {
	mu    sync.Mutex
	timer *models.Timer
}

// NewMemoryRepository creates an empty in-memory store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Get(ctx context.Context) (*models.Timer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer == nil {
		return nil, ErrTimerNotFound
	}
	stored := *r.timer
	return &stored, nil
}

func (r *MemoryRepository) CreateDefault(ctx context.Context, totalDuration int) (*models.Timer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer == nil {
		r.timer = models.NewTimer(totalDuration)
		r.timer.UpdatedAt = time.Now().UTC()
	}
	stored := *r.timer
	return &stored, nil
}

func (r *MemoryRepository) Save(ctx context.Context, t *models.Timer, eventType events.Type) (*models.Timer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer == nil {
		return nil, ErrTimerNotFound
	}
	next := *r.timer
	next.Mode = t.Mode
	next.Version++
	next.UpdatedAt = t.UpdatedAt
	r.timer = &next

	stored := next
	return &stored, nil
}

func (r *MemoryRepository) Ping(ctx context.Context) error {
	return nil
}
