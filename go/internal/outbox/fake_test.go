package outbox

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryStore is an in-memory OutboxRepository.
type memoryStore struct {
	mu     sync.Mutex
	events []OutboxEvent
	err    error
}

// add stores an unsent event the way the timer repository's insert would.
func (s *memoryStore) add(timerID, eventType string, payload []byte) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.events = append(s.events, OutboxEvent{
		ID:        id,
		TimerID:   timerID,
		EventType: eventType,
		Payload:   payload,
		CreatedAt: time.Now(),
	})
	return id
}

func (s *memoryStore) FetchUnsentOutbox(ctx context.Context, limit int32) ([]OutboxEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []OutboxEvent
	for _, e := range s.events {
		if e.SentAt == nil && int32(len(out)) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *memoryStore) FetchOutboxByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.ID == id && e.SentAt == nil {
			return &e, nil
		}
	}
	return nil, ErrEventNotFound
}

func (s *memoryStore) MarkOutboxSent(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID == id {
			now := time.Now()
			s.events[i].SentAt = &now
			return nil
		}
	}
	return ErrEventNotFound
}

func (s *memoryStore) CountUnsentOutbox(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	n := 0
	for _, e := range s.events {
		if e.SentAt == nil {
			n++
		}
	}
	return n, nil
}

// flakyPublisher fails the first failures calls.
type flakyPublisher struct {
	mu        sync.Mutex
	failures  int
	calls     int
	published []OutboxEvent
}

func (p *flakyPublisher) Publish(ctx context.Context, event OutboxEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.calls <= p.failures {
		return errors.New("nats: no responders")
	}
	p.published = append(p.published, event)
	return nil
}
