package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/contest-timer/go/internal/outbox"
	"github.com/mcdev12/contest-timer/go/internal/timer/events"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// Service pushes timer events to WebSocket clients and announces expiry.
//
// Events arrive one of three ways: from the JetStream consumer, from the
// outbox listener through Publish, or straight from the timer app through
// Emit. Each event ID is delivered at most once.
type Service struct {
	connectionManager *ConnectionManager
	wsHandler         *WebSocketHandler
	scheduler         *ExpiryScheduler
	eventConsumer     *EventConsumer
	seen              *lru.Cache[string, struct{}]

	// Lifetime of scheduled expiries; cancelled when Start returns.
	ctx    context.Context
	cancel context.CancelFunc
}

// Config holds configuration for the gateway service
type Config struct {
	ConnectionConfig ConnectionConfig
	JetStreamConfig  JetStreamConsumerConfig
	DedupeSize       int
}

// DefaultConfig returns default configuration for the gateway
func DefaultConfig() Config {
	return Config{
		ConnectionConfig: DefaultConnectionConfig(),
		JetStreamConfig:  DefaultJetStreamConsumerConfig(),
		DedupeSize:       1024,
	}
}

// NewService creates a new gateway service. provider may be nil.
func NewService(config Config, provider StatusProvider, clock clockwork.Clock) (*Service, error) {
	seen, err := lru.New[string, struct{}](config.DedupeSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create dedupe cache: %w", err)
	}

	cm := NewConnectionManager(config.ConnectionConfig, provider)
	ctx, cancel := context.WithCancel(context.Background())
	s := &Service{
		connectionManager: cm,
		wsHandler:         NewWebSocketHandler(cm),
		seen:              seen,
		ctx:               ctx,
		cancel:            cancel,
	}
	s.scheduler = NewExpiryScheduler(clock, s.expire)
	return s, nil
}

// AttachJetStream subscribes the gateway to the timer event stream.
func (s *Service) AttachJetStream(ctx context.Context, nc *nats.Conn, config JetStreamConsumerConfig) error {
	consumer, err := NewEventConsumer(ctx, nc, config, s.dispatch)
	if err != nil {
		return fmt.Errorf("failed to create event consumer: %w", err)
	}
	s.eventConsumer = consumer
	return nil
}

// Start runs the gateway until ctx is done. provider state seeds the expiry
// scheduler so a timer already running at boot still announces expiry.
func (s *Service) Start(ctx context.Context) error {
	log.Info().Msg("starting timer gateway")
	defer s.cancel()

	if p := s.connectionManager.provider; p != nil {
		if payload, err := p.Snapshot(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to load timer state for expiry scheduling")
		} else {
			s.scheduler.Observe(s.ctx, events.TypeTimerStatus, payload)
		}
	}

	go s.connectionManager.Start(ctx)

	if s.eventConsumer != nil {
		go func() {
			if err := s.eventConsumer.Start(ctx); err != nil {
				log.Error().Err(err).Msg("event consumer failed")
			}
		}()
	}

	<-ctx.Done()
	s.scheduler.Cancel()
	log.Info().Msg("timer gateway stopped")
	return nil
}

// Publish relays an outbox event to clients.
func (s *Service) Publish(ctx context.Context, event outbox.OutboxEvent) error {
	eventType := events.Type(event.EventType)
	if !eventType.Known() {
		return fmt.Errorf("unknown event type: %s", event.EventType)
	}
	s.dispatch(ctx, &TimerEvent{
		ID:        event.ID.String(),
		TimerID:   event.TimerID,
		Type:      eventType,
		Timestamp: event.CreatedAt,
		Data:      event.Payload,
	})
	return nil
}

// Emit relays a timer event to clients without going through a store.
func (s *Service) Emit(ctx context.Context, eventType events.Type, payload events.TimerPayload) error {
	event, err := NewTimerEvent(uuid.New().String(), eventType, payload)
	if err != nil {
		return err
	}
	s.dispatch(ctx, event)
	return nil
}

func (s *Service) dispatch(ctx context.Context, event *TimerEvent) {
	if ok, _ := s.seen.ContainsOrAdd(event.ID, struct{}{}); ok {
		log.Debug().Str("event_id", event.ID).Msg("duplicate event ignored")
		return
	}

	payload, err := event.Payload()
	if err != nil {
		log.Error().Err(err).Str("event_id", event.ID).Msg("dropping event with bad payload")
		return
	}

	// The scheduler outlives the request that produced the event.
	s.scheduler.Observe(s.ctx, event.Type, payload)
	s.connectionManager.Broadcast(event)
}

func (s *Service) expire(payload events.TimerPayload) {
	event, err := NewTimerEvent(uuid.New().String(), events.TypeTimerExpired, payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to build expiry event")
		return
	}
	s.seen.Add(event.ID, struct{}{})
	s.connectionManager.Broadcast(event)
}

// RegisterRoutes registers the WebSocket HTTP routes
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.wsHandler.RegisterRoutes(mux)
	log.Info().Msg("timer gateway routes registered")
}

// Connections returns the number of open WebSocket connections.
func (s *Service) Connections() int {
	return s.connectionManager.ConnectionCount()
}
