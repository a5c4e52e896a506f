package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/contest-timer/go/internal/gateway"
	"github.com/mcdev12/contest-timer/go/internal/health"
	"github.com/mcdev12/contest-timer/go/internal/outbox"
	outboxdb "github.com/mcdev12/contest-timer/go/internal/outbox/db"
	"github.com/mcdev12/contest-timer/go/internal/timer"
	"github.com/mcdev12/contest-timer/go/internal/timer/events"
)

type Services struct {
	App     *timer.App
	Timer   *timer.Service
	RPC     *timer.RPCService
	Gateway *gateway.Service
	Health  *health.Checker

	listener  *outbox.Listener
	publisher *outbox.JetStreamPublisher
}

// setupServices wires the dependency chain:
// Store → App → HTTP/RPC services, with events flowing
// Repository → outbox (Postgres, same transaction) → JetStream or gateway → WebSocket clients.
// Without Postgres, App emits straight to the gateway.
func setupServices(ctx context.Context, cfg *Config, store *Store) (*Services, error) {
	clock := clockwork.NewRealClock()
	timerCfg := timer.Config{
		TotalDuration: cfg.Timer.TotalDuration,
		LazyCreate:    cfg.Timer.LazyCreate,
	}

	s := &Services{Health: health.NewChecker(2 * time.Minute)}

	gw, err := gateway.NewService(gateway.DefaultConfig(), appSnapshots{s}, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway: %w", err)
	}
	s.Gateway = gw

	var emitter timer.EventEmitter = gw
	if store.DSN != "" {
		// The repository writes events to the outbox itself.
		if err := s.setupOutbox(ctx, cfg, store); err != nil {
			return nil, err
		}
		emitter = nil
	}

	s.App = timer.NewApp(store.Timer, emitter, clock, timerCfg)
	s.Timer = timer.NewService(s.App)
	s.RPC = timer.NewRPCService(s.App)
	s.Health.Add("store", s.App.Ping)

	return s, nil
}

// appSnapshots lets the gateway reach the app, which is built after it.
type appSnapshots struct {
	s *Services
}

func (p appSnapshots) Snapshot(ctx context.Context) (events.TimerPayload, error) {
	return p.s.App.Snapshot(ctx)
}

// setupOutbox relays timer events through the Postgres outbox, to JetStream
// when NATS is configured and to the local gateway otherwise.
func (s *Services) setupOutbox(ctx context.Context, cfg *Config, store *Store) error {
	outboxRepo := outbox.NewRepository(outboxdb.New(store.DB))
	outboxApp := outbox.NewApp(outboxRepo)

	var publisher outbox.Publisher = s.Gateway
	if cfg.NATSURL != "" {
		jsCfg := outbox.DefaultJetStreamConfig()
		jsCfg.URL = cfg.NATSURL
		js, err := outbox.NewJetStreamPublisher(ctx, jsCfg)
		if err != nil {
			return fmt.Errorf("failed to create JetStream publisher: %w", err)
		}
		s.publisher = js
		publisher = js

		if err := s.Gateway.AttachJetStream(ctx, js.Conn(), gateway.DefaultJetStreamConsumerConfig()); err != nil {
			js.Close()
			return err
		}
		s.Health.Add("nats", func(ctx context.Context) error {
			if !js.Connected() {
				return errors.New("nats disconnected")
			}
			return nil
		})
	}

	listenerCfg := outbox.DefaultListenerConfig()
	listenerCfg.DatabaseURL = store.DSN
	listener, err := outbox.NewListener(outboxRepo, publisher, listenerCfg)
	if err != nil {
		return fmt.Errorf("failed to create outbox listener: %w", err)
	}
	s.listener = listener
	s.Health.WithRelay(listener, outboxApp)

	log.Info().Bool("jetstream", s.publisher != nil).Msg("outbox relay configured")
	return nil
}

// Run starts the background workers; they stop when ctx is done.
func (s *Services) Run(ctx context.Context) {
	go func() {
		if err := s.Gateway.Start(ctx); err != nil {
			log.Error().Err(err).Msg("gateway failed")
		}
	}()

	if s.listener != nil {
		go func() {
			if err := s.listener.Start(ctx); err != nil {
				log.Error().Err(err).Msg("outbox listener stopped")
			}
		}()
	}
}

func (s *Services) Close() {
	if s.publisher != nil {
		s.publisher.Close()
	}
}
