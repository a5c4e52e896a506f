package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mcdev12/contest-timer/go/internal/outbox"
	"github.com/mcdev12/contest-timer/go/internal/timer/events"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"
)

// JetStreamConsumerConfig holds configuration for the JetStream consumer
type JetStreamConsumerConfig struct {
	StreamName        string
	SubjectFilter     string        // e.g., "timer.events.>"
	MaxDeliver        int           // Max delivery attempts
	AckWait           time.Duration // How long to wait for ack
	InactiveThreshold time.Duration // Ephemeral consumer cleanup after the instance goes away
}

// DefaultJetStreamConsumerConfig returns default JetStream consumer configuration
func DefaultJetStreamConsumerConfig() JetStreamConsumerConfig {
	return JetStreamConsumerConfig{
		StreamName:        "TIMER_EVENTS",
		SubjectFilter:     "timer.events.>",
		MaxDeliver:        5,
		AckWait:           30 * time.Second,
		InactiveThreshold: 5 * time.Minute,
	}
}

// EventConsumer consumes timer events from JetStream and hands them to the
// gateway. Each server instance gets its own ephemeral consumer so every
// instance sees every event.
type EventConsumer struct {
	js       jetstream.JetStream
	consumer jetstream.Consumer
	config   JetStreamConsumerConfig
	dispatch func(ctx context.Context, event *TimerEvent)
}

// NewEventConsumer creates a consumer on an existing NATS connection.
func NewEventConsumer(ctx context.Context, nc *nats.Conn, config JetStreamConsumerConfig, dispatch func(context.Context, *TimerEvent)) (*EventConsumer, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	ec := &EventConsumer{
		js:       js,
		config:   config,
		dispatch: dispatch,
	}
	if err := ec.ensureConsumer(ctx); err != nil {
		return nil, fmt.Errorf("ensure consumer: %w", err)
	}
	return ec, nil
}

func (ec *EventConsumer) ensureConsumer(ctx context.Context) error {
	stream, err := ec.js.Stream(ctx, ec.config.StreamName)
	if err != nil {
		return fmt.Errorf("get stream: %w", err)
	}

	consumer, err := stream.CreateConsumer(ctx, jetstream.ConsumerConfig{
		Description:       "Contest timer WebSocket gateway",
		FilterSubject:     ec.config.SubjectFilter,
		DeliverPolicy:     jetstream.DeliverNewPolicy,
		AckPolicy:         jetstream.AckExplicitPolicy,
		MaxDeliver:        ec.config.MaxDeliver,
		AckWait:           ec.config.AckWait,
		InactiveThreshold: ec.config.InactiveThreshold,
		ReplayPolicy:      jetstream.ReplayInstantPolicy,
	})
	if err != nil {
		return fmt.Errorf("create consumer: %w", err)
	}

	log.Info().
		Str("stream", ec.config.StreamName).
		Str("filter", ec.config.SubjectFilter).
		Msg("created JetStream consumer")

	ec.consumer = consumer
	return nil
}

// Start consumes until ctx is done.
func (ec *EventConsumer) Start(ctx context.Context) error {
	log.Info().
		Str("stream", ec.config.StreamName).
		Msg("starting JetStream event consumer")

	messageCh := make(chan jetstream.Msg, 64)
	consumeCtx, err := ec.consumer.Consume(func(msg jetstream.Msg) {
		select {
		case messageCh <- msg:
		case <-ctx.Done():
			msg.Nak()
		}
	})
	if err != nil {
		return fmt.Errorf("start consumer: %w", err)
	}
	defer consumeCtx.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("event consumer shutting down")
			return nil
		case msg := <-messageCh:
			event, err := decodeMessage(msg.Data())
			if err != nil {
				log.Error().
					Err(err).
					Str("subject", msg.Subject()).
					Msg("dropping undecodable message")
				// Redelivery will not fix a malformed message.
				if termErr := msg.Term(); termErr != nil {
					log.Error().Err(termErr).Msg("failed to TERM message")
				}
				continue
			}

			ec.dispatch(ctx, event)
			if ackErr := msg.Ack(); ackErr != nil {
				log.Error().Err(ackErr).Msg("failed to ACK message")
			}
		}
	}
}

// decodeMessage converts an outbox envelope into a TimerEvent.
func decodeMessage(data []byte) (*TimerEvent, error) {
	var envelope outbox.Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("unmarshal event envelope: %w", err)
	}

	eventType := events.Type(envelope.EventType)
	if !eventType.Known() {
		return nil, fmt.Errorf("unknown event type: %s", envelope.EventType)
	}

	return &TimerEvent{
		ID:        envelope.EventID,
		TimerID:   envelope.TimerID,
		Type:      eventType,
		Timestamp: envelope.Timestamp,
		Data:      envelope.Payload,
	}, nil
}
