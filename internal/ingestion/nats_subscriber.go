package ingestion

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"
)

// RawTrade is an undecoded trade payload from NATS, ready for the
// consume loop to parse and dispatch. Ack commits the message; Nak
// requests redelivery.
type RawTrade struct {
	Subject   string
	Data      []byte
	Timestamp time.Time
	AckFunc   func()
	NakFunc   func()
}

// StreamConfig names the JetStream stream, subject and durable
// consumer for trade ingestion.
type StreamConfig struct {
	StreamName   string
	Subject      string
	ConsumerName string
}

// DefaultStreamConfig returns the standard trade-input configuration.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		StreamName:   "FORGE_TRADES",
		Subject:      "forge.trades.input",
		ConsumerName: "forge-trade-processor",
	}
}

// Subscriber pulls trade messages from a JetStream consumer and feeds
// them into the trade channel. Messages use explicit ack; unprocessed
// messages are redelivered.
type Subscriber struct {
	js        jetstream.JetStream
	tradeChan chan<- RawTrade
	consumer  jetstream.ConsumeContext
	log       zerolog.Logger
}

func NewSubscriber(js jetstream.JetStream, tradeChan chan<- RawTrade, logger zerolog.Logger) *Subscriber {
	return &Subscriber{
		js:        js,
		tradeChan: tradeChan,
		log:       logger,
	}
}

// Subscribe creates the durable consumer and starts delivery.
// Explicit ack with a 30s ack wait and 5 delivery attempts.
func (s *Subscriber) Subscribe(ctx context.Context, cfg StreamConfig) error {
	consumer, err := s.js.CreateOrUpdateConsumer(ctx, cfg.StreamName, jetstream.ConsumerConfig{
		Durable:       cfg.ConsumerName,
		FilterSubject: cfg.Subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       30 * time.Second,
		MaxDeliver:    5,
		DeliverPolicy: jetstream.DeliverAllPolicy,
	})
	if err != nil {
		return fmt.Errorf("create consumer %s: %w", cfg.ConsumerName, err)
	}

	consumeContext, err := consumer.Consume(func(msg jetstream.Msg) {
		raw := RawTrade{
			Subject:   msg.Subject(),
			Data:      msg.Data(),
			Timestamp: time.Now(),
			AckFunc:   func() { msg.Ack() },
			NakFunc:   func() { msg.Nak() },
		}

		select {
		case s.tradeChan <- raw:
		case <-ctx.Done():
			msg.Nak()
		}
	})
	if err != nil {
		return fmt.Errorf("consume %s: %w", cfg.ConsumerName, err)
	}

	s.consumer = consumeContext
	s.log.Info().Str("subject", cfg.Subject).Str("consumer", cfg.ConsumerName).
		Msg("subscribed to trade stream")
	return nil
}

// Drain stops message delivery.
func (s *Subscriber) Drain() {
	if s.consumer != nil {
		s.consumer.Drain()
	}
}

// EnsureStream creates the trade input stream if it does not exist.
func EnsureStream(ctx context.Context, js jetstream.JetStream, cfg StreamConfig) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      cfg.StreamName,
		Subjects:  []string{cfg.Subject},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    72 * time.Hour,
		Replicas:  1,
	})
	if err != nil {
		return fmt.Errorf("ensure stream %s: %w", cfg.StreamName, err)
	}
	return nil
}

// ConnectNATS establishes a NATS connection and returns a JetStream context.
func ConnectNATS(url string, logger zerolog.Logger) (*nats.Conn, jetstream.JetStream, error) {
	nc, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn().Err(err).Msg("nats disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info().Msg("nats reconnected")
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("jetstream: %w", err)
	}

	return nc, js, nil
}
