package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog"

	"tradeforge/internal/trade"
)

// ResultPublisher publishes processing results to NATS for downstream
// consumers (reconciliation, audit). Publishing is best-effort: a
// failed publish is logged and dropped, never retried. The result has
// already been returned to the transport layer.
type ResultPublisher struct {
	js        jetstream.JetStream
	inputChan <-chan trade.ProcessingResult
	subject   string
	log       zerolog.Logger
}

// DefaultResultSubject is the outbound subject for processing results.
const DefaultResultSubject = "forge.trades.results"

func NewResultPublisher(js jetstream.JetStream, inputChan <-chan trade.ProcessingResult, subject string, logger zerolog.Logger) *ResultPublisher {
	return &ResultPublisher{
		js:        js,
		inputChan: inputChan,
		subject:   subject,
		log:       logger,
	}
}

// Run starts the publisher loop. Blocks until ctx is cancelled or the
// input channel closes.
func (p *ResultPublisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case result, ok := <-p.inputChan:
			if !ok {
				return nil
			}
			if err := p.publish(ctx, result); err != nil {
				p.log.Warn().Str("trade_id", result.TradeID).Err(err).
					Msg("result publish failed")
			}
		}
	}
}

func (p *ResultPublisher) publish(ctx context.Context, result trade.ProcessingResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	subject := p.subject + "." + strings.ToLower(result.Status.String())
	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}
