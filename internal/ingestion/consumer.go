package ingestion

import (
	"context"

	"github.com/rs/zerolog"

	"tradeforge/internal/trade"
)

// TradeDispatcher runs one trade's pipeline and always produces a
// result.
type TradeDispatcher interface {
	Process(tr trade.Trade) trade.ProcessingResult
}

// Consumer drains the raw trade channel, parses each payload and hands
// it to the dispatcher. Any produced result, including business
// failures and timeouts, is a handled outcome and acks the message;
// only a payload that cannot become a result at all (undecodable JSON,
// unknown type tag) is nak'd for redelivery.
type Consumer struct {
	dispatcher TradeDispatcher
	tradeChan  <-chan RawTrade
	results    chan<- trade.ProcessingResult
	log        zerolog.Logger
}

// NewConsumer builds the consume loop. results may be nil when no
// outbound publishing is wired.
func NewConsumer(dispatcher TradeDispatcher, tradeChan <-chan RawTrade, results chan<- trade.ProcessingResult, logger zerolog.Logger) *Consumer {
	return &Consumer{
		dispatcher: dispatcher,
		tradeChan:  tradeChan,
		results:    results,
		log:        logger,
	}
}

// Run blocks until ctx is cancelled or the trade channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case raw, ok := <-c.tradeChan:
			if !ok {
				return nil
			}
			c.handle(raw)
		}
	}
}

func (c *Consumer) handle(raw RawTrade) {
	tr, err := ParseTrade(raw.Data)
	if err != nil {
		c.log.Error().Str("subject", raw.Subject).Err(err).
			Msg("failed to parse trade, message will be redelivered")
		raw.NakFunc()
		return
	}

	c.log.Info().
		Str("subject", raw.Subject).
		Str("trade_id", tr.ID()).
		Str("trade_type", tr.TradeType().String()).
		Msg("received trade")

	result := c.dispatcher.Process(tr)

	c.log.Info().
		Str("trade_id", result.TradeID).
		Str("status", result.Status.String()).
		Int64("duration_ms", result.ProcessingTimeMs).
		Msg("processed trade")

	if c.results != nil {
		select {
		case c.results <- result:
		default:
			// Outbound publishing is best-effort; never hold up the
			// consume loop.
		}
	}

	raw.AckFunc()
}
