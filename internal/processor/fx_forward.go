package processor

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"tradeforge/internal/booking"
	"tradeforge/internal/enrichment"
	"tradeforge/internal/trade"
	"tradeforge/internal/validation"
	"tradeforge/internal/valuation"
)

// FXForwardProcessor marks FX forwards to market and books the result.
type FXForwardProcessor struct {
	validator *validation.Validator
	enricher  *enrichment.Enricher
	booker    Booker
	log       zerolog.Logger
}

func NewFXForwardProcessor(v *validation.Validator, e *enrichment.Enricher, b Booker, logger zerolog.Logger) *FXForwardProcessor {
	return &FXForwardProcessor{validator: v, enricher: e, booker: b, log: logger}
}

func (p *FXForwardProcessor) Supports(t trade.Type) bool {
	return t == trade.TypeFXForward
}

func (p *FXForwardProcessor) Process(tr trade.Trade) trade.ProcessingResult {
	start := time.Now()

	forward, ok := tr.(*trade.FXForward)
	if !ok {
		return trade.Failure(tr.ID(), trade.StatusProcessingFailed,
			fmt.Sprintf("expected fx forward, got %s", tr.TradeType()))
	}

	if err := p.validator.ValidateFXForward(forward); err != nil {
		p.log.Error().Str("trade_id", forward.TradeID).Err(err).Msg("validation failed for fx forward")
		return trade.Failure(forward.TradeID, trade.StatusValidationFailed, err.Error())
	}

	spotRate := p.enricher.FXRate(forward.CurrencyPair)
	spread := p.enricher.Spread(forward.Counterparty, forward.Notional)

	v := valuation.ValueFXForward(forward.Notional, spotRate, forward.ForwardRate,
		forward.TradeDate, *forward.MaturityDate)

	p.log.Info().
		Str("trade_id", forward.TradeID).
		Str("spot", spotRate.String()).
		Str("contract_forward", forward.ForwardRate.String()).
		Str("theoretical_forward", v.TheoreticalForward.String()).
		Str("mtm", v.MarkToMarket.String()).
		Int64("days_to_maturity", v.DaysToMaturity).
		Str("counterparty_spread_bps", spread.String()).
		Msg("processed fx forward")

	record := booking.MapTrade(forward)
	if err := p.booker.Book(record); err != nil {
		p.log.Error().Str("trade_id", forward.TradeID).Err(err).Msg("processing failed for fx forward")
		return trade.Failure(forward.TradeID, trade.StatusProcessingFailed, err.Error())
	}

	result := trade.Success(forward.TradeID)
	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	return result
}
