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

// EquitySwapProcessor prices equity swaps and books the result.
type EquitySwapProcessor struct {
	validator *validation.Validator
	enricher  *enrichment.Enricher
	booker    Booker
	log       zerolog.Logger
}

func NewEquitySwapProcessor(v *validation.Validator, e *enrichment.Enricher, b Booker, logger zerolog.Logger) *EquitySwapProcessor {
	return &EquitySwapProcessor{validator: v, enricher: e, booker: b, log: logger}
}

func (p *EquitySwapProcessor) Supports(t trade.Type) bool {
	return t == trade.TypeEquitySwap
}

func (p *EquitySwapProcessor) Process(tr trade.Trade) trade.ProcessingResult {
	start := time.Now()

	swap, ok := tr.(*trade.EquitySwap)
	if !ok {
		return trade.Failure(tr.ID(), trade.StatusProcessingFailed,
			fmt.Sprintf("expected equity swap, got %s", tr.TradeType()))
	}

	if err := p.validator.ValidateEquitySwap(swap); err != nil {
		p.log.Error().Str("trade_id", swap.TradeID).Err(err).Msg("validation failed for equity swap")
		return trade.Failure(swap.TradeID, trade.StatusValidationFailed, err.Error())
	}

	currentPrice := p.enricher.EquityPrice(swap.ReferenceAsset)
	spread := p.enricher.Spread(swap.Counterparty, swap.Notional)

	v := valuation.ValueEquitySwap(swap.Notional, p.enricher.SofrRate())

	p.log.Info().
		Str("trade_id", swap.TradeID).
		Str("reference_price", currentPrice.String()).
		Str("equity_leg_value", v.EquityLegValue.String()).
		Str("funding_leg_value", v.FundingLegValue.String()).
		Str("swap_value", v.SwapValue.String()).
		Str("counterparty_spread_bps", spread.String()).
		Msg("processed equity swap")

	record := booking.MapTrade(swap)
	if err := p.booker.Book(record); err != nil {
		p.log.Error().Str("trade_id", swap.TradeID).Err(err).Msg("processing failed for equity swap")
		return trade.Failure(swap.TradeID, trade.StatusProcessingFailed, err.Error())
	}

	result := trade.Success(swap.TradeID)
	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	return result
}
