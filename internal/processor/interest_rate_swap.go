package processor

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"tradeforge/internal/enrichment"
	"tradeforge/internal/trade"
	"tradeforge/internal/validation"
	"tradeforge/internal/valuation"
)

// InterestRateSwapProcessor prices fixed/floating swaps. This variant
// terminates at success without a booking stage: persistence for rate
// swaps is not yet wired.
type InterestRateSwapProcessor struct {
	validator *validation.Validator
	enricher  *enrichment.Enricher
	log       zerolog.Logger
}

func NewInterestRateSwapProcessor(v *validation.Validator, e *enrichment.Enricher, logger zerolog.Logger) *InterestRateSwapProcessor {
	return &InterestRateSwapProcessor{validator: v, enricher: e, log: logger}
}

func (p *InterestRateSwapProcessor) Supports(t trade.Type) bool {
	return t == trade.TypeInterestRateSwap
}

func (p *InterestRateSwapProcessor) Process(tr trade.Trade) trade.ProcessingResult {
	start := time.Now()

	swap, ok := tr.(*trade.InterestRateSwap)
	if !ok {
		return trade.Failure(tr.ID(), trade.StatusProcessingFailed,
			fmt.Sprintf("expected interest rate swap, got %s", tr.TradeType()))
	}

	if err := p.validator.ValidateInterestRateSwap(swap); err != nil {
		p.log.Error().Str("trade_id", swap.TradeID).Err(err).Msg("validation failed for interest rate swap")
		return trade.Failure(swap.TradeID, trade.StatusValidationFailed, err.Error())
	}

	floatingRate := p.enricher.RateByIndex(swap.FloatingRateIndex)
	spread := p.enricher.Spread(swap.Counterparty, swap.Notional)

	v := valuation.ValueInterestRateSwap(swap.Notional, *swap.FixedRate, floatingRate, swap.FloatingSpreadBps)

	p.log.Info().
		Str("trade_id", swap.TradeID).
		Str("fixed_leg_pv", v.FixedLegPV.String()).
		Str("floating_leg_pv", v.FloatingLegPV.String()).
		Str("swap_value", v.SwapValue.String()).
		Str("counterparty_spread_bps", spread.String()).
		Msg("processed interest rate swap")

	result := trade.Success(swap.TradeID)
	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	return result
}
