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

// EquityOptionProcessor computes simplified option metrics and books
// the result.
type EquityOptionProcessor struct {
	validator *validation.Validator
	enricher  *enrichment.Enricher
	booker    Booker
	log       zerolog.Logger
}

func NewEquityOptionProcessor(v *validation.Validator, e *enrichment.Enricher, b Booker, logger zerolog.Logger) *EquityOptionProcessor {
	return &EquityOptionProcessor{validator: v, enricher: e, booker: b, log: logger}
}

func (p *EquityOptionProcessor) Supports(t trade.Type) bool {
	return t == trade.TypeEquityOption
}

func (p *EquityOptionProcessor) Process(tr trade.Trade) trade.ProcessingResult {
	start := time.Now()

	option, ok := tr.(*trade.EquityOption)
	if !ok {
		return trade.Failure(tr.ID(), trade.StatusProcessingFailed,
			fmt.Sprintf("expected equity option, got %s", tr.TradeType()))
	}

	if err := p.validator.ValidateEquityOption(option); err != nil {
		p.log.Error().Str("trade_id", option.TradeID).Err(err).Msg("validation failed for equity option")
		return trade.Failure(option.TradeID, trade.StatusValidationFailed, err.Error())
	}

	currentPrice := p.enricher.EquityPrice(option.UnderlyingAsset)
	spread := p.enricher.Spread(option.Counterparty, option.Notional)

	v := valuation.ValueEquityOption(option.OptionType, option.StrikePrice, currentPrice,
		*option.Premium, option.TradeDate, option.ExpiryDate)

	p.log.Info().
		Str("trade_id", option.TradeID).
		Str("option_type", option.OptionType).
		Str("strike", option.StrikePrice.String()).
		Str("spot", currentPrice.String()).
		Str("intrinsic_value", v.IntrinsicValue.String()).
		Str("time_value", v.TimeValue.String()).
		Str("delta", v.Delta.String()).
		Str("counterparty_spread_bps", spread.String()).
		Msg("processed equity option")

	record := booking.MapTrade(option)
	if err := p.booker.Book(record); err != nil {
		p.log.Error().Str("trade_id", option.TradeID).Err(err).Msg("processing failed for equity option")
		return trade.Failure(option.TradeID, trade.StatusProcessingFailed, err.Error())
	}

	result := trade.Success(option.TradeID)
	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	return result
}
