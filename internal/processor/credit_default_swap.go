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

// CreditDefaultSwapProcessor values CDS protection and books the result.
type CreditDefaultSwapProcessor struct {
	validator *validation.Validator
	enricher  *enrichment.Enricher
	booker    Booker
	log       zerolog.Logger
}

func NewCreditDefaultSwapProcessor(v *validation.Validator, e *enrichment.Enricher, b Booker, logger zerolog.Logger) *CreditDefaultSwapProcessor {
	return &CreditDefaultSwapProcessor{validator: v, enricher: e, booker: b, log: logger}
}

func (p *CreditDefaultSwapProcessor) Supports(t trade.Type) bool {
	return t == trade.TypeCreditDefaultSwap
}

func (p *CreditDefaultSwapProcessor) Process(tr trade.Trade) trade.ProcessingResult {
	start := time.Now()

	cds, ok := tr.(*trade.CreditDefaultSwap)
	if !ok {
		return trade.Failure(tr.ID(), trade.StatusProcessingFailed,
			fmt.Sprintf("expected credit default swap, got %s", tr.TradeType()))
	}

	if err := p.validator.ValidateCreditDefaultSwap(cds); err != nil {
		p.log.Error().Str("trade_id", cds.TradeID).Err(err).Msg("validation failed for cds")
		return trade.Failure(cds.TradeID, trade.StatusValidationFailed, err.Error())
	}

	spread := p.enricher.Spread(cds.Counterparty, cds.Notional)

	v := valuation.ValueCreditDefaultSwap(cds.Notional, cds.SpreadBps, *cds.RecoveryRate,
		cds.TradeDate, *cds.MaturityDate)

	p.log.Info().
		Str("trade_id", cds.TradeID).
		Str("reference_entity", cds.ReferenceEntity).
		Int64("spread_bps", cds.SpreadBps).
		Str("annual_premium", v.AnnualPremium.String()).
		Str("protection_value", v.ProtectionValue.String()).
		Str("cds_value", v.CDSValue.String()).
		Str("counterparty_spread_bps", spread.String()).
		Msg("processed cds")

	record := booking.MapTrade(cds)
	if err := p.booker.Book(record); err != nil {
		p.log.Error().Str("trade_id", cds.TradeID).Err(err).Msg("processing failed for cds")
		return trade.Failure(cds.TradeID, trade.StatusProcessingFailed, err.Error())
	}

	result := trade.Success(cds.TradeID)
	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	return result
}
