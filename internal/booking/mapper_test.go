package booking_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tradeforge/internal/booking"
	"tradeforge/internal/trade"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func envelope(id string) trade.Details {
	return trade.Details{
		TradeID:        id,
		TradeDate:      date(2025, time.March, 10),
		SettlementDate: date(2025, time.March, 12),
		Counterparty:   "Goldman Sachs",
		Notional:       decimal.NewFromInt(1_000_000),
		Currency:       "USD",
	}
}

func TestMapTrade_Envelope(t *testing.T) {
	spread := int64(20)
	rec := booking.MapTrade(&trade.InterestRateSwap{
		Details:           envelope("TRD-001"),
		FixedRate:         decPtr("3.5"),
		FloatingRateIndex: "SOFR",
		FloatingSpreadBps: &spread,
		Direction:         "PAY_FIXED",
	})

	if rec.TradeID != "TRD-001" {
		t.Errorf("trade id: got %s", rec.TradeID)
	}
	if rec.TradeType != "INTEREST_RATE_SWAP" {
		t.Errorf("trade type: got %s", rec.TradeType)
	}
	if !rec.TradeDate.Equal(date(2025, time.March, 10)) {
		t.Errorf("trade date: got %s", rec.TradeDate)
	}
	if rec.Counterparty != "Goldman Sachs" {
		t.Errorf("counterparty: got %s", rec.Counterparty)
	}
	if rec.Status != "SUCCESS" {
		t.Errorf("status: got %s", rec.Status)
	}
	if rec.ProcessedAt.IsZero() {
		t.Error("processed_at not set")
	}
}

func TestMapTrade_InterestRateSwapColumns(t *testing.T) {
	spread := int64(20)
	eff := date(2025, time.March, 15)
	rec := booking.MapTrade(&trade.InterestRateSwap{
		Details:           envelope("SWAP-001"),
		FixedRate:         decPtr("3.5"),
		FloatingRateIndex: "SOFR",
		FloatingSpreadBps: &spread,
		Direction:         "PAY_FIXED",
		EffectiveDate:     &eff,
	})

	if rec.FixedRate == nil || !rec.FixedRate.Equal(decimal.RequireFromString("3.5")) {
		t.Errorf("fixed rate: got %v", rec.FixedRate)
	}
	if rec.FloatingRateIndex == nil || *rec.FloatingRateIndex != "SOFR" {
		t.Errorf("floating index: got %v", rec.FloatingRateIndex)
	}
	if rec.FloatingSpreadBps == nil || *rec.FloatingSpreadBps != 20 {
		t.Errorf("spread bps: got %v", rec.FloatingSpreadBps)
	}
	if rec.Direction == nil || *rec.Direction != "PAY_FIXED" {
		t.Errorf("direction: got %v", rec.Direction)
	}

	// Columns of the other variants stay null.
	if rec.ReferenceAsset != nil || rec.CurrencyPair != nil || rec.OptionType != nil || rec.ReferenceEntity != nil {
		t.Error("unrelated variant columns populated")
	}
}

func TestMapTrade_EquitySwapColumns(t *testing.T) {
	rec := booking.MapTrade(&trade.EquitySwap{
		Details:        envelope("EQS-001"),
		ReferenceAsset: "AAPL",
		ReturnType:     "TOTAL_RETURN",
		FundingLeg:     "SOFR_PLUS_SPREAD",
	})

	if rec.ReferenceAsset == nil || *rec.ReferenceAsset != "AAPL" {
		t.Errorf("reference asset: got %v", rec.ReferenceAsset)
	}
	if rec.ReturnType == nil || *rec.ReturnType != "TOTAL_RETURN" {
		t.Errorf("return type: got %v", rec.ReturnType)
	}
	if rec.FundingLeg == nil || *rec.FundingLeg != "SOFR_PLUS_SPREAD" {
		t.Errorf("funding leg: got %v", rec.FundingLeg)
	}
	if rec.FixedRate != nil || rec.CurrencyPair != nil {
		t.Error("unrelated variant columns populated")
	}
}

func TestMapTrade_FXForwardColumns(t *testing.T) {
	d := envelope("FXF-001")
	d.MaturityDate = datePtr(2025, time.September, 10)
	rec := booking.MapTrade(&trade.FXForward{
		Details:      d,
		CurrencyPair: "EUR/USD",
		ForwardRate:  decimal.RequireFromString("1.0900"),
	})

	if rec.CurrencyPair == nil || *rec.CurrencyPair != "EUR/USD" {
		t.Errorf("currency pair: got %v", rec.CurrencyPair)
	}
	if rec.ForwardRate == nil || !rec.ForwardRate.Equal(decimal.RequireFromString("1.0900")) {
		t.Errorf("forward rate: got %v", rec.ForwardRate)
	}
	if rec.MaturityDate == nil || !rec.MaturityDate.Equal(date(2025, time.September, 10)) {
		t.Errorf("maturity date: got %v", rec.MaturityDate)
	}
}

func TestMapTrade_EquityOptionColumns(t *testing.T) {
	rec := booking.MapTrade(&trade.EquityOption{
		Details:         envelope("OPT-001"),
		OptionType:      "CALL",
		StrikePrice:     decimal.NewFromInt(180),
		Premium:         decPtr("8.50"),
		ExpiryDate:      date(2025, time.June, 20),
		UnderlyingAsset: "AAPL",
	})

	if rec.OptionType == nil || *rec.OptionType != "CALL" {
		t.Errorf("option type: got %v", rec.OptionType)
	}
	if rec.StrikePrice == nil || !rec.StrikePrice.Equal(decimal.NewFromInt(180)) {
		t.Errorf("strike: got %v", rec.StrikePrice)
	}
	if rec.Premium == nil || !rec.Premium.Equal(decimal.RequireFromString("8.50")) {
		t.Errorf("premium: got %v", rec.Premium)
	}
	if rec.ExpiryDate == nil || !rec.ExpiryDate.Equal(date(2025, time.June, 20)) {
		t.Errorf("expiry: got %v", rec.ExpiryDate)
	}
	if rec.UnderlyingAsset == nil || *rec.UnderlyingAsset != "AAPL" {
		t.Errorf("underlying: got %v", rec.UnderlyingAsset)
	}
}

func TestMapTrade_CreditDefaultSwapColumns(t *testing.T) {
	d := envelope("CDS-001")
	d.MaturityDate = datePtr(2030, time.March, 10)
	rec := booking.MapTrade(&trade.CreditDefaultSwap{
		Details:         d,
		ReferenceEntity: "ACME_CORP",
		SpreadBps:       250,
		RecoveryRate:    decPtr("40.75"),
	})

	if rec.ReferenceEntity == nil || *rec.ReferenceEntity != "ACME_CORP" {
		t.Errorf("reference entity: got %v", rec.ReferenceEntity)
	}
	if rec.SpreadBps == nil || *rec.SpreadBps != 250 {
		t.Errorf("spread bps: got %v", rec.SpreadBps)
	}
	// Recovery rate persists as whole percent.
	if rec.RecoveryRate == nil || *rec.RecoveryRate != 40 {
		t.Errorf("recovery rate: got %v", rec.RecoveryRate)
	}
}

func TestMapTrade_NilOptionalsStayNil(t *testing.T) {
	rec := booking.MapTrade(&trade.InterestRateSwap{
		Details:           envelope("SWAP-002"),
		FixedRate:         decPtr("3.5"),
		FloatingRateIndex: "SOFR",
		Direction:         "PAY_FIXED",
	})

	if rec.FloatingSpreadBps != nil {
		t.Errorf("nil spread mapped to %v", rec.FloatingSpreadBps)
	}
	if rec.MaturityDate != nil {
		t.Errorf("nil maturity mapped to %v", rec.MaturityDate)
	}
}
