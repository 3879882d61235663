package booking

import (
	"time"

	"tradeforge/internal/trade"
)

// MapTrade projects a trade variant onto the flat TradeRecord shape.
// Pure transform: envelope fields first, then one variant-specific
// column group.
func MapTrade(tr trade.Trade) *TradeRecord {
	d := tr.Common()

	record := &TradeRecord{
		TradeID:        d.TradeID,
		TradeType:      tr.TradeType().String(),
		TradeDate:      d.TradeDate,
		SettlementDate: d.SettlementDate,
		MaturityDate:   d.MaturityDate,
		Counterparty:   d.Counterparty,
		Notional:       d.Notional,
		Currency:       d.Currency,
		ProcessedAt:    time.Now(),
		Status:         "SUCCESS",
	}

	switch v := tr.(type) {
	case *trade.InterestRateSwap:
		record.FixedRate = v.FixedRate
		record.FloatingRateIndex = &v.FloatingRateIndex
		record.FloatingSpreadBps = v.FloatingSpreadBps
		record.Direction = &v.Direction
	case *trade.EquitySwap:
		record.ReferenceAsset = &v.ReferenceAsset
		record.ReturnType = &v.ReturnType
		record.FundingLeg = &v.FundingLeg
	case *trade.FXForward:
		record.CurrencyPair = &v.CurrencyPair
		fr := v.ForwardRate
		record.ForwardRate = &fr
	case *trade.EquityOption:
		record.OptionType = &v.OptionType
		sp := v.StrikePrice
		record.StrikePrice = &sp
		record.Premium = v.Premium
		ed := v.ExpiryDate
		record.ExpiryDate = &ed
		record.UnderlyingAsset = &v.UnderlyingAsset
	case *trade.CreditDefaultSwap:
		record.ReferenceEntity = &v.ReferenceEntity
		bps := v.SpreadBps
		record.SpreadBps = &bps
		if v.RecoveryRate != nil {
			rr := v.RecoveryRate.IntPart()
			record.RecoveryRate = &rr
		}
	}

	return record
}
