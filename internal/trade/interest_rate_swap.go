package trade

import (
	"time"

	"github.com/shopspring/decimal"
)

// InterestRateSwap is a fixed-for-floating interest rate swap.
type InterestRateSwap struct {
	Details
	FixedRate         *decimal.Decimal // Percent, 0..20
	FloatingRateIndex string           // e.g. SOFR, LIBOR, EURIBOR
	FloatingSpreadBps *int64
	Direction         string // PAY_FIXED or RECEIVE_FIXED
	EffectiveDate     *time.Time
}

func (s *InterestRateSwap) ID() string {
	return s.TradeID
}

func (s *InterestRateSwap) TradeType() Type {
	return TypeInterestRateSwap
}

func (s *InterestRateSwap) Common() Details {
	return s.Details
}
