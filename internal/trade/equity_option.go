package trade

import (
	"time"

	"github.com/shopspring/decimal"
)

// EquityOption is a vanilla call or put on a single underlying.
type EquityOption struct {
	Details
	OptionType      string // CALL or PUT, matched case-insensitively
	StrikePrice     decimal.Decimal
	Premium         *decimal.Decimal
	ExpiryDate      time.Time
	UnderlyingAsset string
}

func (o *EquityOption) ID() string {
	return o.TradeID
}

func (o *EquityOption) TradeType() Type {
	return TypeEquityOption
}

func (o *EquityOption) Common() Details {
	return o.Details
}
