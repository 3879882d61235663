package trade

import "github.com/shopspring/decimal"

// CreditDefaultSwap buys or sells protection on a reference entity.
// MaturityDate in Details is required: tenor must be 1..10 years.
type CreditDefaultSwap struct {
	Details
	ReferenceEntity string
	SpreadBps       int64            // 0..10000
	RecoveryRate    *decimal.Decimal // Percent, 0..100
}

func (c *CreditDefaultSwap) ID() string {
	return c.TradeID
}

func (c *CreditDefaultSwap) TradeType() Type {
	return TypeCreditDefaultSwap
}

func (c *CreditDefaultSwap) Common() Details {
	return c.Details
}
