package trade

import "github.com/shopspring/decimal"

// FXForward is an outright forward on a currency pair.
// MaturityDate in Details is required for this variant.
type FXForward struct {
	Details
	CurrencyPair string // "XXX/YYY" format
	ForwardRate  decimal.Decimal
}

func (f *FXForward) ID() string {
	return f.TradeID
}

func (f *FXForward) TradeType() Type {
	return TypeFXForward
}

func (f *FXForward) Common() Details {
	return f.Details
}
