package trade

// EquitySwap exchanges the total or price return of a reference asset
// against a funding leg.
type EquitySwap struct {
	Details
	ReferenceAsset string // Equity ticker
	ReturnType     string // TOTAL_RETURN or PRICE_RETURN
	FundingLeg     string // e.g. SOFR_PLUS_SPREAD
}

func (s *EquitySwap) ID() string {
	return s.TradeID
}

func (s *EquitySwap) TradeType() Type {
	return TypeEquitySwap
}

func (s *EquitySwap) Common() Details {
	return s.Details
}
