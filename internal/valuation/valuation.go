// Package valuation holds the simplified, deterministic valuation math
// for each trade variant. The models are intentionally static (flat
// returns, fixed duration, no curves): the exact figures and rounding
// are part of the processing contract.
package valuation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	oneHundred  = decimal.NewFromInt(100)
	tenThousand = decimal.NewFromInt(10000)

	swapDuration = decimal.NewFromInt(5) // Assumed 5-year duration

	equityReturn  = decimal.RequireFromString("0.08") // Flat 8% equity return
	halfYear      = decimal.RequireFromString("0.5")
	rateDiff      = decimal.RequireFromString("0.02") // Assumed interest differential
	daysPerYear   = decimal.NewFromInt(360)
	maxDefaultPct = decimal.RequireFromString("0.50")

	deltaDeepITM = decimal.RequireFromString("0.85")
	deltaOTM     = decimal.RequireFromString("0.15")
	deltaATM     = decimal.RequireFromString("0.50")

	moneynessHigh = decimal.RequireFromString("1.1")
	moneynessLow  = decimal.RequireFromString("0.9")
)

// InterestRateSwapValuation is the PV breakdown of a fixed/floating swap.
type InterestRateSwapValuation struct {
	FixedLegPV    decimal.Decimal
	FloatingLegPV decimal.Decimal
	SwapValue     decimal.Decimal
}

// ValueInterestRateSwap prices a swap as notional x rate x duration per
// leg. floatingRate is the enriched index fixing in percent; spreadBps
// is the trade's floating spread (nil means zero).
func ValueInterestRateSwap(notional, fixedRate, floatingRate decimal.Decimal, spreadBps *int64) InterestRateSwapValuation {
	fixedLegPV := notional.Mul(fixedRate.Div(oneHundred)).Mul(swapDuration)

	spread := decimal.Zero
	if spreadBps != nil {
		spread = decimal.NewFromInt(*spreadBps).Div(tenThousand)
	}
	totalRate := floatingRate.Div(oneHundred).Add(spread)
	floatingLegPV := notional.Mul(totalRate).Mul(swapDuration)

	return InterestRateSwapValuation{
		FixedLegPV:    fixedLegPV,
		FloatingLegPV: floatingLegPV,
		SwapValue:     fixedLegPV.Sub(floatingLegPV),
	}
}

// EquitySwapValuation is the leg breakdown of an equity swap.
type EquitySwapValuation struct {
	EquityLegValue  decimal.Decimal
	FundingLegValue decimal.Decimal
	SwapValue       decimal.Decimal
}

// ValueEquitySwap prices the equity leg at a flat assumed return and
// the funding leg at SOFR over an assumed six-month period.
func ValueEquitySwap(notional, sofrRate decimal.Decimal) EquitySwapValuation {
	equityLeg := notional.Mul(equityReturn)
	fundingLeg := notional.Mul(sofrRate.Div(oneHundred)).Mul(halfYear)

	return EquitySwapValuation{
		EquityLegValue:  equityLeg,
		FundingLegValue: fundingLeg,
		SwapValue:       equityLeg.Sub(fundingLeg),
	}
}

// FXForwardValuation is the mark-to-market of an outright forward.
type FXForwardValuation struct {
	DaysToMaturity     int64
	ForwardPoints      decimal.Decimal
	TheoreticalForward decimal.Decimal
	MarkToMarket       decimal.Decimal
}

// ValueFXForward derives forward points from the spot and a fixed rate
// differential on an ACT/360 basis, rounded half-up to 6 decimal
// places, then marks the contract rate against the theoretical forward.
func ValueFXForward(notional, spotRate, contractRate decimal.Decimal, tradeDate, maturityDate time.Time) FXForwardValuation {
	days := DaysBetween(tradeDate, maturityDate)

	forwardPoints := spotRate.Mul(rateDiff).
		Mul(decimal.NewFromInt(days)).
		DivRound(daysPerYear, 6)
	theoreticalForward := spotRate.Add(forwardPoints)
	mtm := notional.Mul(theoreticalForward.Sub(contractRate))

	return FXForwardValuation{
		DaysToMaturity:     days,
		ForwardPoints:      forwardPoints,
		TheoreticalForward: theoreticalForward,
		MarkToMarket:       mtm,
	}
}

// EquityOptionValuation holds intrinsic/time value and a bucketed delta.
type EquityOptionValuation struct {
	DaysToExpiry   int64
	IntrinsicValue decimal.Decimal
	TimeValue      decimal.Decimal
	Delta          decimal.Decimal
}

// ValueEquityOption computes intrinsic value against spot and a
// three-bucket delta by moneyness (spot/strike, 4dp half-up):
// above 1.1, below 0.9, or at-the-money. Puts mirror call deltas with
// negative sign. The option type matches case-insensitively; anything
// other than CALL prices as a put.
func ValueEquityOption(optionType string, strikePrice, spotPrice, premium decimal.Decimal, tradeDate, expiryDate time.Time) EquityOptionValuation {
	days := DaysBetween(tradeDate, expiryDate)
	isCall := strings.EqualFold(optionType, "CALL")

	var intrinsic decimal.Decimal
	if isCall {
		intrinsic = decimal.Max(spotPrice.Sub(strikePrice), decimal.Zero)
	} else {
		intrinsic = decimal.Max(strikePrice.Sub(spotPrice), decimal.Zero)
	}

	moneyness := spotPrice.DivRound(strikePrice, 4)

	var delta decimal.Decimal
	switch {
	case moneyness.GreaterThan(moneynessHigh):
		delta = deltaDeepITM
	case moneyness.LessThan(moneynessLow):
		delta = deltaOTM
	default:
		delta = deltaATM
	}
	if !isCall {
		// Put deltas are the mirrored negatives: deep ITM call maps
		// to far OTM put and vice versa.
		switch {
		case moneyness.GreaterThan(moneynessHigh):
			delta = deltaOTM.Neg()
		case moneyness.LessThan(moneynessLow):
			delta = deltaDeepITM.Neg()
		default:
			delta = deltaATM.Neg()
		}
	}

	return EquityOptionValuation{
		DaysToExpiry:   days,
		IntrinsicValue: intrinsic,
		TimeValue:      premium.Sub(intrinsic),
		Delta:          delta,
	}
}

// CreditDefaultSwapValuation is the protection/premium breakdown of a CDS.
type CreditDefaultSwapValuation struct {
	DaysToMaturity     int64
	AnnualPremium      decimal.Decimal
	DefaultProbability decimal.Decimal
	ProtectionValue    decimal.Decimal
	CDSValue           decimal.Decimal
}

// ValueCreditDefaultSwap estimates default probability directly from
// the spread (capped at 50%) and values protection as loss-given-default
// times that probability. DaysToMaturity is reported but does not enter
// the valuation.
func ValueCreditDefaultSwap(notional decimal.Decimal, spreadBps int64, recoveryRate decimal.Decimal, tradeDate, maturityDate time.Time) CreditDefaultSwapValuation {
	days := DaysBetween(tradeDate, maturityDate)

	spread := decimal.NewFromInt(spreadBps).Div(tenThousand)
	annualPremium := notional.Mul(spread)

	defaultProb := decimal.Min(spread, maxDefaultPct)
	lossGivenDefault := notional.Mul(decimal.NewFromInt(1).Sub(recoveryRate.Div(oneHundred)))
	protectionValue := lossGivenDefault.Mul(defaultProb)

	return CreditDefaultSwapValuation{
		DaysToMaturity:     days,
		AnnualPremium:      annualPremium,
		DefaultProbability: defaultProb,
		ProtectionValue:    protectionValue,
		CDSValue:           protectionValue.Sub(annualPremium),
	}
}

// DaysBetween returns whole calendar days from a to b in UTC.
func DaysBetween(a, b time.Time) int64 {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int64(end.Sub(start) / (24 * time.Hour))
}
