package enrichment

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Counterparty credit tiers. Tier drives the base funding spread.
const (
	Tier1 = "TIER_1"
	Tier2 = "TIER_2"
	Tier3 = "TIER_3"
)

var (
	sofrRate    = decimal.RequireFromString("5.30")
	liborRate   = decimal.RequireFromString("5.50")
	euriborRate = decimal.RequireFromString("3.90")
	defaultRate = decimal.RequireFromString("5.00")

	defaultEquityPrice = decimal.RequireFromString("100.00")
	defaultFXRate      = decimal.RequireFromString("1.00")

	largeNotional = decimal.NewFromInt(100_000_000)
)

var equityPrices = map[string]decimal.Decimal{
	"AAPL":  decimal.RequireFromString("185.50"),
	"MSFT":  decimal.RequireFromString("378.20"),
	"GOOGL": decimal.RequireFromString("142.80"),
	"SPX":   decimal.RequireFromString("4700.00"),
	"TSLA":  decimal.RequireFromString("208.50"),
}

var fxRates = map[string]decimal.Decimal{
	"EUR/USD": decimal.RequireFromString("1.0850"),
	"GBP/USD": decimal.RequireFromString("1.2650"),
	"USD/JPY": decimal.RequireFromString("150.00"),
	"USD/CHF": decimal.RequireFromString("0.8750"),
	"AUD/USD": decimal.RequireFromString("0.6550"),
}

var counterpartyTiers = map[string]string{
	"Goldman Sachs":    Tier1,
	"JP Morgan":        Tier1,
	"Morgan Stanley":   Tier1,
	"Citigroup":        Tier1,
	"Bank of America":  Tier2,
	"Barclays":         Tier2,
	"Deutsche Bank":    Tier2,
	"UBS":              Tier2,
	"Credit Suisse":    Tier2,
	"BNP Paribas":      Tier3,
	"Societe Generale": Tier3,
	"HSBC":             Tier3,
	"RBC":              Tier3,
}

// Enricher resolves market reference data from static tables.
// Lookups are pure, total and safe for unsynchronized concurrent use:
// unknown keys fall back to fixed defaults, never errors.
type Enricher struct{}

func NewEnricher() *Enricher {
	return &Enricher{}
}

// SofrRate returns the static SOFR fixing in percent.
func (e *Enricher) SofrRate() decimal.Decimal {
	return sofrRate
}

// RateByIndex returns the rate fixing in percent for a floating rate
// index, case-insensitively. Unknown indices resolve to 5.00.
func (e *Enricher) RateByIndex(index string) decimal.Decimal {
	switch strings.ToUpper(index) {
	case "SOFR":
		return sofrRate
	case "LIBOR":
		return liborRate
	case "EURIBOR":
		return euriborRate
	default:
		return defaultRate
	}
}

// EquityPrice returns the spot price for a ticker, 100.00 if unknown.
func (e *Enricher) EquityPrice(ticker string) decimal.Decimal {
	if price, ok := equityPrices[ticker]; ok {
		return price
	}
	return defaultEquityPrice
}

// FXRate returns the spot rate for a currency pair, 1.00 if unknown.
func (e *Enricher) FXRate(currencyPair string) decimal.Decimal {
	if rate, ok := fxRates[currencyPair]; ok {
		return rate
	}
	return defaultFXRate
}

// CounterpartyTier returns the credit tier for a counterparty name,
// Tier3 if unknown.
func (e *Enricher) CounterpartyTier(counterparty string) string {
	if tier, ok := counterpartyTiers[counterparty]; ok {
		return tier
	}
	return Tier3
}

// Spread returns the counterparty funding spread in basis points:
// 50/100/200 by tier, reduced by 25 when notional exceeds 100M.
func (e *Enricher) Spread(counterparty string, notional decimal.Decimal) decimal.Decimal {
	var baseSpread int64
	switch e.CounterpartyTier(counterparty) {
	case Tier1:
		baseSpread = 50
	case Tier2:
		baseSpread = 100
	case Tier3:
		baseSpread = 200
	default:
		baseSpread = 150
	}

	if notional.GreaterThan(largeNotional) {
		baseSpread -= 25
	}

	return decimal.NewFromInt(baseSpread)
}
