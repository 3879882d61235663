package enrichment_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"tradeforge/internal/enrichment"
)

func assertDecimal(t *testing.T, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestRateByIndex(t *testing.T) {
	e := enrichment.NewEnricher()

	assertDecimal(t, e.RateByIndex("SOFR"), "5.30")
	assertDecimal(t, e.RateByIndex("LIBOR"), "5.50")
	assertDecimal(t, e.RateByIndex("EURIBOR"), "3.90")
	assertDecimal(t, e.RateByIndex("ESTR"), "5.00")
}

func TestRateByIndex_CaseInsensitive(t *testing.T) {
	e := enrichment.NewEnricher()

	assertDecimal(t, e.RateByIndex("sofr"), "5.30")
	assertDecimal(t, e.RateByIndex("Euribor"), "3.90")
}

func TestSofrRate(t *testing.T) {
	e := enrichment.NewEnricher()
	assertDecimal(t, e.SofrRate(), "5.30")
}

func TestEquityPrice(t *testing.T) {
	e := enrichment.NewEnricher()

	assertDecimal(t, e.EquityPrice("AAPL"), "185.50")
	assertDecimal(t, e.EquityPrice("MSFT"), "378.20")
	assertDecimal(t, e.EquityPrice("GOOGL"), "142.80")
	assertDecimal(t, e.EquityPrice("SPX"), "4700.00")
	assertDecimal(t, e.EquityPrice("TSLA"), "208.50")
	assertDecimal(t, e.EquityPrice("NVDA"), "100.00")
}

func TestFXRate(t *testing.T) {
	e := enrichment.NewEnricher()

	assertDecimal(t, e.FXRate("EUR/USD"), "1.0850")
	assertDecimal(t, e.FXRate("GBP/USD"), "1.2650")
	assertDecimal(t, e.FXRate("USD/JPY"), "150.00")
	assertDecimal(t, e.FXRate("USD/CHF"), "0.8750")
	assertDecimal(t, e.FXRate("AUD/USD"), "0.6550")
	assertDecimal(t, e.FXRate("NZD/USD"), "1.00")
}

func TestCounterpartyTier(t *testing.T) {
	e := enrichment.NewEnricher()

	if tier := e.CounterpartyTier("Goldman Sachs"); tier != enrichment.Tier1 {
		t.Errorf("Goldman Sachs: got %s, want %s", tier, enrichment.Tier1)
	}
	if tier := e.CounterpartyTier("UBS"); tier != enrichment.Tier2 {
		t.Errorf("UBS: got %s, want %s", tier, enrichment.Tier2)
	}
	if tier := e.CounterpartyTier("HSBC"); tier != enrichment.Tier3 {
		t.Errorf("HSBC: got %s, want %s", tier, enrichment.Tier3)
	}
	if tier := e.CounterpartyTier("Unknown Broker"); tier != enrichment.Tier3 {
		t.Errorf("unknown counterparty: got %s, want %s", tier, enrichment.Tier3)
	}
}

func TestSpread_ByTier(t *testing.T) {
	e := enrichment.NewEnricher()
	notional := decimal.NewFromInt(1_000_000)

	assertDecimal(t, e.Spread("JP Morgan", notional), "50")
	assertDecimal(t, e.Spread("Barclays", notional), "100")
	assertDecimal(t, e.Spread("BNP Paribas", notional), "200")
	assertDecimal(t, e.Spread("Unknown Broker", notional), "200")
}

func TestSpread_LargeNotionalDiscount(t *testing.T) {
	e := enrichment.NewEnricher()

	large := decimal.NewFromInt(100_000_001)
	assertDecimal(t, e.Spread("JP Morgan", large), "25")
	assertDecimal(t, e.Spread("Barclays", large), "75")

	// Exactly 100M does not qualify for the discount.
	atThreshold := decimal.NewFromInt(100_000_000)
	assertDecimal(t, e.Spread("JP Morgan", atThreshold), "50")
}

func TestLookupsAreIdempotent(t *testing.T) {
	e := enrichment.NewEnricher()

	first := e.EquityPrice("AAPL")
	second := e.EquityPrice("AAPL")
	if !first.Equal(second) {
		t.Errorf("repeated lookup changed: %s then %s", first, second)
	}
}
