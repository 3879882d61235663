package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeRecord is the flat persisted projection of a trade, one row in
// the trades table. Variant-specific columns are nullable; exactly one
// column group is populated per row. A record is built fresh per
// booking attempt and owned by that attempt's transaction.
type TradeRecord struct {
	TradeID        string
	TradeType      string
	TradeDate      time.Time
	SettlementDate time.Time
	MaturityDate   *time.Time
	Counterparty   string
	Notional       decimal.Decimal
	Currency       string

	// Interest rate swap
	FixedRate         *decimal.Decimal
	FloatingRateIndex *string
	FloatingSpreadBps *int64
	Direction         *string

	// Equity swap
	ReferenceAsset *string
	ReturnType     *string
	FundingLeg     *string

	// FX forward
	CurrencyPair *string
	ForwardRate  *decimal.Decimal

	// Equity option
	OptionType      *string
	StrikePrice     *decimal.Decimal
	Premium         *decimal.Decimal
	ExpiryDate      *time.Time
	UnderlyingAsset *string

	// Credit default swap
	ReferenceEntity *string
	SpreadBps       *int64
	RecoveryRate    *int64

	// Audit
	ProcessedAt          time.Time
	ProcessingDurationMs *int64
	Status               string
}
