package trade

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Type discriminator for trade variants
type Type int32

const (
	TypeUnknown Type = iota
	TypeInterestRateSwap
	TypeEquitySwap
	TypeFXForward
	TypeEquityOption
	TypeCreditDefaultSwap
)

// Details carries the envelope fields shared by every trade variant.
type Details struct {
	TradeID        string
	TradeDate      time.Time
	SettlementDate time.Time
	MaturityDate   *time.Time
	Counterparty   string
	Notional       decimal.Decimal
	Currency       string
}

// Trade is the interface all trade variants implement.
// Trades are immutable inputs: the pipeline derives new records
// from them and never writes back.
type Trade interface {
	// ID returns the upstream trade identifier
	ID() string

	// TradeType returns the discriminator
	TradeType() Type

	// Common returns the shared envelope fields
	Common() Details
}

func (t Type) String() string {
	switch t {
	case TypeInterestRateSwap:
		return "INTEREST_RATE_SWAP"
	case TypeEquitySwap:
		return "EQUITY_SWAP"
	case TypeFXForward:
		return "FX_FORWARD"
	case TypeEquityOption:
		return "EQUITY_OPTION"
	case TypeCreditDefaultSwap:
		return "CREDIT_DEFAULT_SWAP"
	default:
		return "UNKNOWN"
	}
}

// ParseType maps a wire-format type tag to a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "INTEREST_RATE_SWAP":
		return TypeInterestRateSwap, nil
	case "EQUITY_SWAP":
		return TypeEquitySwap, nil
	case "FX_FORWARD":
		return TypeFXForward, nil
	case "EQUITY_OPTION":
		return TypeEquityOption, nil
	case "CREDIT_DEFAULT_SWAP":
		return TypeCreditDefaultSwap, nil
	default:
		return TypeUnknown, fmt.Errorf("unknown trade type: %q", s)
	}
}

// AllTypes lists every concrete trade type. The processor registry
// uses this to verify routing is total.
func AllTypes() []Type {
	return []Type{
		TypeInterestRateSwap,
		TypeEquitySwap,
		TypeFXForward,
		TypeEquityOption,
		TypeCreditDefaultSwap,
	}
}
