package ingestion

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tradeforge/internal/trade"
)

// ParseTrade converts a raw JSON payload into a typed trade. The
// payload carries its own type tag; unknown tags and undecodable
// payloads are errors (the consumer naks those for redelivery).
// Missing business fields are not errors here: presence rules belong
// to the validator, which owns the error messages.
func ParseTrade(data []byte) (trade.Trade, error) {
	var envelope struct {
		TradeType string `json:"tradeType"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("parse trade envelope: %w", err)
	}

	tradeType, err := trade.ParseType(envelope.TradeType)
	if err != nil {
		return nil, err
	}

	switch tradeType {
	case trade.TypeInterestRateSwap:
		return parseInterestRateSwap(data)
	case trade.TypeEquitySwap:
		return parseEquitySwap(data)
	case trade.TypeFXForward:
		return parseFXForward(data)
	case trade.TypeEquityOption:
		return parseEquityOption(data)
	case trade.TypeCreditDefaultSwap:
		return parseCreditDefaultSwap(data)
	default:
		return nil, fmt.Errorf("unknown trade type: %s", envelope.TradeType)
	}
}

// --- JSON wire formats ---
// Field names use camelCase to match upstream producers. Dates are
// calendar dates in ISO-8601 (2006-01-02).

const wireDateFormat = "2006-01-02"

type detailsJSON struct {
	TradeID        string           `json:"tradeId"`
	TradeDate      string           `json:"tradeDate"`
	SettlementDate string           `json:"settlementDate"`
	MaturityDate   *string          `json:"maturityDate"`
	Counterparty   string           `json:"counterparty"`
	Notional       *decimal.Decimal `json:"notional"`
	Currency       string           `json:"currency"`
}

func (j detailsJSON) toDetails() (trade.Details, error) {
	tradeDate, err := parseWireDate(j.TradeDate)
	if err != nil {
		return trade.Details{}, fmt.Errorf("parse tradeDate: %w", err)
	}
	settlementDate, err := parseWireDate(j.SettlementDate)
	if err != nil {
		return trade.Details{}, fmt.Errorf("parse settlementDate: %w", err)
	}
	maturityDate, err := parseWireDatePtr(j.MaturityDate)
	if err != nil {
		return trade.Details{}, fmt.Errorf("parse maturityDate: %w", err)
	}

	notional := decimal.Zero
	if j.Notional != nil {
		notional = *j.Notional
	}

	return trade.Details{
		TradeID:        j.TradeID,
		TradeDate:      tradeDate,
		SettlementDate: settlementDate,
		MaturityDate:   maturityDate,
		Counterparty:   j.Counterparty,
		Notional:       notional,
		Currency:       j.Currency,
	}, nil
}

type interestRateSwapJSON struct {
	detailsJSON
	FixedRate         *decimal.Decimal `json:"fixedRate"`
	FloatingRateIndex string           `json:"floatingRateIndex"`
	FloatingSpreadBps *int64           `json:"floatingSpreadBps"`
	Direction         string           `json:"direction"`
	EffectiveDate     *string          `json:"effectiveDate"`
}

func parseInterestRateSwap(data []byte) (*trade.InterestRateSwap, error) {
	var j interestRateSwapJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse interest rate swap: %w", err)
	}
	details, err := j.toDetails()
	if err != nil {
		return nil, err
	}
	effectiveDate, err := parseWireDatePtr(j.EffectiveDate)
	if err != nil {
		return nil, fmt.Errorf("parse effectiveDate: %w", err)
	}

	return &trade.InterestRateSwap{
		Details:           details,
		FixedRate:         j.FixedRate,
		FloatingRateIndex: j.FloatingRateIndex,
		FloatingSpreadBps: j.FloatingSpreadBps,
		Direction:         j.Direction,
		EffectiveDate:     effectiveDate,
	}, nil
}

type equitySwapJSON struct {
	detailsJSON
	ReferenceAsset string `json:"referenceAsset"`
	ReturnType     string `json:"returnType"`
	FundingLeg     string `json:"fundingLeg"`
}

func parseEquitySwap(data []byte) (*trade.EquitySwap, error) {
	var j equitySwapJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse equity swap: %w", err)
	}
	details, err := j.toDetails()
	if err != nil {
		return nil, err
	}

	return &trade.EquitySwap{
		Details:        details,
		ReferenceAsset: j.ReferenceAsset,
		ReturnType:     j.ReturnType,
		FundingLeg:     j.FundingLeg,
	}, nil
}

type fxForwardJSON struct {
	detailsJSON
	CurrencyPair string           `json:"currencyPair"`
	ForwardRate  *decimal.Decimal `json:"forwardRate"`
}

func parseFXForward(data []byte) (*trade.FXForward, error) {
	var j fxForwardJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse fx forward: %w", err)
	}
	details, err := j.toDetails()
	if err != nil {
		return nil, err
	}

	forwardRate := decimal.Zero
	if j.ForwardRate != nil {
		forwardRate = *j.ForwardRate
	}

	return &trade.FXForward{
		Details:      details,
		CurrencyPair: j.CurrencyPair,
		ForwardRate:  forwardRate,
	}, nil
}

type equityOptionJSON struct {
	detailsJSON
	OptionType      string           `json:"optionType"`
	StrikePrice     *decimal.Decimal `json:"strikePrice"`
	Premium         *decimal.Decimal `json:"premium"`
	ExpiryDate      *string          `json:"expiryDate"`
	UnderlyingAsset string           `json:"underlyingAsset"`
}

func parseEquityOption(data []byte) (*trade.EquityOption, error) {
	var j equityOptionJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse equity option: %w", err)
	}
	details, err := j.toDetails()
	if err != nil {
		return nil, err
	}

	strikePrice := decimal.Zero
	if j.StrikePrice != nil {
		strikePrice = *j.StrikePrice
	}

	var expiryDate time.Time
	if j.ExpiryDate != nil {
		expiryDate, err = parseWireDate(*j.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("parse expiryDate: %w", err)
		}
	}

	return &trade.EquityOption{
		Details:         details,
		OptionType:      j.OptionType,
		StrikePrice:     strikePrice,
		Premium:         j.Premium,
		ExpiryDate:      expiryDate,
		UnderlyingAsset: j.UnderlyingAsset,
	}, nil
}

type creditDefaultSwapJSON struct {
	detailsJSON
	ReferenceEntity string           `json:"referenceEntity"`
	SpreadBps       int64            `json:"spreadBps"`
	RecoveryRate    *decimal.Decimal `json:"recoveryRate"`
}

func parseCreditDefaultSwap(data []byte) (*trade.CreditDefaultSwap, error) {
	var j creditDefaultSwapJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse credit default swap: %w", err)
	}
	details, err := j.toDetails()
	if err != nil {
		return nil, err
	}

	return &trade.CreditDefaultSwap{
		Details:         details,
		ReferenceEntity: j.ReferenceEntity,
		SpreadBps:       j.SpreadBps,
		RecoveryRate:    j.RecoveryRate,
	}, nil
}

func parseWireDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(wireDateFormat, s)
}

func parseWireDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(wireDateFormat, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
