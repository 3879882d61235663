package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tradeforge/internal/trade"
)

// RuleError reports the first violated validation rule for a trade.
// The reason is human-readable and becomes the ProcessingResult error
// message verbatim.
type RuleError struct {
	Reason string
}

func (e *RuleError) Error() string {
	return e.Reason
}

func fail(reason string) error {
	return &RuleError{Reason: reason}
}

var (
	maxNotional     = decimal.NewFromInt(10_000_000_000)
	maxFixedRate    = decimal.NewFromInt(20)
	hundred         = decimal.NewFromInt(100)
	currencyPairRe  = regexp.MustCompile(`^[A-Z]{3}/[A-Z]{3}$`)
	validCurrencies = map[string]bool{
		"USD": true, "EUR": true, "GBP": true, "JPY": true,
		"CHF": true, "CAD": true, "AUD": true,
	}
)

// Validator runs pure, stateless rule checks per trade variant.
// Shared envelope checks run before variant checks; the first failing
// rule wins and validation short-circuits.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCommon checks the envelope fields shared by all variants.
func (v *Validator) ValidateCommon(d trade.Details) error {
	if strings.TrimSpace(d.TradeID) == "" {
		return fail("Trade ID cannot be null or empty")
	}
	if d.TradeDate.IsZero() {
		return fail("Trade date cannot be null")
	}
	if dateOnly(d.TradeDate).After(dateOnly(time.Now())) {
		return fail("Trade date cannot be in the future")
	}
	if d.SettlementDate.IsZero() {
		return fail("Settlement date cannot be null")
	}
	if d.SettlementDate.Before(d.TradeDate) {
		return fail("Settlement date must be on or after trade date")
	}
	if strings.TrimSpace(d.Counterparty) == "" {
		return fail("Counterparty cannot be null or empty")
	}
	if d.Notional.LessThanOrEqual(decimal.Zero) {
		return fail("Notional must be greater than zero")
	}
	if d.Notional.GreaterThan(maxNotional) {
		return fail("Notional exceeds maximum allowed: " + maxNotional.String())
	}
	if !validCurrencies[d.Currency] {
		return fail("Invalid currency: " + d.Currency)
	}
	return nil
}

// ValidateInterestRateSwap checks an interest rate swap.
func (v *Validator) ValidateInterestRateSwap(s *trade.InterestRateSwap) error {
	if err := v.ValidateCommon(s.Details); err != nil {
		return err
	}

	if s.FixedRate == nil || s.FixedRate.IsNegative() || s.FixedRate.GreaterThan(maxFixedRate) {
		return fail("Fixed rate must be between 0% and 20%")
	}
	if strings.TrimSpace(s.FloatingRateIndex) == "" {
		return fail("Floating rate index cannot be null or empty")
	}
	if strings.TrimSpace(s.Direction) == "" {
		return fail("Direction cannot be null or empty")
	}
	if s.EffectiveDate != nil && s.EffectiveDate.Before(s.TradeDate) {
		return fail("Effective date cannot be before trade date")
	}
	return nil
}

// ValidateEquitySwap checks an equity swap.
func (v *Validator) ValidateEquitySwap(s *trade.EquitySwap) error {
	if err := v.ValidateCommon(s.Details); err != nil {
		return err
	}

	if strings.TrimSpace(s.ReferenceAsset) == "" {
		return fail("Reference asset cannot be null or empty")
	}
	if s.ReturnType == "" {
		return fail("Return type cannot be null")
	}
	if s.FundingLeg == "" {
		return fail("Funding leg cannot be null")
	}
	return nil
}

// ValidateFXForward checks an FX forward.
func (v *Validator) ValidateFXForward(f *trade.FXForward) error {
	if err := v.ValidateCommon(f.Details); err != nil {
		return err
	}

	if strings.TrimSpace(f.CurrencyPair) == "" {
		return fail("Currency pair cannot be null or empty")
	}
	if !currencyPairRe.MatchString(f.CurrencyPair) {
		return fail("Invalid currency pair format. Expected XXX/YYY")
	}
	if f.ForwardRate.LessThanOrEqual(decimal.Zero) {
		return fail("Forward rate must be greater than zero")
	}
	if f.MaturityDate == nil {
		return fail("Maturity date cannot be null")
	}
	if f.MaturityDate.Before(f.TradeDate) {
		return fail("Maturity date must be after trade date")
	}
	if f.MaturityDate.After(f.TradeDate.AddDate(2, 0, 0)) {
		return fail("Maturity date cannot be more than 2 years from trade date")
	}
	return nil
}

// ValidateEquityOption checks an equity option.
func (v *Validator) ValidateEquityOption(o *trade.EquityOption) error {
	if err := v.ValidateCommon(o.Details); err != nil {
		return err
	}

	if o.OptionType == "" {
		return fail("Option type cannot be null")
	}
	if o.StrikePrice.LessThanOrEqual(decimal.Zero) {
		return fail("Strike price must be greater than zero")
	}
	if o.ExpiryDate.IsZero() {
		return fail("Expiry date cannot be null")
	}
	if o.ExpiryDate.Before(o.TradeDate) {
		return fail("Expiry date must be after trade date")
	}
	if o.Premium == nil || o.Premium.IsNegative() {
		return fail("Premium cannot be negative")
	}
	if strings.TrimSpace(o.UnderlyingAsset) == "" {
		return fail("Underlying asset cannot be null or empty")
	}
	return nil
}

// ValidateCreditDefaultSwap checks a credit default swap.
func (v *Validator) ValidateCreditDefaultSwap(c *trade.CreditDefaultSwap) error {
	if err := v.ValidateCommon(c.Details); err != nil {
		return err
	}

	if strings.TrimSpace(c.ReferenceEntity) == "" {
		return fail("Reference entity cannot be null or empty")
	}
	if c.SpreadBps < 0 || c.SpreadBps > 10000 {
		return fail("Spread must be between 0 and 10,000 bps")
	}
	if c.MaturityDate == nil {
		return fail("Maturity date cannot be null")
	}
	if c.MaturityDate.Before(c.TradeDate.AddDate(1, 0, 0)) {
		return fail("CDS tenor must be at least 1 year")
	}
	if c.MaturityDate.After(c.TradeDate.AddDate(10, 0, 0)) {
		return fail("CDS tenor cannot exceed 10 years")
	}
	if c.RecoveryRate == nil || c.RecoveryRate.IsNegative() || c.RecoveryRate.GreaterThan(hundred) {
		return fail("Recovery rate must be between 0 and 100")
	}
	return nil
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
