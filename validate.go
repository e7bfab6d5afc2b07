package carteira

import (
	"strings"

	"github.com/canhoto/carteira/date"
	"github.com/shopspring/decimal"
)

// Validation runs at the data-entry edge, before anything is dispatched.
// Each Validate returns a normalized copy and applies quick-fixes: a zero
// date defaults to today, a missing gross value is derived from quantity and
// unit price.

// ValidateCode checks and normalizes an asset code.
func ValidateCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", validationf("code", "is missing")
	}
	return code, nil
}

// Validate checks the transaction's fields, defaulting date and gross value.
func (t Transaction) Validate() (Transaction, error) {
	if t.Date.IsZero() {
		t.Date = date.Today()
	}
	if t.Quantity <= 0 {
		return t, validationf("quantity", "must be a positive whole number, got %d", t.Quantity)
	}
	if !t.UnitPrice.IsPositive() {
		return t, validationf("unitPrice", "must be positive, got %s", t.UnitPrice)
	}
	if t.Fee.IsNegative() {
		return t, validationf("fee", "must not be negative, got %s", t.Fee)
	}
	if t.GrossValue.IsZero() {
		t.GrossValue = t.UnitPrice.Mul(decimal.NewFromInt(t.Quantity))
	}
	return t, nil
}

// Validate checks the distribution's fields, defaulting a zero date to today.
func (d Distribution) Validate() (Distribution, error) {
	if d.Date.IsZero() {
		d.Date = date.Today()
	}
	if !d.Value.IsPositive() {
		return d, validationf("value", "must be positive, got %s", d.Value)
	}
	return d, nil
}

// Validate checks the cash movement's fields, defaulting a zero date to
// today and trimming the source.
func (m CashMovement) Validate() (CashMovement, error) {
	if m.Date.IsZero() {
		m.Date = date.Today()
	}
	m.Source = strings.TrimSpace(m.Source)
	if m.Source == "" {
		return m, validationf("source", "is missing")
	}
	if !m.Value.IsPositive() {
		return m, validationf("value", "must be positive, got %s", m.Value)
	}
	return m, nil
}

// ValidateQuote checks an externally supplied quote.
func ValidateQuote(quote decimal.Decimal) (decimal.Decimal, error) {
	if quote.IsNegative() {
		return quote, validationf("currentQuote", "must not be negative, got %s", quote)
	}
	return quote, nil
}
