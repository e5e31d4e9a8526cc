package accounting

import (
	"strings"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimals every displayed or persisted amount carries.
const MoneyPlaces = 2

// Stored precision of transfer rates and commission percentages. Ledger
// figures are computed from the values rounded to these places so that a
// transfer read back from storage recomputes to the same balance.
const (
	RatePlaces    = 4
	PercentPlaces = 2
)

var (
	hundred = decimal.NewFromInt(100)
	// Largest magnitude a NUMERIC(12,2) column holds, exclusive.
	amountLimit = decimal.New(1, 10)
)

// maxAmountLen bounds operator input well above any in-range figure.
const maxAmountLen = 32

// ParseAmount reads an operator typed number. Empty or malformed input is 0,
// never an error. Both "12.5" and "12,5" are accepted. Exponents and figures
// outside the stored column range count as malformed.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" || len(s) > maxAmountLen || strings.ContainsAny(s, "eE") {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		if d, err = decimal.NewFromString(strings.ReplaceAll(s, ",", ".")); err != nil {
			return decimal.Zero
		}
	}
	if d.Abs().GreaterThanOrEqual(amountLimit) {
		return decimal.Zero
	}
	return d
}

// Round rounds an amount to MoneyPlaces, half away from zero.
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPlaces)
}

// Format renders an amount with exactly MoneyPlaces decimals.
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPlaces)
}

// FormatRate renders exchange rates and percentages with at least two
// decimals, keeping any extra precision the operator typed.
func FormatRate(rate decimal.Decimal) string {
	if rate.Exponent() >= -MoneyPlaces {
		return rate.StringFixed(MoneyPlaces)
	}
	return rate.String()
}

// ConvertToEUR returns the EUR equivalent of quantity and the rate that was
// effectively applied.
//
// The rate convention is not symmetric: PEN rates are quoted as soles per euro
// (divide), USD and any other currency as euros per unit (multiply). A zero PEN
// rate yields 0. EUR ignores the rate and reports 1.
func ConvertToEUR(quantity decimal.Decimal, currency domain.Currency, rate decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	switch currency {
	case domain.EUR:
		return Round(quantity), decimal.NewFromInt(1)
	case domain.PEN:
		if rate.IsZero() {
			return decimal.Zero, rate
		}
		return Round(quantity.Div(rate)), rate
	default:
		return Round(quantity.Mul(rate)), rate
	}
}

// FormatOriginal renders the amount as received, e.g. "S/ 400.00".
func FormatOriginal(currency domain.Currency, amount decimal.Decimal) string {
	return currency.Symbol() + " " + Format(amount)
}

// NewPaymentEntry converts operator input into a payment entry stamped with now.
func NewPaymentEntry(in domain.PaymentInput, now time.Time) domain.PaymentEntry {
	currency := in.Currency
	if currency == "" {
		currency = domain.EUR
	}
	eur, rate := ConvertToEUR(in.Quantity, currency, in.ExchangeRate)
	return domain.PaymentEntry{
		SiteIT:         in.SiteIT,
		SitePE:         in.SitePE,
		MethodIT:       in.MethodIT,
		MethodPE:       in.MethodPE,
		Amount:         eur,
		Currency:       currency,
		OriginalAmount: in.Quantity,
		ExchangeRate:   rate,
		Total:          FormatOriginal(currency, in.Quantity),
		CreatedAt:      now,
		ProofPath:      in.ProofPath,
	}
}

// NewExpenseEntry is the expense counterpart of NewPaymentEntry.
func NewExpenseEntry(in domain.ExpenseInput, now time.Time) domain.ExpenseEntry {
	return domain.ExpenseEntry{
		PaymentEntry: NewPaymentEntry(in.PaymentInput, now),
		Category:     in.Category,
		Description:  in.Description,
	}
}
