package domain

import "strings"

// Currency is the original currency a payment was received in.
type Currency string

const (
	EUR Currency = "EUR"
	PEN Currency = "PEN"
	USD Currency = "USD"
)

// SupportedCurrencies lists the currencies accepted at the counters.
var SupportedCurrencies = []Currency{EUR, PEN, USD}

// ParseCurrency normalises a user supplied code. Unknown codes are returned
// upper-cased so the converter can still apply the non-EUR/PEN branch.
func ParseCurrency(code string) Currency {
	return Currency(strings.ToUpper(strings.TrimSpace(code)))
}

// Supported reports whether c is one of SupportedCurrencies.
func (c Currency) Supported() bool {
	for _, s := range SupportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}

// Symbol returns the display prefix used for receipts.
func (c Currency) Symbol() string {
	switch c {
	case EUR:
		return "€"
	case PEN:
		return "S/"
	case USD:
		return "$"
	default:
		return string(c)
	}
}
