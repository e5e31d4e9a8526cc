package dto

import (
	"bytes"

	"github.com/SscSPs/agency_backoffice/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Amount is a money field that accepts JSON numbers and strings alike. Empty,
// null or malformed values decode to zero instead of failing the request.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(bytes.TrimSpace(data), `"`)
	if string(raw) == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = accounting.ParseAmount(string(raw))
	return nil
}

// Dec returns the underlying decimal.
func (a Amount) Dec() decimal.Decimal {
	return a.Decimal
}
