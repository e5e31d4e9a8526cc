package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentEntry is one received payment. Once saved it is only replaced as a
// whole; Amount (cantidad) is the EUR equivalent and the only value that
// affects accounting.
type PaymentEntry struct {
	SiteIT         string          `json:"sede_it,omitempty"`
	SitePE         string          `json:"sede_pe,omitempty"`
	MethodIT       string          `json:"metodo_it,omitempty"`
	MethodPE       string          `json:"metodo_pe,omitempty"`
	Amount         decimal.Decimal `json:"cantidad"`
	Currency       Currency        `json:"moneda"`
	OriginalAmount decimal.Decimal `json:"monto_original"`
	ExchangeRate   decimal.Decimal `json:"tipo_cambio"`
	Total          string          `json:"total"`
	CreatedAt      time.Time       `json:"created_at"`
	ProofPath      string          `json:"proof_path,omitempty"`
}

// ExpenseEntry is a cost incurred on a money transfer. It has the shape of a
// payment but reduces net profit instead of adding to on-account.
type ExpenseEntry struct {
	PaymentEntry
	Category    string `json:"category"`
	Description string `json:"description"`
}

// PaymentInput is what an operator types into the register payment form.
type PaymentInput struct {
	SiteIT       string
	SitePE       string
	MethodIT     string
	MethodPE     string
	Currency     Currency
	Quantity     decimal.Decimal
	ExchangeRate decimal.Decimal
	ProofPath    string
}

// ExpenseInput is the expense sub-form counterpart of PaymentInput.
type ExpenseInput struct {
	PaymentInput
	Category    string
	Description string
}

// Input recovers the operator input an entry was built from.
func (p PaymentEntry) Input() PaymentInput {
	return PaymentInput{
		SiteIT:       p.SiteIT,
		SitePE:       p.SitePE,
		MethodIT:     p.MethodIT,
		MethodPE:     p.MethodPE,
		Currency:     p.Currency,
		Quantity:     p.OriginalAmount,
		ExchangeRate: p.ExchangeRate,
		ProofPath:    p.ProofPath,
	}
}
