package dto

import (
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/utils/accounting"
)

// PaymentRequest is one entry of a submitted payment_details array, or the
// body of a single payment update.
type PaymentRequest struct {
	SiteIT         string     `json:"sede_it"`
	SitePE         string     `json:"sede_pe"`
	MethodIT       string     `json:"metodo_it"`
	MethodPE       string     `json:"metodo_pe"`
	Currency       string     `json:"moneda" binding:"omitempty,agency_currency"`
	OriginalAmount Amount     `json:"monto_original"`
	ExchangeRate   Amount     `json:"tipo_cambio"`
	ProofPath      string     `json:"proof_path"`
	CreatedAt      *time.Time `json:"created_at"`
}

// ToInput maps the request onto converter input.
func (r PaymentRequest) ToInput() domain.PaymentInput {
	currency := domain.ParseCurrency(r.Currency)
	if currency == "" {
		currency = domain.EUR
	}
	return domain.PaymentInput{
		SiteIT:       r.SiteIT,
		SitePE:       r.SitePE,
		MethodIT:     r.MethodIT,
		MethodPE:     r.MethodPE,
		Currency:     currency,
		Quantity:     r.OriginalAmount.Dec(),
		ExchangeRate: r.ExchangeRate.Dec(),
		ProofPath:    r.ProofPath,
	}
}

// ToEntry converts the request, keeping a previously saved creation time.
func (r PaymentRequest) ToEntry(now time.Time) domain.PaymentEntry {
	if r.CreatedAt != nil && !r.CreatedAt.IsZero() {
		now = *r.CreatedAt
	}
	return accounting.NewPaymentEntry(r.ToInput(), now)
}

// ExpenseRequest is one entry of a submitted expense_details array.
type ExpenseRequest struct {
	PaymentRequest
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
}

// ToEntry converts the request, keeping a previously saved creation time.
func (r ExpenseRequest) ToEntry(now time.Time) domain.ExpenseEntry {
	if r.CreatedAt != nil && !r.CreatedAt.IsZero() {
		now = *r.CreatedAt
	}
	return accounting.NewExpenseEntry(domain.ExpenseInput{
		PaymentInput: r.ToInput(),
		Category:     r.Category,
		Description:  r.Description,
	}, now)
}

// PaymentResponse renders a stored payment with fixed two decimal amounts.
type PaymentResponse struct {
	SiteIT         string    `json:"sede_it,omitempty"`
	SitePE         string    `json:"sede_pe,omitempty"`
	MethodIT       string    `json:"metodo_it,omitempty"`
	MethodPE       string    `json:"metodo_pe,omitempty"`
	Amount         string    `json:"cantidad"`
	Currency       string    `json:"moneda"`
	OriginalAmount string    `json:"monto_original"`
	ExchangeRate   string    `json:"tipo_cambio"`
	Total          string    `json:"total"`
	CreatedAt      time.Time `json:"created_at"`
	ProofPath      string    `json:"proof_path,omitempty"`
}

// ExpenseResponse renders a stored expense.
type ExpenseResponse struct {
	PaymentResponse
	Category    string `json:"category"`
	Description string `json:"description"`
}

// ToPaymentResponse converts a domain payment.
func ToPaymentResponse(p domain.PaymentEntry) PaymentResponse {
	return PaymentResponse{
		SiteIT:         p.SiteIT,
		SitePE:         p.SitePE,
		MethodIT:       p.MethodIT,
		MethodPE:       p.MethodPE,
		Amount:         accounting.Format(p.Amount),
		Currency:       string(p.Currency),
		OriginalAmount: accounting.Format(p.OriginalAmount),
		ExchangeRate:   accounting.FormatRate(p.ExchangeRate),
		Total:          p.Total,
		CreatedAt:      p.CreatedAt,
		ProofPath:      p.ProofPath,
	}
}

// ToPaymentResponses converts a payment list, never returning nil.
func ToPaymentResponses(payments []domain.PaymentEntry) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(p)
	}
	return responses
}

// ToExpenseResponses converts an expense list, never returning nil.
func ToExpenseResponses(expenses []domain.ExpenseEntry) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ExpenseResponse{
			PaymentResponse: ToPaymentResponse(e.PaymentEntry),
			Category:        e.Category,
			Description:     e.Description,
		}
	}
	return responses
}
