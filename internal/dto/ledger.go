package dto

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
)

// ConvertRequest asks for a single amount to be expressed in EUR.
type ConvertRequest struct {
	Quantity     Amount `json:"quantity"`
	Currency     string `json:"currency" binding:"omitempty,agency_currency"`
	ExchangeRate Amount `json:"exchange_rate"`
}

// ConvertResponse is the converter result, formatted to two decimals.
type ConvertResponse struct {
	Currency     string `json:"currency"`
	Quantity     string `json:"quantity"`
	ExchangeRate string `json:"exchange_rate"`
	AmountEUR    string `json:"amount_eur"`
	Total        string `json:"total"`
}

// PreviewRequest carries the state of a transaction form being edited.
type PreviewRequest struct {
	Kind                 domain.ServiceKind  `json:"kind" binding:"required,oneof=flight transfer translation other"`
	Cost                 Amount              `json:"cost"`
	SoldPrice            Amount              `json:"sold_price"`
	TotalAmount          Amount              `json:"total_amount"`
	NetAmount            Amount              `json:"net_amount"`
	AmountSent           Amount              `json:"amount_sent"`
	ExchangeRate         Amount              `json:"exchange_rate"`
	CommissionPercentage Amount              `json:"commission_percentage"`
	Mode                 domain.TransferMode `json:"transfer_mode" binding:"omitempty,oneof=eur_to_pen pen_to_eur"`
	Payments             []PaymentRequest    `json:"payment_details" binding:"dive"`
	Expenses             []ExpenseRequest    `json:"expense_details" binding:"dive"`
	Draft                *PaymentRequest     `json:"draft"`
}

// PreviewResponse holds the recomputed ledger figures of a form.
type PreviewResponse struct {
	Kind           domain.ServiceKind `json:"kind"`
	TotalInEUR     string             `json:"total_in_eur"`
	OnAccount      string             `json:"on_account"`
	Balance        string             `json:"balance"`
	Fee            string             `json:"fee_agv,omitempty"`
	Commission     string             `json:"commission,omitempty"`
	AmountReceived string             `json:"amount_received,omitempty"`
	TotalAmount    string             `json:"total_amount,omitempty"`
	NetProfit      string             `json:"net_profit,omitempty"`
}
