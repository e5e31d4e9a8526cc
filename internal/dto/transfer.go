package dto

import (
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/utils/accounting"
)

// TransferRequest is the body of a money transfer create or update submission.
type TransferRequest struct {
	ClientID             string              `json:"client_id" binding:"required"`
	AgentID              string              `json:"agent_id"`
	BeneficiaryName      string              `json:"beneficiary_name" binding:"required"`
	BeneficiaryDocument  string              `json:"beneficiary_document"`
	BeneficiaryBank      string              `json:"beneficiary_bank"`
	BeneficiaryAccount   string              `json:"beneficiary_account"`
	Mode                 domain.TransferMode `json:"transfer_mode" binding:"required,oneof=eur_to_pen pen_to_eur"`
	AmountSent           Amount              `json:"amount_sent"`
	ExchangeRate         Amount              `json:"exchange_rate"`
	CommissionPercentage Amount              `json:"commission_percentage"`
	Payments             []PaymentRequest    `json:"payment_details" binding:"dive"`
	Expenses             []ExpenseRequest    `json:"expense_details" binding:"dive"`
	Documents            []domain.Document   `json:"documents"`
	Status               domain.Status       `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
}

// TransferResponse is the API view of a money transfer.
type TransferResponse struct {
	TransferID           string              `json:"transfer_id"`
	ClientID             string              `json:"client_id"`
	Client               *domain.Profile     `json:"client,omitempty"`
	AgentID              string              `json:"agent_id"`
	Agent                *domain.Profile     `json:"agent,omitempty"`
	BeneficiaryName      string              `json:"beneficiary_name"`
	BeneficiaryDocument  string              `json:"beneficiary_document"`
	BeneficiaryBank      string              `json:"beneficiary_bank"`
	BeneficiaryAccount   string              `json:"beneficiary_account"`
	Mode                 domain.TransferMode `json:"transfer_mode"`
	AmountSent           string              `json:"amount_sent"`
	ExchangeRate         string              `json:"exchange_rate"`
	CommissionPercentage string              `json:"commission_percentage"`
	Commission           string              `json:"commission"`
	AmountReceived       string              `json:"amount_received"`
	TotalAmount          string              `json:"total_amount"`
	TotalInEUR           string              `json:"total_in_eur"`
	OnAccount            string              `json:"on_account"`
	Balance              string              `json:"balance"`
	NetProfit            string              `json:"net_profit"`
	Payments             []PaymentResponse   `json:"payment_details"`
	Expenses             []ExpenseResponse   `json:"expense_details"`
	Documents            []domain.Document   `json:"documents"`
	Status               domain.Status       `json:"status"`
	CreatedAt            time.Time           `json:"created_at"`
	CreatedBy            string              `json:"created_by"`
	LastUpdatedAt        time.Time           `json:"last_updated_at"`
}

// ListTransfersResponse is a page of transfers.
type ListTransfersResponse struct {
	Transfers []TransferResponse `json:"transfers"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToTransferResponse converts a domain transfer.
func ToTransferResponse(t *domain.MoneyTransfer) TransferResponse {
	documents := t.Documents
	if documents == nil {
		documents = []domain.Document{}
	}
	return TransferResponse{
		TransferID:           t.TransferID,
		ClientID:             t.ClientID,
		Client:               t.Client,
		AgentID:              t.AgentID,
		Agent:                t.Agent,
		BeneficiaryName:      t.BeneficiaryName,
		BeneficiaryDocument:  t.BeneficiaryDocument,
		BeneficiaryBank:      t.BeneficiaryBank,
		BeneficiaryAccount:   t.BeneficiaryAccount,
		Mode:                 t.Mode,
		AmountSent:           accounting.Format(t.AmountSent),
		ExchangeRate:         accounting.FormatRate(t.ExchangeRate),
		CommissionPercentage: accounting.FormatRate(t.CommissionPercentage),
		Commission:           accounting.Format(t.Commission),
		AmountReceived:       accounting.Format(t.AmountReceived),
		TotalAmount:          accounting.Format(t.TotalAmount),
		TotalInEUR:           accounting.Format(accounting.TransferPolicy{}.TotalInEUR(t.LedgerBasis())),
		OnAccount:            accounting.Format(t.OnAccount),
		Balance:              accounting.Format(t.Balance),
		NetProfit:            accounting.Format(t.NetProfit),
		Payments:             ToPaymentResponses(t.Payments),
		Expenses:             ToExpenseResponses(t.Expenses),
		Documents:            documents,
		Status:               t.Status,
		CreatedAt:            t.CreatedAt,
		CreatedBy:            t.CreatedBy,
		LastUpdatedAt:        t.LastUpdatedAt,
	}
}

// ToTransferResponses converts a slice of transfers.
func ToTransferResponses(transfers []domain.MoneyTransfer) []TransferResponse {
	responses := make([]TransferResponse, len(transfers))
	for i := range transfers {
		responses[i] = ToTransferResponse(&transfers[i])
	}
	return responses
}
