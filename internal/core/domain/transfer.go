package domain

import "github.com/shopspring/decimal"

// MoneyTransfer is a remittance between Europe and Peru. TotalAmount is in the
// transfer's native currency (PEN for pen_to_eur, EUR otherwise).
type MoneyTransfer struct {
	TransferID           string          `json:"transfer_id"`
	ClientID             string          `json:"client_id"`
	Client               *Profile        `json:"client,omitempty"`
	AgentID              string          `json:"agent_id"`
	Agent                *Profile        `json:"agent,omitempty"`
	BeneficiaryName      string          `json:"beneficiary_name"`
	BeneficiaryDocument  string          `json:"beneficiary_document"`
	BeneficiaryBank      string          `json:"beneficiary_bank"`
	BeneficiaryAccount   string          `json:"beneficiary_account"`
	Mode                 TransferMode    `json:"transfer_mode"`
	AmountSent           decimal.Decimal `json:"amount_sent"`
	ExchangeRate         decimal.Decimal `json:"exchange_rate"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	Commission           decimal.Decimal `json:"commission"`
	AmountReceived       decimal.Decimal `json:"amount_received"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	OnAccount            decimal.Decimal `json:"on_account"`
	Balance              decimal.Decimal `json:"balance"`
	NetProfit            decimal.Decimal `json:"net_profit"`
	Payments             []PaymentEntry  `json:"payment_details"`
	Expenses             []ExpenseEntry  `json:"expense_details"`
	Documents            []Document      `json:"documents"`
	Status               Status          `json:"status"`
	AuditFields
}

// LedgerBasis returns the direction dependent basis of the transfer.
func (t MoneyTransfer) LedgerBasis() LedgerBasis {
	return LedgerBasis{Total: t.TotalAmount, ExchangeRate: t.ExchangeRate, Mode: t.Mode}
}
