package models

import "github.com/shopspring/decimal"

// MoneyTransfer is a row of the money_transfers table.
type MoneyTransfer struct {
	TransferID           string
	ClientID             string
	AgentID              *string
	BeneficiaryName      string
	BeneficiaryDocument  string
	BeneficiaryBank      string
	BeneficiaryAccount   string
	TransferMode         string
	AmountSent           decimal.Decimal
	ExchangeRate         decimal.Decimal
	CommissionPercentage decimal.Decimal
	Commission           decimal.Decimal
	AmountReceived       decimal.Decimal
	TotalAmount          decimal.Decimal
	OnAccount            decimal.Decimal
	Balance              decimal.Decimal
	NetProfit            decimal.Decimal
	PaymentDetails       []PaymentDetail
	ExpenseDetails       []ExpenseDetail
	Documents            []Document
	Status               string
	Client               ProfileRef
	Agent                ProfileRef
	AuditFields
}
