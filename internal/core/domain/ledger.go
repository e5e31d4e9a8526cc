package domain

import "github.com/shopspring/decimal"

// TransferMode is the direction of a money transfer.
type TransferMode string

const (
	TransferEURToPEN TransferMode = "eur_to_pen"
	TransferPENToEUR TransferMode = "pen_to_eur"
)

// LedgerBasis is the part of a transaction a ledger policy needs to express
// its total in EUR.
type LedgerBasis struct {
	Total        decimal.Decimal
	ExchangeRate decimal.Decimal
	Mode         TransferMode
}
