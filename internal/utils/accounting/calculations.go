package accounting

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerPolicy expresses a transaction's total in EUR, the currency on-account
// is always kept in.
type LedgerPolicy interface {
	TotalInEUR(basis domain.LedgerBasis) decimal.Decimal
}

// FlatPolicy is used by flights, translations and other services, which are
// priced in EUR already.
type FlatPolicy struct{}

func (FlatPolicy) TotalInEUR(basis domain.LedgerBasis) decimal.Decimal {
	return Round(basis.Total)
}

// TransferPolicy converts PEN denominated transfers to EUR. A zero rate falls
// back to the raw total so a half-typed rate never shows a zero total.
type TransferPolicy struct{}

func (TransferPolicy) TotalInEUR(basis domain.LedgerBasis) decimal.Decimal {
	if basis.Mode != domain.TransferPENToEUR || basis.ExchangeRate.IsZero() {
		return Round(basis.Total)
	}
	return Round(basis.Total.Div(basis.ExchangeRate))
}

// PolicyFor returns the ledger policy of a transaction kind.
func PolicyFor(kind domain.ServiceKind) LedgerPolicy {
	if kind == domain.KindTransfer {
		return TransferPolicy{}
	}
	return FlatPolicy{}
}

// Summary holds the recomputed ledger fields of a transaction.
type Summary struct {
	TotalInEUR decimal.Decimal
	OnAccount  decimal.Decimal
	Balance    decimal.Decimal
}

// SumPayments adds up the EUR amounts of the given payments.
func SumPayments(payments []domain.PaymentEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
	}
	return Round(sum)
}

// SumExpenses adds up the EUR amounts of the given expenses.
func SumExpenses(expenses []domain.ExpenseEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}
	return Round(sum)
}

// Summarize recomputes on-account and balance. A non-nil draft is counted as
// if it had already been added, so previews match what will be saved.
func Summarize(policy LedgerPolicy, basis domain.LedgerBasis, committed []domain.PaymentEntry, draft *domain.PaymentEntry) Summary {
	onAccount := SumPayments(committed)
	if draft != nil {
		onAccount = Round(onAccount.Add(draft.Amount))
	}
	total := policy.TotalInEUR(basis)
	return Summary{
		TotalInEUR: total,
		OnAccount:  onAccount,
		Balance:    Round(total.Sub(onAccount)),
	}
}

// Margin is the agency fee between sold price and cost.
func Margin(cost, sold decimal.Decimal) decimal.Decimal {
	return Round(sold.Sub(cost))
}

// TransferQuote holds the figures derived from what the client sends.
type TransferQuote struct {
	Commission     decimal.Decimal
	AmountReceived decimal.Decimal
	TotalAmount    decimal.Decimal
}

// QuoteTransfer derives commission, received amount and total of a transfer.
// The commission comes from the percentage, not from the total.
func QuoteTransfer(amountSent, rate, commissionPercentage decimal.Decimal, mode domain.TransferMode) TransferQuote {
	commission := Round(amountSent.Mul(commissionPercentage).Div(hundred))
	received := decimal.Zero
	if !rate.IsZero() {
		if mode == domain.TransferPENToEUR {
			received = Round(amountSent.Div(rate))
		} else {
			received = Round(amountSent.Mul(rate))
		}
	}
	return TransferQuote{
		Commission:     commission,
		AmountReceived: received,
		TotalAmount:    Round(amountSent.Add(commission)),
	}
}

// TransferNetProfit is the commission expressed in EUR minus the expenses.
func TransferNetProfit(commission, rate decimal.Decimal, mode domain.TransferMode, expenses []domain.ExpenseEntry) decimal.Decimal {
	commissionEUR := TransferPolicy{}.TotalInEUR(domain.LedgerBasis{Total: commission, ExchangeRate: rate, Mode: mode})
	return Round(commissionEUR.Sub(SumExpenses(expenses)))
}
