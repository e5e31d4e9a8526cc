package services

import (
	"context"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/SscSPs/agency_backoffice/internal/utils/accounting"
)

// ledgerService runs the accounting rules for forms that have not been saved yet.
type ledgerService struct {
	BaseService
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService() portssvc.LedgerSvc {
	return &ledgerService{BaseService: newBaseService()}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) Convert(ctx context.Context, req dto.ConvertRequest) (*dto.ConvertResponse, error) {
	entry := dto.PaymentRequest{
		Currency:       req.Currency,
		OriginalAmount: req.Quantity,
		ExchangeRate:   req.ExchangeRate,
	}.ToEntry(s.Now())

	return &dto.ConvertResponse{
		Currency:     string(entry.Currency),
		Quantity:     accounting.Format(entry.OriginalAmount),
		ExchangeRate: accounting.FormatRate(entry.ExchangeRate),
		AmountEUR:    accounting.Format(entry.Amount),
		Total:        entry.Total,
	}, nil
}

// Preview recomputes the figures of a form. A draft payment is counted through
// a payment session so the preview matches what committing it would save.
func (s *ledgerService) Preview(ctx context.Context, req dto.PreviewRequest) (*dto.PreviewResponse, error) {
	now := s.Now()
	session := accounting.NewPaymentSession(buildPayments(req.Payments, nil, now))
	if req.Draft != nil {
		if err := session.OpenDraft(); err != nil {
			return nil, err
		}
		if err := session.UpdateDraft(req.Draft.ToInput()); err != nil {
			return nil, err
		}
	}

	resp := &dto.PreviewResponse{Kind: req.Kind}
	var basis domain.LedgerBasis

	switch req.Kind {
	case domain.KindFlight:
		basis = domain.LedgerBasis{Total: req.SoldPrice.Dec()}
		resp.Fee = accounting.Format(accounting.Margin(req.Cost.Dec(), req.SoldPrice.Dec()))
	case domain.KindTransfer:
		rate := req.ExchangeRate.Dec().Round(accounting.RatePlaces)
		pct := req.CommissionPercentage.Dec().Round(accounting.PercentPlaces)
		quote := accounting.QuoteTransfer(accounting.Round(req.AmountSent.Dec()), rate, pct, req.Mode)
		basis = domain.LedgerBasis{Total: quote.TotalAmount, ExchangeRate: rate, Mode: req.Mode}
		resp.Commission = accounting.Format(quote.Commission)
		resp.AmountReceived = accounting.Format(quote.AmountReceived)
		resp.TotalAmount = accounting.Format(quote.TotalAmount)
		resp.NetProfit = accounting.Format(accounting.TransferNetProfit(quote.Commission, rate, req.Mode, buildExpenses(req.Expenses, now)))
	default:
		basis = domain.LedgerBasis{Total: req.TotalAmount.Dec()}
		resp.Commission = accounting.Format(accounting.Margin(req.NetAmount.Dec(), req.TotalAmount.Dec()))
	}

	summary := session.Summary(accounting.PolicyFor(req.Kind), basis)
	resp.TotalInEUR = accounting.Format(summary.TotalInEUR)
	resp.OnAccount = accounting.Format(summary.OnAccount)
	resp.Balance = accounting.Format(summary.Balance)

	s.LogDebug(ctx, "Ledger preview computed", "kind", string(req.Kind), "balance", resp.Balance)
	return resp, nil
}
