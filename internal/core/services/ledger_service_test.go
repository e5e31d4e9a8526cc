package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/core/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
)

func TestLedgerService_Convert(t *testing.T) {
	svc := services.NewLedgerService()
	ctx := context.Background()

	tests := []struct {
		name     string
		req      dto.ConvertRequest
		eur      string
		rate     string
		total    string
		currency string
	}{
		{"pen divides", dto.ConvertRequest{Quantity: amt("400"), Currency: "PEN", ExchangeRate: amt("4.125")}, "96.97", "4.125", "S/ 400.00", "PEN"},
		{"usd multiplies", dto.ConvertRequest{Quantity: amt("50"), Currency: "usd", ExchangeRate: amt("0.92")}, "46.00", "0.92", "$ 50.00", "USD"},
		{"eur forces rate one", dto.ConvertRequest{Quantity: amt("80"), Currency: "EUR", ExchangeRate: amt("3")}, "80.00", "1.00", "€ 80.00", "EUR"},
		{"pen zero rate", dto.ConvertRequest{Quantity: amt("400"), Currency: "PEN"}, "0.00", "0.00", "S/ 400.00", "PEN"},
		{"empty currency is eur", dto.ConvertRequest{Quantity: amt("10")}, "10.00", "1.00", "€ 10.00", "EUR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Convert(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.eur, resp.AmountEUR)
			assert.Equal(t, tt.rate, resp.ExchangeRate)
			assert.Equal(t, tt.total, resp.Total)
			assert.Equal(t, tt.currency, resp.Currency)
		})
	}
}

func TestLedgerService_PreviewFlightWithDraft(t *testing.T) {
	svc := services.NewLedgerService()

	resp, err := svc.Preview(context.Background(), dto.PreviewRequest{
		Kind:      domain.KindFlight,
		Cost:      amt("100"),
		SoldPrice: amt("150"),
		Payments:  []dto.PaymentRequest{{Currency: "EUR", OriginalAmount: amt("80")}},
		Draft:     &dto.PaymentRequest{Currency: "PEN", OriginalAmount: amt("200"), ExchangeRate: amt("4")},
	})

	require.NoError(t, err)
	assert.Equal(t, "150.00", resp.TotalInEUR)
	assert.Equal(t, "130.00", resp.OnAccount)
	assert.Equal(t, "20.00", resp.Balance)
	assert.Equal(t, "50.00", resp.Fee)
	assert.Empty(t, resp.NetProfit)
}

func TestLedgerService_PreviewTransfer(t *testing.T) {
	svc := services.NewLedgerService()

	resp, err := svc.Preview(context.Background(), dto.PreviewRequest{
		Kind:                 domain.KindTransfer,
		Mode:                 domain.TransferPENToEUR,
		AmountSent:           amt("1000"),
		ExchangeRate:         amt("4"),
		CommissionPercentage: amt("5"),
		Payments:             []dto.PaymentRequest{{Currency: "EUR", OriginalAmount: amt("100")}},
		Expenses: []dto.ExpenseRequest{{
			PaymentRequest: dto.PaymentRequest{Currency: "EUR", OriginalAmount: amt("2.5")},
			Category:       "courier",
		}},
	})

	require.NoError(t, err)
	assert.Equal(t, "50.00", resp.Commission)
	assert.Equal(t, "1050.00", resp.TotalAmount)
	assert.Equal(t, "250.00", resp.AmountReceived)
	assert.Equal(t, "262.50", resp.TotalInEUR)
	assert.Equal(t, "162.50", resp.Balance)
	assert.Equal(t, "10.00", resp.NetProfit)
}

func TestLedgerService_PreviewOverpaidGoesNegative(t *testing.T) {
	svc := services.NewLedgerService()

	resp, err := svc.Preview(context.Background(), dto.PreviewRequest{
		Kind:        domain.KindOther,
		TotalAmount: amt("60"),
		Payments:    []dto.PaymentRequest{{Currency: "EUR", OriginalAmount: amt("75")}},
	})

	require.NoError(t, err)
	assert.Equal(t, "60.00", resp.TotalInEUR)
	assert.Equal(t, "-15.00", resp.Balance)
}

func TestLedgerService_PreviewTranslationCommission(t *testing.T) {
	svc := services.NewLedgerService()

	for _, kind := range []domain.ServiceKind{domain.KindTranslation, domain.KindOther} {
		resp, err := svc.Preview(context.Background(), dto.PreviewRequest{
			Kind:        kind,
			TotalAmount: amt("120"),
			NetAmount:   amt("85.50"),
			Payments:    []dto.PaymentRequest{{Currency: "EUR", OriginalAmount: amt("20")}},
			Draft:       &dto.PaymentRequest{Currency: "PEN", OriginalAmount: amt("40"), ExchangeRate: amt("4")},
		})

		require.NoError(t, err, kind)
		assert.Equal(t, "34.50", resp.Commission, kind)
		assert.Equal(t, "30.00", resp.OnAccount, kind)
		assert.Equal(t, "90.00", resp.Balance, kind)
		assert.Empty(t, resp.Fee, kind)
	}
}

func TestLedgerService_PreviewTransferMatchesStoredPrecision(t *testing.T) {
	svc := services.NewLedgerService()

	resp, err := svc.Preview(context.Background(), dto.PreviewRequest{
		Kind:                 domain.KindTransfer,
		Mode:                 domain.TransferPENToEUR,
		AmountSent:           amt("400"),
		ExchangeRate:         amt("3.98765"),
		CommissionPercentage: amt("5.125"),
	})

	require.NoError(t, err)
	assert.Equal(t, "20.52", resp.Commission)
	assert.Equal(t, "105.45", resp.TotalInEUR)
}
