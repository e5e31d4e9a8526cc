package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/core/services"
	"github.com/SscSPs/agency_backoffice/internal/utils/accounting"
)

func TestPortalService_Overview(t *testing.T) {
	ctx := context.Background()
	flights := new(MockFlightRepository)
	transfers := new(MockTransferRepository)
	translations := new(MockTranslationRepository)
	svc := services.NewPortalService(flights, transfers, translations)

	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }
	eur := func(q string) domain.PaymentEntry {
		return accounting.NewPaymentEntry(domain.PaymentInput{Currency: domain.EUR, Quantity: dec(q)}, day(1))
	}

	flight := domain.Flight{FlightID: "f-1", Airline: "LATAM", PNR: "QWE123", SoldPrice: dec("150"), Payments: []domain.PaymentEntry{eur("100")}, Status: domain.StatusPending}
	flight.CreatedAt = day(2)
	// Stored figures are stale and must not be trusted.
	flight.Balance = dec("999")

	transfer := domain.MoneyTransfer{TransferID: "t-1", BeneficiaryName: "Rosa", Mode: domain.TransferPENToEUR, TotalAmount: dec("400"), ExchangeRate: dec("4"), Status: domain.StatusCancelled}
	transfer.CreatedAt = day(5)

	translation := domain.Translation{TranslationID: "tr-1", ServiceType: domain.KindOther, Description: "Apostille", TotalAmount: dec("60"), Payments: []domain.PaymentEntry{eur("20")}, Status: domain.StatusInProgress}
	translation.CreatedAt = day(3)

	flights.On("ListFlightsByClient", ctx, "client-1").Return([]domain.Flight{flight}, nil).Once()
	transfers.On("ListTransfersByClient", ctx, "client-1").Return([]domain.MoneyTransfer{transfer}, nil).Once()
	translations.On("ListTranslationsByClient", ctx, "client-1").Return([]domain.Translation{translation}, nil).Once()

	overview, err := svc.GetPortalOverview(ctx, "client-1")

	require.NoError(t, err)
	require.Len(t, overview.Items, 3)
	assert.Equal(t, []string{"t-1", "tr-1", "f-1"}, []string{overview.Items[0].ID, overview.Items[1].ID, overview.Items[2].ID})
	assert.Equal(t, "100.00", accounting.Format(overview.Items[0].TotalInEUR))
	assert.Equal(t, domain.KindOther, overview.Items[1].Kind)
	assert.Equal(t, "LATAM QWE123", overview.Items[2].Description)
	assert.Equal(t, "50.00", accounting.Format(overview.Items[2].Balance))
	// 50 on the flight plus 40 on the service; the cancelled transfer is ignored.
	assert.Equal(t, "90.00", accounting.Format(overview.Outstanding))
}

func TestPortalService_RepositoryError(t *testing.T) {
	ctx := context.Background()
	flights := new(MockFlightRepository)
	svc := services.NewPortalService(flights, new(MockTransferRepository), new(MockTranslationRepository))

	flights.On("ListFlightsByClient", ctx, "client-1").Return(nil, assert.AnError).Once()

	overview, err := svc.GetPortalOverview(ctx, "client-1")

	assert.Nil(t, overview)
	assert.ErrorIs(t, err, assert.AnError)
}
