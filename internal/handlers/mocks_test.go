package handlers_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
)

// --- Mock FlightService ---
type MockFlightService struct {
	mock.Mock
}

func (m *MockFlightService) ListFlights(ctx context.Context, params dto.ListParams) (*dto.ListFlightsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListFlightsResponse), args.Error(1)
}

func (m *MockFlightService) GetFlight(ctx context.Context, flightID string) (*domain.Flight, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightService) CreateFlight(ctx context.Context, req dto.FlightRequest, uploads []dto.Upload, userID string) (*domain.Flight, error) {
	args := m.Called(ctx, req, uploads, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightService) UpdateFlight(ctx context.Context, flightID string, req dto.FlightRequest, uploads []dto.Upload, userID string) (*domain.Flight, error) {
	args := m.Called(ctx, flightID, req, uploads, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightService) UpdateFlightStatus(ctx context.Context, flightID string, status domain.Status, userID string) (*domain.Flight, error) {
	args := m.Called(ctx, flightID, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightService) DeleteFlight(ctx context.Context, flightID string) error {
	return m.Called(ctx, flightID).Error(0)
}

func (m *MockFlightService) UpdateFlightPayment(ctx context.Context, flightID string, index int, req dto.PaymentRequest, proof *dto.Upload, userID string) (*domain.Flight, error) {
	args := m.Called(ctx, flightID, index, req, proof, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightService) DeleteFlightPayment(ctx context.Context, flightID string, index int, userID string) (*domain.Flight, error) {
	args := m.Called(ctx, flightID, index, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

var _ portssvc.FlightSvcFacade = (*MockFlightService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Convert(ctx context.Context, req dto.ConvertRequest) (*dto.ConvertResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConvertResponse), args.Error(1)
}

func (m *MockLedgerService) Preview(ctx context.Context, req dto.PreviewRequest) (*dto.PreviewResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PreviewResponse), args.Error(1)
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) StoreUploads(ctx context.Context, kind domain.ServiceKind, ownerID string, uploads []dto.Upload) (*dto.StoredUploads, error) {
	args := m.Called(ctx, kind, ownerID, uploads)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StoredUploads), args.Error(1)
}

func (m *MockDocumentService) StoreProof(ctx context.Context, kind domain.ServiceKind, ownerID string, upload dto.Upload) (string, error) {
	args := m.Called(ctx, kind, ownerID, upload)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) RemoveProof(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

func (m *MockDocumentService) GetDocumentURL(ctx context.Context, storage domain.StorageTag, path string) (*dto.DocumentURLResponse, error) {
	args := m.Called(ctx, storage, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DocumentURLResponse), args.Error(1)
}

func (m *MockDocumentService) OpenDocument(ctx context.Context, storage domain.StorageTag, path, token string) (io.ReadCloser, error) {
	args := m.Called(ctx, storage, path, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

var _ portssvc.DocumentSvc = (*MockDocumentService)(nil)

// --- Mock PortalService ---
type MockPortalService struct {
	mock.Mock
}

func (m *MockPortalService) GetPortalOverview(ctx context.Context, clientID string) (*domain.PortalOverview, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortalOverview), args.Error(1)
}

var _ portssvc.PortalSvc = (*MockPortalService)(nil)

// --- Mock TransferService ---
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) ListTransfers(ctx context.Context, params dto.ListParams) (*dto.ListTransfersResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransfersResponse), args.Error(1)
}

func (m *MockTransferService) GetTransfer(ctx context.Context, transferID string) (*domain.MoneyTransfer, error) {
	args := m.Called(ctx, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneyTransfer), args.Error(1)
}

func (m *MockTransferService) CreateTransfer(ctx context.Context, req dto.TransferRequest, uploads []dto.Upload, userID string) (*domain.MoneyTransfer, error) {
	args := m.Called(ctx, req, uploads, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneyTransfer), args.Error(1)
}

func (m *MockTransferService) UpdateTransfer(ctx context.Context, transferID string, req dto.TransferRequest, uploads []dto.Upload, userID string) (*domain.MoneyTransfer, error) {
	args := m.Called(ctx, transferID, req, uploads, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneyTransfer), args.Error(1)
}

func (m *MockTransferService) UpdateTransferStatus(ctx context.Context, transferID string, status domain.Status, userID string) (*domain.MoneyTransfer, error) {
	args := m.Called(ctx, transferID, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneyTransfer), args.Error(1)
}

func (m *MockTransferService) DeleteTransfer(ctx context.Context, transferID string) error {
	return m.Called(ctx, transferID).Error(0)
}

var _ portssvc.TransferSvcFacade = (*MockTransferService)(nil)

// --- Mock TranslationService ---
type MockTranslationService struct {
	mock.Mock
}

func (m *MockTranslationService) ListTranslations(ctx context.Context, params dto.ListTranslationsParams) (*dto.ListTranslationsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTranslationsResponse), args.Error(1)
}

func (m *MockTranslationService) GetTranslation(ctx context.Context, translationID string) (*domain.Translation, error) {
	args := m.Called(ctx, translationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Translation), args.Error(1)
}

func (m *MockTranslationService) CreateTranslation(ctx context.Context, req dto.TranslationRequest, uploads []dto.Upload, userID string) (*domain.Translation, error) {
	args := m.Called(ctx, req, uploads, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Translation), args.Error(1)
}

func (m *MockTranslationService) UpdateTranslation(ctx context.Context, translationID string, req dto.TranslationRequest, uploads []dto.Upload, userID string) (*domain.Translation, error) {
	args := m.Called(ctx, translationID, req, uploads, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Translation), args.Error(1)
}

func (m *MockTranslationService) UpdateTranslationStatus(ctx context.Context, translationID string, status domain.Status, userID string) (*domain.Translation, error) {
	args := m.Called(ctx, translationID, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Translation), args.Error(1)
}

func (m *MockTranslationService) DeleteTranslation(ctx context.Context, translationID string) error {
	return m.Called(ctx, translationID).Error(0)
}

var _ portssvc.TranslationSvcFacade = (*MockTranslationService)(nil)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListClientsForDropdown(ctx context.Context) ([]domain.ClientOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientOption), args.Error(1)
}

func (m *MockCatalogService) ListPaymentMethods(ctx context.Context, country domain.Country) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

func (m *MockCatalogService) ListItineraries(ctx context.Context) ([]domain.Itinerary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Itinerary), args.Error(1)
}

func (m *MockCatalogService) ListActivePermissions(ctx context.Context) ([]domain.Permission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Permission), args.Error(1)
}

func (m *MockCatalogService) ListActivePermissionDetails(ctx context.Context) ([]domain.PermissionDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PermissionDetail), args.Error(1)
}

var _ portssvc.CatalogSvc = (*MockCatalogService)(nil)
