package services_test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
)

// --- Mock FlightRepository ---
type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) FindFlightByID(ctx context.Context, flightID string) (*domain.Flight, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ListFlights(ctx context.Context, filter domain.ListFilter, limit int, nextToken *string) ([]domain.Flight, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Flight), next, args.Error(2)
}

func (m *MockFlightRepository) ListFlightsByClient(ctx context.Context, clientID string) ([]domain.Flight, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) SaveFlight(ctx context.Context, flight domain.Flight) error {
	return m.Called(ctx, flight).Error(0)
}

func (m *MockFlightRepository) UpdateFlight(ctx context.Context, flight domain.Flight) error {
	return m.Called(ctx, flight).Error(0)
}

func (m *MockFlightRepository) DeleteFlight(ctx context.Context, flightID string) error {
	return m.Called(ctx, flightID).Error(0)
}

var _ portsrepo.FlightRepositoryFacade = (*MockFlightRepository)(nil)

// --- Mock TransferRepository ---
type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) FindTransferByID(ctx context.Context, transferID string) (*domain.MoneyTransfer, error) {
	args := m.Called(ctx, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoneyTransfer), args.Error(1)
}

func (m *MockTransferRepository) ListTransfers(ctx context.Context, filter domain.ListFilter, limit int, nextToken *string) ([]domain.MoneyTransfer, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.MoneyTransfer), next, args.Error(2)
}

func (m *MockTransferRepository) ListTransfersByClient(ctx context.Context, clientID string) ([]domain.MoneyTransfer, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MoneyTransfer), args.Error(1)
}

func (m *MockTransferRepository) SaveTransfer(ctx context.Context, transfer domain.MoneyTransfer) error {
	return m.Called(ctx, transfer).Error(0)
}

func (m *MockTransferRepository) UpdateTransfer(ctx context.Context, transfer domain.MoneyTransfer) error {
	return m.Called(ctx, transfer).Error(0)
}

func (m *MockTransferRepository) DeleteTransfer(ctx context.Context, transferID string) error {
	return m.Called(ctx, transferID).Error(0)
}

var _ portsrepo.TransferRepositoryFacade = (*MockTransferRepository)(nil)

// --- Mock TranslationRepository ---
type MockTranslationRepository struct {
	mock.Mock
}

func (m *MockTranslationRepository) FindTranslationByID(ctx context.Context, translationID string) (*domain.Translation, error) {
	args := m.Called(ctx, translationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Translation), args.Error(1)
}

func (m *MockTranslationRepository) ListTranslations(ctx context.Context, filter domain.ListFilter, limit int, nextToken *string) ([]domain.Translation, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Translation), next, args.Error(2)
}

func (m *MockTranslationRepository) ListTranslationsByClient(ctx context.Context, clientID string) ([]domain.Translation, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Translation), args.Error(1)
}

func (m *MockTranslationRepository) SaveTranslation(ctx context.Context, translation domain.Translation) error {
	return m.Called(ctx, translation).Error(0)
}

func (m *MockTranslationRepository) UpdateTranslation(ctx context.Context, translation domain.Translation) error {
	return m.Called(ctx, translation).Error(0)
}

func (m *MockTranslationRepository) DeleteTranslation(ctx context.Context, translationID string) error {
	return m.Called(ctx, translationID).Error(0)
}

var _ portsrepo.TranslationRepositoryFacade = (*MockTranslationRepository)(nil)

// --- Mock CatalogRepository ---
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListClients(ctx context.Context) ([]domain.ClientOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientOption), args.Error(1)
}

func (m *MockCatalogRepository) ListPaymentMethods(ctx context.Context, country domain.Country) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

func (m *MockCatalogRepository) ListItineraries(ctx context.Context) ([]domain.Itinerary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Itinerary), args.Error(1)
}

func (m *MockCatalogRepository) ListActivePermissions(ctx context.Context) ([]domain.Permission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Permission), args.Error(1)
}

func (m *MockCatalogRepository) ListActivePermissionDetails(ctx context.Context) ([]domain.PermissionDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PermissionDetail), args.Error(1)
}

var _ portsrepo.CatalogReader = (*MockCatalogRepository)(nil)

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

// --- Mock DocumentStorage ---
type MockDocumentStorage struct {
	mock.Mock
}

func (m *MockDocumentStorage) Save(ctx context.Context, storage domain.StorageTag, path string, r io.Reader) (int64, error) {
	args := m.Called(ctx, storage, path, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentStorage) Open(ctx context.Context, storage domain.StorageTag, path string) (io.ReadCloser, error) {
	args := m.Called(ctx, storage, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockDocumentStorage) Delete(ctx context.Context, storage domain.StorageTag, path string) error {
	return m.Called(ctx, storage, path).Error(0)
}

var _ portsrepo.DocumentStorage = (*MockDocumentStorage)(nil)

// --- Mock DocumentURLSigner ---
type MockURLSigner struct {
	mock.Mock
}

func (m *MockURLSigner) Sign(storage domain.StorageTag, path string, now time.Time) (string, time.Time, error) {
	args := m.Called(storage, path, now)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockURLSigner) Verify(storage domain.StorageTag, path, token string) error {
	return m.Called(storage, path, token).Error(0)
}

var _ portsrepo.DocumentURLSigner = (*MockURLSigner)(nil)

// emptyUploads is what the document service returns when nothing was attached.
func emptyUploads() *dto.StoredUploads {
	return &dto.StoredUploads{Documents: []domain.Document{}, Proofs: map[int]string{}}
}
