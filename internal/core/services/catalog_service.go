package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
)

type catalogService struct {
	BaseService
	catalogRepo portsrepo.CatalogReader
}

// NewCatalogService creates a new CatalogService. catalogRepo may be the
// cached decorator or the database repository.
func NewCatalogService(catalogRepo portsrepo.CatalogReader) portssvc.CatalogSvc {
	return &catalogService{BaseService: newBaseService(), catalogRepo: catalogRepo}
}

var _ portssvc.CatalogSvc = (*catalogService)(nil)

// nonNil keeps empty lists rendered as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func (s *catalogService) ListClientsForDropdown(ctx context.Context) ([]domain.ClientOption, error) {
	clients, err := s.catalogRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return nonNil(clients), nil
}

func (s *catalogService) ListPaymentMethods(ctx context.Context, country domain.Country) ([]domain.PaymentMethod, error) {
	if country != domain.CountryIT && country != domain.CountryPE {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown country %q", country))
	}
	methods, err := s.catalogRepo.ListPaymentMethods(ctx, country)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment methods", "country", string(country))
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return nonNil(methods), nil
}

func (s *catalogService) ListItineraries(ctx context.Context) ([]domain.Itinerary, error) {
	itineraries, err := s.catalogRepo.ListItineraries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list itineraries")
		return nil, fmt.Errorf("failed to list itineraries: %w", err)
	}
	return nonNil(itineraries), nil
}

func (s *catalogService) ListActivePermissions(ctx context.Context) ([]domain.Permission, error) {
	permissions, err := s.catalogRepo.ListActivePermissions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list permissions")
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	return nonNil(permissions), nil
}

func (s *catalogService) ListActivePermissionDetails(ctx context.Context) ([]domain.PermissionDetail, error) {
	details, err := s.catalogRepo.ListActivePermissionDetails(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list permission details")
		return nil, fmt.Errorf("failed to list permission details: %w", err)
	}
	return nonNil(details), nil
}
