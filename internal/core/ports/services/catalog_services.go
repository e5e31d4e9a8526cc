package services

import (
	"context"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
)

// CatalogSvc provides the dropdown data of the transaction forms.
type CatalogSvc interface {
	ListClientsForDropdown(ctx context.Context) ([]domain.ClientOption, error)
	ListPaymentMethods(ctx context.Context, country domain.Country) ([]domain.PaymentMethod, error)
	ListItineraries(ctx context.Context) ([]domain.Itinerary, error)
	ListActivePermissions(ctx context.Context) ([]domain.Permission, error)
	ListActivePermissionDetails(ctx context.Context) ([]domain.PermissionDetail, error)
}
