package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/core/services"
)

func TestCatalogService_PaymentMethodsRequireKnownCountry(t *testing.T) {
	repo := new(MockCatalogRepository)
	svc := services.NewCatalogService(repo)

	_, err := svc.ListPaymentMethods(context.Background(), domain.Country("FR"))

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "ListPaymentMethods")
}

func TestCatalogService_EmptyListsAreNotNil(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCatalogRepository)
	svc := services.NewCatalogService(repo)

	repo.On("ListClients", ctx).Return(nil, nil).Once()
	repo.On("ListPaymentMethods", ctx, domain.CountryIT).Return(nil, nil).Once()

	clients, err := svc.ListClientsForDropdown(ctx)
	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)

	methods, err := svc.ListPaymentMethods(ctx, domain.CountryIT)
	require.NoError(t, err)
	assert.NotNil(t, methods)
}

func TestCatalogService_WrapsRepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCatalogRepository)
	svc := services.NewCatalogService(repo)

	repo.On("ListActivePermissionDetails", ctx).Return(nil, assert.AnError).Once()

	_, err := svc.ListActivePermissionDetails(ctx)
	assert.ErrorIs(t, err, assert.AnError)
}
