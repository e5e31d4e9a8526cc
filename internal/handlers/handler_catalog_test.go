package handlers_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/handlers"
	"github.com/SscSPs/agency_backoffice/internal/middleware"
)

func newCatalogRouter(svc *MockCatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(testJWTSecret, ""),
		middleware.RequireRoles(middleware.RoleAdmin, middleware.RoleAgent),
	)
	handlers.RegisterCatalogRoutes(v1, svc)
	return r
}

func TestCatalogHandler_PaymentMethodsUppercasesCountry(t *testing.T) {
	svc := new(MockCatalogService)
	r := newCatalogRouter(svc)

	svc.On("ListPaymentMethods", mock.Anything, domain.CountryPE).
		Return([]domain.PaymentMethod{{ID: "pm-1", Name: "Yape", Country: domain.CountryPE, IsActive: true}}, nil).Once()

	w := sendAs(r, http.MethodGet, "/api/v1/catalog/payment-methods?country=pe", "")

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `[{"id":"pm-1","name":"Yape","country":"PE","is_active":true}]`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestCatalogHandler_PaymentMethodsUnknownCountry(t *testing.T) {
	svc := new(MockCatalogService)
	r := newCatalogRouter(svc)

	svc.On("ListPaymentMethods", mock.Anything, domain.Country("")).
		Return(nil, apperrors.NewValidationError(`unknown country ""`)).Once()

	w := sendAs(r, http.MethodGet, "/api/v1/catalog/payment-methods", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown country")
}

func TestCatalogHandler_Lists(t *testing.T) {
	svc := new(MockCatalogService)
	r := newCatalogRouter(svc)

	svc.On("ListClientsForDropdown", mock.Anything).
		Return([]domain.ClientOption{{ID: "c-1", FullName: "Ana Torres"}}, nil).Once()
	svc.On("ListItineraries", mock.Anything).Return([]domain.Itinerary{}, nil).Once()
	svc.On("ListActivePermissions", mock.Anything).
		Return([]domain.Permission{{ID: "p-1", Name: "Permesso di soggiorno", IsActive: true}}, nil).Once()
	svc.On("ListActivePermissionDetails", mock.Anything).
		Return([]domain.PermissionDetail{{
			Permission:   domain.Permission{ID: "p-1", Name: "Permesso di soggiorno", IsActive: true},
			Requirements: []string{"passport"},
			Price:        decimal.RequireFromString("120.5"),
		}}, nil).Once()

	w := sendAs(r, http.MethodGet, "/api/v1/catalog/clients", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"c-1","full_name":"Ana Torres"}]`, w.Body.String())

	w = sendAs(r, http.MethodGet, "/api/v1/catalog/itineraries", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = sendAs(r, http.MethodGet, "/api/v1/catalog/permissions", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Permesso di soggiorno"`)

	w = sendAs(r, http.MethodGet, "/api/v1/catalog/permissions/details", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"requirements":["passport"]`)
	assert.Contains(t, w.Body.String(), `"price":"120.5"`)

	svc.AssertExpectations(t)
}

func TestCatalogHandler_FailureIsHidden(t *testing.T) {
	svc := new(MockCatalogService)
	r := newCatalogRouter(svc)

	svc.On("ListClientsForDropdown", mock.Anything).Return(nil, io.ErrUnexpectedEOF).Once()

	w := sendAs(r, http.MethodGet, "/api/v1/catalog/clients", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to list clients"}`, w.Body.String())
}

func TestRegisterValidators(t *testing.T) {
	assert.NoError(t, handlers.RegisterValidators())
	assert.NoError(t, handlers.RegisterValidators())
}
