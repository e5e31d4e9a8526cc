package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/middleware"
)

type catalogHandler struct {
	catalogService portssvc.CatalogSvc
}

// RegisterCatalogRoutes registers the dropdown data routes.
func RegisterCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvc) {
	h := &catalogHandler{catalogService: catalogService}

	catalog := rg.Group("/catalog")
	{
		catalog.GET("/clients", h.listClients)
		catalog.GET("/payment-methods", h.listPaymentMethods)
		catalog.GET("/itineraries", h.listItineraries)
		catalog.GET("/permissions", h.listPermissions)
		catalog.GET("/permissions/details", h.listPermissionDetails)
	}
}

// listClients godoc
// @Summary Clients for the client dropdown
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.ClientOption
// @Security BearerAuth
// @Router /catalog/clients [get]
func (h *catalogHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clients, err := h.catalogService.ListClientsForDropdown(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// listPaymentMethods godoc
// @Summary Active payment methods of a country
// @Tags catalog
// @Produce json
// @Param country query string true "IT or PE"
// @Success 200 {array} domain.PaymentMethod
// @Failure 400 {object} map[string]string "Unknown country"
// @Security BearerAuth
// @Router /catalog/payment-methods [get]
func (h *catalogHandler) listPaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	country := domain.Country(strings.ToUpper(c.Query("country")))
	methods, err := h.catalogService.ListPaymentMethods(c.Request.Context(), country)
	if err != nil {
		respondError(c, logger, err, "list payment methods")
		return
	}
	c.JSON(http.StatusOK, methods)
}

// listItineraries godoc
// @Summary Saved itineraries
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Itinerary
// @Security BearerAuth
// @Router /catalog/itineraries [get]
func (h *catalogHandler) listItineraries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itineraries, err := h.catalogService.ListItineraries(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list itineraries")
		return
	}
	c.JSON(http.StatusOK, itineraries)
}

// listPermissions godoc
// @Summary Active permit types
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Permission
// @Security BearerAuth
// @Router /catalog/permissions [get]
func (h *catalogHandler) listPermissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	permissions, err := h.catalogService.ListActivePermissions(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list permissions")
		return
	}
	c.JSON(http.StatusOK, permissions)
}

// listPermissionDetails godoc
// @Summary Active permit types with requirements and price
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.PermissionDetail
// @Security BearerAuth
// @Router /catalog/permissions/details [get]
func (h *catalogHandler) listPermissionDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	details, err := h.catalogService.ListActivePermissionDetails(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "list permission details")
		return
	}
	c.JSON(http.StatusOK, details)
}
