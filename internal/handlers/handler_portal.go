package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/SscSPs/agency_backoffice/internal/middleware"
)

type portalHandler struct {
	portalService portssvc.PortalSvc
}

// RegisterPortalRoutes registers the client portal routes. The token subject
// is the client id; clients only ever see their own records.
func RegisterPortalRoutes(rg *gin.RouterGroup, portalService portssvc.PortalSvc) {
	h := &portalHandler{portalService: portalService}
	rg.GET("/overview", h.getOverview)
}

// getOverview godoc
// @Summary Transactions and balances of the authenticated client
// @Tags portal
// @Produce json
// @Success 200 {object} dto.PortalOverviewResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Security BearerAuth
// @Router /portal/overview [get]
func (h *portalHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	overview, err := h.portalService.GetPortalOverview(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, logger, err, "load portal overview")
		return
	}
	c.JSON(http.StatusOK, dto.ToPortalOverviewResponse(overview))
}
