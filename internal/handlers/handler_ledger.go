package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/SscSPs/agency_backoffice/internal/middleware"
)

// ledgerHandler exposes the converter and aggregator to the forms.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

// RegisterLedgerRoutes registers the ledger preview routes.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := &ledgerHandler{ledgerService: ledgerService}

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/convert", h.convert)
		ledger.POST("/preview", h.preview)
	}
}

// convert godoc
// @Summary Convert one amount to EUR
// @Description EUR is kept as is, PEN is divided by the rate, other currencies are multiplied. A zero PEN rate yields 0.
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Amount to convert"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /ledger/convert [post]
func (h *ledgerHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.Convert(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "convert amount")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// preview godoc
// @Summary Recompute the ledger of a form being edited
// @Description Totals include the optional draft payment as a live preview.
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body dto.PreviewRequest true "Form state"
// @Success 200 {object} dto.PreviewResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /ledger/preview [post]
func (h *ledgerHandler) preview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Preview", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.Preview(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "preview ledger")
		return
	}
	c.JSON(http.StatusOK, resp)
}
