package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/SscSPs/agency_backoffice/internal/middleware"
)

// transferHandler handles HTTP requests related to money transfers.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
	maxUploadBytes  int64
}

// RegisterTransferRoutes registers routes related to money transfers.
func RegisterTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade, maxUploadBytes int64) {
	h := &transferHandler{transferService: transferService, maxUploadBytes: maxUploadBytes}

	transfers := rg.Group("/transfers")
	{
		transfers.GET("", h.listTransfers)
		transfers.POST("", h.createTransfer)
		transfers.GET("/:id", h.getTransfer)
		transfers.PUT("/:id", h.updateTransfer)
		transfers.DELETE("/:id", h.deleteTransfer)
		transfers.PATCH("/:id/status", h.updateTransferStatus)
	}
}

// listTransfers godoc
// @Summary List money transfers
// @Tags transfers
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Param status query string false "Status filter"
// @Param client_id query string false "Client filter"
// @Success 200 {object} dto.ListTransfersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /transfers [get]
func (h *transferHandler) listTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransfers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.transferService.ListTransfers(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "list transfers")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTransfer godoc
// @Summary Get a money transfer
// @Tags transfers
// @Produce json
// @Param id path string true "Transfer ID"
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} map[string]string "Transfer not found"
// @Security BearerAuth
// @Router /transfers/{id} [get]
func (h *transferHandler) getTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transfer_id", c.Param("id")))

	transfer, err := h.transferService.GetTransfer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "retrieve transfer")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}

// createTransfer godoc
// @Summary Create a money transfer
// @Description Commission, amount received, totals and net profit are recomputed server side.
// @Tags transfers
// @Accept json,mpfd
// @Produce json
// @Param transfer body dto.TransferRequest true "Transfer"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.TransferRequest
	uploads, err := bindSubmission(c, &req, h.maxUploadBytes)
	if err != nil {
		logger.Warn("Failed to bind CreateTransfer submission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), req, uploads, userID)
	if err != nil {
		respondError(c, logger, err, "create transfer")
		return
	}

	logger.Info("Transfer created", slog.String("transfer_id", transfer.TransferID))
	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}

// updateTransfer godoc
// @Summary Update a money transfer
// @Tags transfers
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Transfer ID"
// @Param transfer body dto.TransferRequest true "Transfer"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Transfer not found"
// @Security BearerAuth
// @Router /transfers/{id} [put]
func (h *transferHandler) updateTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transfer_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.TransferRequest
	uploads, err := bindSubmission(c, &req, h.maxUploadBytes)
	if err != nil {
		logger.Warn("Failed to bind UpdateTransfer submission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	transfer, err := h.transferService.UpdateTransfer(c.Request.Context(), c.Param("id"), req, uploads, userID)
	if err != nil {
		respondError(c, logger, err, "update transfer")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}

// updateTransferStatus godoc
// @Summary Change the status of a money transfer
// @Tags transfers
// @Accept json
// @Produce json
// @Param id path string true "Transfer ID"
// @Param status body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} dto.MutationResponse
// @Security BearerAuth
// @Router /transfers/{id}/status [patch]
func (h *transferHandler) updateTransferStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transfer_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Error: err.Error()})
		return
	}

	if _, err := h.transferService.UpdateTransferStatus(c.Request.Context(), c.Param("id"), req.Status, userID); err != nil {
		respondError(c, logger, err, "update transfer status")
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true})
}

// deleteTransfer godoc
// @Summary Delete a money transfer
// @Tags transfers
// @Produce json
// @Param id path string true "Transfer ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} map[string]string "Transfer not found"
// @Security BearerAuth
// @Router /transfers/{id} [delete]
func (h *transferHandler) deleteTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transfer_id", c.Param("id")))

	if err := h.transferService.DeleteTransfer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "delete transfer")
		return
	}
	logger.Info("Transfer deleted")
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true})
}
