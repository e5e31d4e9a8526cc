package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/SscSPs/agency_backoffice/internal/middleware"
)

// translationHandler handles HTTP requests related to translations and other services.
type translationHandler struct {
	translationService portssvc.TranslationSvcFacade
	maxUploadBytes     int64
}

// RegisterTranslationRoutes registers routes related to translations and other services.
func RegisterTranslationRoutes(rg *gin.RouterGroup, translationService portssvc.TranslationSvcFacade, maxUploadBytes int64) {
	h := &translationHandler{translationService: translationService, maxUploadBytes: maxUploadBytes}

	translations := rg.Group("/translations")
	{
		translations.GET("", h.listTranslations)
		translations.POST("", h.createTranslation)
		translations.GET("/:id", h.getTranslation)
		translations.PUT("/:id", h.updateTranslation)
		translations.DELETE("/:id", h.deleteTranslation)
		translations.PATCH("/:id/status", h.updateTranslationStatus)
	}
}

// listTranslations godoc
// @Summary List translations and other services
// @Tags translations
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Param status query string false "Status filter"
// @Param client_id query string false "Client filter"
// @Param service_type query string false "translation or other"
// @Success 200 {object} dto.ListTranslationsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /translations [get]
func (h *translationHandler) listTranslations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTranslationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTranslations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.translationService.ListTranslations(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "list translations")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTranslation godoc
// @Summary Get a translation or other service
// @Tags translations
// @Produce json
// @Param id path string true "Translation ID"
// @Success 200 {object} dto.TranslationResponse
// @Failure 404 {object} map[string]string "Translation not found"
// @Security BearerAuth
// @Router /translations/{id} [get]
func (h *translationHandler) getTranslation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("translation_id", c.Param("id")))

	translation, err := h.translationService.GetTranslation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "retrieve translation")
		return
	}
	c.JSON(http.StatusOK, dto.ToTranslationResponse(translation))
}

// createTranslation godoc
// @Summary Create a translation or other service
// @Description Commission (total minus net amount) and ledger totals are recomputed server side.
// @Tags translations
// @Accept json,mpfd
// @Produce json
// @Param translation body dto.TranslationRequest true "Translation"
// @Success 201 {object} dto.TranslationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /translations [post]
func (h *translationHandler) createTranslation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.TranslationRequest
	uploads, err := bindSubmission(c, &req, h.maxUploadBytes)
	if err != nil {
		logger.Warn("Failed to bind CreateTranslation submission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	translation, err := h.translationService.CreateTranslation(c.Request.Context(), req, uploads, userID)
	if err != nil {
		respondError(c, logger, err, "create translation")
		return
	}

	logger.Info("Translation created", slog.String("translation_id", translation.TranslationID))
	c.JSON(http.StatusCreated, dto.ToTranslationResponse(translation))
}

// updateTranslation godoc
// @Summary Update a translation or other service
// @Tags translations
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Translation ID"
// @Param translation body dto.TranslationRequest true "Translation"
// @Success 200 {object} dto.TranslationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Translation not found"
// @Security BearerAuth
// @Router /translations/{id} [put]
func (h *translationHandler) updateTranslation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("translation_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.TranslationRequest
	uploads, err := bindSubmission(c, &req, h.maxUploadBytes)
	if err != nil {
		logger.Warn("Failed to bind UpdateTranslation submission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	translation, err := h.translationService.UpdateTranslation(c.Request.Context(), c.Param("id"), req, uploads, userID)
	if err != nil {
		respondError(c, logger, err, "update translation")
		return
	}
	c.JSON(http.StatusOK, dto.ToTranslationResponse(translation))
}

// updateTranslationStatus godoc
// @Summary Change the status of a translation or other service
// @Tags translations
// @Accept json
// @Produce json
// @Param id path string true "Translation ID"
// @Param status body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} dto.MutationResponse
// @Security BearerAuth
// @Router /translations/{id}/status [patch]
func (h *translationHandler) updateTranslationStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("translation_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Error: err.Error()})
		return
	}

	if _, err := h.translationService.UpdateTranslationStatus(c.Request.Context(), c.Param("id"), req.Status, userID); err != nil {
		respondError(c, logger, err, "update translation status")
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true})
}

// deleteTranslation godoc
// @Summary Delete a translation or other service
// @Tags translations
// @Produce json
// @Param id path string true "Translation ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} map[string]string "Translation not found"
// @Security BearerAuth
// @Router /translations/{id} [delete]
func (h *translationHandler) deleteTranslation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("translation_id", c.Param("id")))

	if err := h.translationService.DeleteTranslation(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "delete translation")
		return
	}
	logger.Info("Translation deleted")
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true})
}
