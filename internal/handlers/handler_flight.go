package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/SscSPs/agency_backoffice/internal/middleware"
)

// flightHandler handles HTTP requests related to flights.
type flightHandler struct {
	flightService  portssvc.FlightSvcFacade
	maxUploadBytes int64
}

// RegisterFlightRoutes registers routes related to flights.
func RegisterFlightRoutes(rg *gin.RouterGroup, flightService portssvc.FlightSvcFacade, maxUploadBytes int64) {
	h := &flightHandler{flightService: flightService, maxUploadBytes: maxUploadBytes}

	flights := rg.Group("/flights")
	{
		flights.GET("", h.listFlights)
		flights.POST("", h.createFlight)
		flights.GET("/:id", h.getFlight)
		flights.PUT("/:id", h.updateFlight)
		flights.DELETE("/:id", h.deleteFlight)
		flights.PATCH("/:id/status", h.updateFlightStatus)
		flights.PUT("/:id/payments/:index", h.updateFlightPayment)
		flights.DELETE("/:id/payments/:index", h.deleteFlightPayment)
	}
}

// listFlights godoc
// @Summary List flights
// @Description Lists flights newest first with token pagination
// @Tags flights
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Param status query string false "Status filter"
// @Param client_id query string false "Client filter"
// @Success 200 {object} dto.ListFlightsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list flights"
// @Security BearerAuth
// @Router /flights [get]
func (h *flightHandler) listFlights(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListFlights", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.flightService.ListFlights(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "list flights")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getFlight godoc
// @Summary Get a flight
// @Tags flights
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} dto.FlightResponse
// @Failure 404 {object} map[string]string "Flight not found"
// @Security BearerAuth
// @Router /flights/{id} [get]
func (h *flightHandler) getFlight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("flight_id", c.Param("id")))

	flight, err := h.flightService.GetFlight(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "retrieve flight")
		return
	}
	c.JSON(http.StatusOK, dto.ToFlightResponse(flight))
}

// createFlight godoc
// @Summary Create a flight
// @Description Accepts JSON, or multipart with a "data" JSON field plus document_file_{i} and payment_proof_{i} files. Ledger figures are recomputed server side.
// @Tags flights
// @Accept json,mpfd
// @Produce json
// @Param flight body dto.FlightRequest true "Flight"
// @Success 201 {object} dto.FlightResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create flight"
// @Security BearerAuth
// @Router /flights [post]
func (h *flightHandler) createFlight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.FlightRequest
	uploads, err := bindSubmission(c, &req, h.maxUploadBytes)
	if err != nil {
		logger.Warn("Failed to bind CreateFlight submission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	flight, err := h.flightService.CreateFlight(c.Request.Context(), req, uploads, userID)
	if err != nil {
		respondError(c, logger, err, "create flight")
		return
	}

	logger.Info("Flight created", slog.String("flight_id", flight.FlightID), slog.Int("uploads", len(uploads)))
	c.JSON(http.StatusCreated, dto.ToFlightResponse(flight))
}

// updateFlight godoc
// @Summary Update a flight
// @Tags flights
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Flight ID"
// @Param flight body dto.FlightRequest true "Flight"
// @Success 200 {object} dto.FlightResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Flight not found"
// @Security BearerAuth
// @Router /flights/{id} [put]
func (h *flightHandler) updateFlight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("flight_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.FlightRequest
	uploads, err := bindSubmission(c, &req, h.maxUploadBytes)
	if err != nil {
		logger.Warn("Failed to bind UpdateFlight submission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	flight, err := h.flightService.UpdateFlight(c.Request.Context(), c.Param("id"), req, uploads, userID)
	if err != nil {
		respondError(c, logger, err, "update flight")
		return
	}
	c.JSON(http.StatusOK, dto.ToFlightResponse(flight))
}

// updateFlightStatus godoc
// @Summary Change the status of a flight
// @Tags flights
// @Accept json
// @Produce json
// @Param id path string true "Flight ID"
// @Param status body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} dto.MutationResponse
// @Failure 404 {object} map[string]string "Flight not found"
// @Security BearerAuth
// @Router /flights/{id}/status [patch]
func (h *flightHandler) updateFlightStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("flight_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Error: err.Error()})
		return
	}

	if _, err := h.flightService.UpdateFlightStatus(c.Request.Context(), c.Param("id"), req.Status, userID); err != nil {
		respondError(c, logger, err, "update flight status")
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true})
}

// deleteFlight godoc
// @Summary Delete a flight
// @Tags flights
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} map[string]string "Flight not found"
// @Security BearerAuth
// @Router /flights/{id} [delete]
func (h *flightHandler) deleteFlight(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("flight_id", c.Param("id")))

	if err := h.flightService.DeleteFlight(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "delete flight")
		return
	}
	logger.Info("Flight deleted")
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true})
}

// updateFlightPayment godoc
// @Summary Replace one payment of a flight
// @Description Accepts JSON, or multipart with a "data" JSON field and an optional payment_proof_0 file.
// @Tags flights
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Flight ID"
// @Param index path int true "Payment index"
// @Param payment body dto.PaymentRequest true "Payment"
// @Success 200 {object} dto.FlightResponse
// @Failure 400 {object} map[string]string "Invalid input or index"
// @Failure 404 {object} map[string]string "Flight not found"
// @Security BearerAuth
// @Router /flights/{id}/payments/{index} [put]
func (h *flightHandler) updateFlightPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("flight_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	index, err := pathIndex(c, "index")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.PaymentRequest
	uploads, err := bindSubmission(c, &req, h.maxUploadBytes)
	if err != nil {
		logger.Warn("Failed to bind UpdateFlightPayment submission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var proof *dto.Upload
	for i := range uploads {
		if uploads[i].Field == dto.PaymentProofPrefix+"0" {
			proof = &uploads[i]
			break
		}
	}

	flight, err := h.flightService.UpdateFlightPayment(c.Request.Context(), c.Param("id"), index, req, proof, userID)
	if err != nil {
		respondError(c, logger, err, "update flight payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToFlightResponse(flight))
}

// deleteFlightPayment godoc
// @Summary Delete one payment of a flight
// @Tags flights
// @Produce json
// @Param id path string true "Flight ID"
// @Param index path int true "Payment index"
// @Success 200 {object} dto.FlightResponse
// @Failure 400 {object} map[string]string "Invalid index"
// @Failure 404 {object} map[string]string "Flight not found"
// @Security BearerAuth
// @Router /flights/{id}/payments/{index} [delete]
func (h *flightHandler) deleteFlightPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("flight_id", c.Param("id")))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	index, err := pathIndex(c, "index")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.flightService.DeleteFlightPayment(c.Request.Context(), c.Param("id"), index, userID)
	if err != nil {
		respondError(c, logger, err, "delete flight payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToFlightResponse(flight))
}
