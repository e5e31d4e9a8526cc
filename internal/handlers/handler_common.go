package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/SscSPs/agency_backoffice/internal/middleware"
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return v.RegisterValidation("agency_currency", func(fl validator.FieldLevel) bool {
		return domain.ParseCurrency(fl.Field().String()).Supported()
	})
}

// respondError maps service errors onto status codes. action names the
// operation in the 500 message.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": messageOf(err)})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": messageOf(err)})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500:
		logger.Warn("Request rejected", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	default:
		logger.Error("Service error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// messageOf prefers the AppError message over the wrapped sentinel text.
func messageOf(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// requireUserID returns the authenticated user or writes a 401.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// bindSubmission decodes a create or update body. JSON bodies carry no files;
// multipart bodies carry the JSON request in the "data" field plus
// document_file_{i} and payment_proof_{i} parts.
func bindSubmission(c *gin.Context, req any, maxBytes int64) ([]dto.Upload, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBindJSON(req); err != nil {
			return nil, err
		}
		return nil, nil
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	if err := c.Request.ParseMultipartForm(maxBytes); err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	data := c.Request.FormValue("data")
	if data == "" {
		return nil, errors.New("multipart form requires a data field")
	}
	if err := json.Unmarshal([]byte(data), req); err != nil {
		return nil, fmt.Errorf("invalid data field: %w", err)
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	return collectUploads(c.Request.MultipartForm), nil
}

// collectUploads returns the recognised file parts. Unknown keys are skipped.
func collectUploads(form *multipart.Form) []dto.Upload {
	if form == nil {
		return nil
	}
	var uploads []dto.Upload
	for field, headers := range form.File {
		index, ok := uploadIndex(field)
		if !ok {
			continue
		}
		for _, header := range headers {
			uploads = append(uploads, uploadFromHeader(field, index, header))
		}
	}
	return uploads
}

func uploadIndex(field string) (int, bool) {
	for _, prefix := range []string{dto.DocumentFilePrefix, dto.PaymentProofPrefix} {
		if rest, found := strings.CutPrefix(field, prefix); found {
			index, err := strconv.Atoi(rest)
			return index, err == nil && index >= 0
		}
	}
	return 0, false
}

func uploadFromHeader(field string, index int, header *multipart.FileHeader) dto.Upload {
	return dto.Upload{
		Field:       field,
		Index:       index,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Open: func() (io.ReadCloser, error) {
			return header.Open()
		},
	}
}

// pathIndex parses a non-negative integer path parameter.
func pathIndex(c *gin.Context, name string) (int, error) {
	index, err := strconv.Atoi(c.Param(name))
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return index, nil
}
