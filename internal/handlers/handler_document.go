package handlers

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/middleware"
)

type documentHandler struct {
	documentService portssvc.DocumentSvc
}

// RegisterDocumentRoutes registers the signed URL route of the back office.
func RegisterDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvc) {
	h := &documentHandler{documentService: documentService}
	rg.GET("/documents/url", h.getDocumentURL)
}

// RegisterFileRoutes registers the public download route. Access is granted
// by the signed token alone.
func RegisterFileRoutes(r gin.IRouter, documentService portssvc.DocumentSvc) {
	h := &documentHandler{documentService: documentService}
	r.GET("/files/:storage/*path", h.serveFile)
}

// getDocumentURL godoc
// @Summary Signed URL of a stored document or payment proof
// @Tags documents
// @Produce json
// @Param path query string true "Stored path"
// @Param storage query string false "r2 (documents, default) or images (payment proofs)"
// @Success 200 {object} dto.DocumentURLResponse
// @Failure 400 {object} map[string]string "Invalid path or storage"
// @Security BearerAuth
// @Router /documents/url [get]
func (h *documentHandler) getDocumentURL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	storage := domain.StorageTag(c.DefaultQuery("storage", string(domain.StorageR2)))
	resp, err := h.documentService.GetDocumentURL(c.Request.Context(), storage, c.Query("path"))
	if err != nil {
		respondError(c, logger, err, "sign document url")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *documentHandler) serveFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	storage := domain.StorageTag(c.Param("storage"))
	filePath := strings.TrimPrefix(c.Param("path"), "/")

	rc, err := h.documentService.OpenDocument(c.Request.Context(), storage, filePath, c.Query("token"))
	if err != nil {
		respondError(c, logger, err, "open document")
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(path.Ext(filePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "private, max-age=60")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		logger.Warn("Failed to stream document", slog.String("path", filePath), slog.String("error", err.Error()))
	}
}
