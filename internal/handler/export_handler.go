package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billdesk/internal/service"
)

// ExportHandler handles stored export endpoints.
type ExportHandler struct {
	exports service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exports service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// List handles GET /api/v1/exports
// @Summary List exports
// @Description List stored document exports, newest first
// @Tags exports
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.ExportRecord,meta=PagMeta} "List of exports"
// @Router /exports [get]
func (h *ExportHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	recs, total, err := h.exports.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, recs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/exports/:id
// @Summary Get an export
// @Tags exports
// @Produce json
// @Param id path string true "Export ID"
// @Success 200 {object} Response{data=domain.ExportRecord} "Export record"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Export not found"
// @Router /exports/{id} [get]
func (h *ExportHandler) GetByID(c *gin.Context) {
	id, ok := parseExportID(c)
	if !ok {
		return
	}

	rec, err := h.exports.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// Download handles GET /api/v1/exports/:id/download
// @Summary Get export download URL
// @Description Returns a presigned URL for the stored PDF
// @Tags exports
// @Produce json
// @Param id path string true "Export ID"
// @Success 200 {object} Response{data=ExportWithDownloadURL} "Export with download URL"
// @Failure 404 {object} ErrorResponseBody "Export not found"
// @Router /exports/{id}/download [get]
func (h *ExportHandler) Download(c *gin.Context) {
	id, ok := parseExportID(c)
	if !ok {
		return
	}

	rec, err := h.exports.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	url, err := h.exports.GetDownloadURL(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, ExportWithDownloadURL{Export: *rec, DownloadURL: url})
}

// Email handles POST /api/v1/exports/:id/email
// @Summary Email an export
// @Description Send the download link of a stored export
// @Tags exports
// @Accept json
// @Produce json
// @Param id path string true "Export ID"
// @Param body body EmailExportRequest true "Recipient"
// @Success 200 {object} Response{data=MessageResponse} "Email sent"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 404 {object} ErrorResponseBody "Export not found"
// @Failure 502 {object} ErrorResponseBody "Email delivery failed"
// @Router /exports/{id}/email [post]
func (h *ExportHandler) Email(c *gin.Context) {
	id, ok := parseExportID(c)
	if !ok {
		return
	}

	var req EmailExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.exports.Email(c.Request.Context(), id, req.Email, req.Name); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "export emailed"})
}

func parseExportID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid export ID")
		return uuid.Nil, false
	}
	return id, true
}
