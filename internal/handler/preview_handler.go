package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"billdesk/internal/document"
	"billdesk/internal/domain"
	"billdesk/internal/service"
)

// PreviewHandler handles document preview and PDF endpoints.
type PreviewHandler struct {
	previews service.PreviewService
	exports  service.ExportService
}

// NewPreviewHandler creates a new PreviewHandler.
func NewPreviewHandler(previews service.PreviewService, exports service.ExportService) *PreviewHandler {
	return &PreviewHandler{previews: previews, exports: exports}
}

// Preview handles POST /api/v1/previews/:kind
// @Summary Preview a document
// @Description Compute line totals, the GST summary, round-off and amount in words for a posted document
// @Tags previews
// @Accept json
// @Produce json
// @Param kind path string true "Document kind" Enums(invoice, proforma, estimate, delivery_challan, payment_in)
// @Param body body document.Document true "Document"
// @Success 200 {object} Response{data=document.Preview} "Document preview"
// @Failure 400 {object} ErrorResponseBody "Unknown kind or invalid body"
// @Failure 422 {object} ErrorResponseBody "Invalid payment allocation"
// @Router /previews/{kind} [post]
func (h *PreviewHandler) Preview(c *gin.Context) {
	kind, doc, ok := bindDocument(c)
	if !ok {
		return
	}

	p, err := h.previews.Preview(c.Request.Context(), kind, doc)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, p)
}

// PDF handles POST /api/v1/previews/:kind/pdf
// @Summary Render a document as PDF
// @Description Render a posted document. With store=true the PDF is kept and the export record is returned instead of the file; email additionally shares the download link.
// @Tags previews
// @Accept json
// @Produce application/pdf
// @Produce json
// @Param kind path string true "Document kind" Enums(invoice, proforma, estimate, delivery_challan, payment_in)
// @Param body body document.Document true "Document"
// @Param store query bool false "Store the PDF and return the export record" default(false)
// @Param email query string false "Recipient of the download link (requires store=true)"
// @Param name query string false "Recipient name"
// @Success 200 {file} binary "PDF file"
// @Success 201 {object} Response{data=ExportWithDownloadURL} "Stored export"
// @Failure 400 {object} ErrorResponseBody "Unknown kind or invalid body"
// @Failure 500 {object} ErrorResponseBody "Rendering or upload failed"
// @Failure 502 {object} ErrorResponseBody "Email delivery failed"
// @Router /previews/{kind}/pdf [post]
func (h *PreviewHandler) PDF(c *gin.Context) {
	kind, doc, ok := bindDocument(c)
	if !ok {
		return
	}

	res, err := h.exports.Export(c.Request.Context(), kind, doc, exportOptions(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	respondExport(c, res)
}

// PreviewByID handles GET /api/v1/documents/:kind/:id/preview
// @Summary Preview a saved document
// @Description Fetch a document from the billing api and build its preview
// @Tags documents
// @Produce json
// @Param kind path string true "Document kind" Enums(invoice, proforma, estimate, delivery_challan, payment_in)
// @Param id path string true "Document ID"
// @Success 200 {object} Response{data=document.Preview} "Document preview"
// @Failure 400 {object} ErrorResponseBody "Unknown kind"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Failure 502 {object} ErrorResponseBody "Billing api unavailable"
// @Router /documents/{kind}/{id}/preview [get]
func (h *PreviewHandler) PreviewByID(c *gin.Context) {
	kind, err := document.ParseKind(c.Param("kind"))
	if err != nil {
		HandleError(c, err)
		return
	}

	p, err := h.previews.PreviewByID(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, p)
}

// PDFByID handles GET /api/v1/documents/:kind/:id/pdf
// @Summary Render a saved document as PDF
// @Tags documents
// @Produce application/pdf
// @Produce json
// @Param kind path string true "Document kind" Enums(invoice, proforma, estimate, delivery_challan, payment_in)
// @Param id path string true "Document ID"
// @Param store query bool false "Store the PDF and return the export record" default(false)
// @Param email query string false "Recipient of the download link (requires store=true)"
// @Param name query string false "Recipient name"
// @Success 200 {file} binary "PDF file"
// @Success 201 {object} Response{data=ExportWithDownloadURL} "Stored export"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Failure 502 {object} ErrorResponseBody "Billing api unavailable"
// @Router /documents/{kind}/{id}/pdf [get]
func (h *PreviewHandler) PDFByID(c *gin.Context) {
	kind, err := document.ParseKind(c.Param("kind"))
	if err != nil {
		HandleError(c, err)
		return
	}

	res, err := h.exports.ExportByID(c.Request.Context(), kind, c.Param("id"), exportOptions(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	respondExport(c, res)
}

// bindDocument parses the kind path parameter and the JSON body.
// Returns false if either is invalid (error response already written).
func bindDocument(c *gin.Context) (document.Kind, *document.Document, bool) {
	kind, err := document.ParseKind(c.Param("kind"))
	if err != nil {
		HandleError(c, err)
		return "", nil, false
	}

	var doc document.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		HandleError(c, fmt.Errorf("%v: %w", err, domain.ErrInvalidDocument))
		return "", nil, false
	}
	return kind, &doc, true
}

func exportOptions(c *gin.Context) service.ExportOptions {
	store, _ := strconv.ParseBool(c.DefaultQuery("store", "false"))
	return service.ExportOptions{
		Store:     store,
		EmailTo:   c.Query("email"),
		EmailName: c.Query("name"),
	}
}

func respondExport(c *gin.Context, res *service.ExportResult) {
	if res.Record != nil {
		RespondCreated(c, ExportWithDownloadURL{Export: *res.Record, DownloadURL: res.DownloadURL})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.FileName))
	c.Data(http.StatusOK, domain.ContentTypePDF, res.PDF)
}
