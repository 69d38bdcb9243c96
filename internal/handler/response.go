package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"billdesk/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound, "DOCUMENT_NOT_FOUND", "document not found"
	case errors.Is(err, domain.ErrUnknownDocumentKind):
		return http.StatusBadRequest, "UNKNOWN_DOCUMENT_KIND", "unknown document kind; allowed: invoice, proforma, estimate, delivery_challan, payment_in"
	case errors.Is(err, domain.ErrInvalidDocument):
		return http.StatusBadRequest, "INVALID_DOCUMENT", "document payload is invalid"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "billing api is unavailable"
	case errors.Is(err, domain.ErrAllocationExceedsBalance):
		return http.StatusUnprocessableEntity, "ALLOCATION_EXCEEDS_BALANCE", "allocation exceeds the invoice balance"
	case errors.Is(err, domain.ErrAllocationExceedsPayment):
		return http.StatusUnprocessableEntity, "ALLOCATION_EXCEEDS_PAYMENT", "allocations exceed the payment amount"
	case errors.Is(err, domain.ErrInvalidAllocation):
		return http.StatusBadRequest, "INVALID_ALLOCATION", "invalid payment allocation"
	case errors.Is(err, domain.ErrRenderFailed):
		return http.StatusInternalServerError, "RENDER_FAILED", "pdf rendering failed"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	case errors.Is(err, domain.ErrEmailRequiresStore):
		return http.StatusBadRequest, "EMAIL_REQUIRES_STORE", "set store=true to email an export"
	case errors.Is(err, domain.ErrRecipientRequired):
		return http.StatusBadRequest, "RECIPIENT_REQUIRED", "recipient email is required"
	case errors.Is(err, domain.ErrEmailFailed):
		return http.StatusBadGateway, "EMAIL_FAILED", "export stored but the email could not be sent"
	case errors.Is(err, domain.ErrInvalidWorkbook):
		return http.StatusBadRequest, "INVALID_WORKBOOK", "catalog workbook is invalid; expected an .xlsx with Name and Item Code columns"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}

// parsePagination reads offset and limit query parameters. Limit defaults to
// 20 and is capped at 100.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
