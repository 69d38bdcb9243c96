package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"billdesk/internal/domain"
	"billdesk/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("fetching: %w", domain.ErrDocumentNotFound), http.StatusNotFound, "DOCUMENT_NOT_FOUND"},
		{domain.ErrUnknownDocumentKind, http.StatusBadRequest, "UNKNOWN_DOCUMENT_KIND"},
		{domain.ErrUpstreamUnavailable, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE"},
		{domain.ErrAllocationExceedsPayment, http.StatusUnprocessableEntity, "ALLOCATION_EXCEEDS_PAYMENT"},
		{domain.ErrRenderFailed, http.StatusInternalServerError, "RENDER_FAILED"},
		{domain.ErrEmailFailed, http.StatusBadGateway, "EMAIL_FAILED"},
		{domain.ErrInvalidWorkbook, http.StatusBadRequest, "INVALID_WORKBOOK"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		status, code, _ := handler.MapDomainError(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.code, code, tt.err.Error())
	}
}
