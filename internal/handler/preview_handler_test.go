package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billdesk/internal/document"
	"billdesk/internal/domain"
	"billdesk/internal/handler"
	"billdesk/internal/service"
	"billdesk/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const invoiceBody = `{"number":"INV-1","date":"2024-04-05","items":[{"itemName":"A","quantity":2,"price":100,"discount":10,"taxPercent":18}]}`

func newContext(method, target, body string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(method, target, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestPreviewHandler_Preview(t *testing.T) {
	previews := new(mocks.MockPreviewService)
	h := handler.NewPreviewHandler(previews, new(mocks.MockExportService))

	previews.On("Preview", mock.Anything, document.KindInvoice, mock.MatchedBy(func(d *document.Document) bool {
		return d.Number == "INV-1" && len(d.Items) == 1
	})).Return(&document.Preview{Kind: document.KindInvoice, Title: "TAX INVOICE", Number: "INV-1"}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/previews/invoice", invoiceBody, gin.Params{{Key: "kind", Value: "invoice"}})
	h.Preview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	previews.AssertExpectations(t)
}

func TestPreviewHandler_Preview_UnknownKind(t *testing.T) {
	h := handler.NewPreviewHandler(new(mocks.MockPreviewService), new(mocks.MockExportService))

	c, w := newContext(http.MethodPost, "/api/v1/previews/bill", invoiceBody, gin.Params{{Key: "kind", Value: "bill"}})
	h.Preview(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "UNKNOWN_DOCUMENT_KIND", resp.Error.Code)
}

func TestPreviewHandler_Preview_BadJSON(t *testing.T) {
	h := handler.NewPreviewHandler(new(mocks.MockPreviewService), new(mocks.MockExportService))

	c, w := newContext(http.MethodPost, "/api/v1/previews/invoice", `{"items":`, gin.Params{{Key: "kind", Value: "invoice"}})
	h.Preview(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DOCUMENT", decodeResponse(t, w).Error.Code)
}

func TestPreviewHandler_PDF_Streams(t *testing.T) {
	exports := new(mocks.MockExportService)
	h := handler.NewPreviewHandler(new(mocks.MockPreviewService), exports)

	exports.On("Export", mock.Anything, document.KindEstimate, mock.Anything, service.ExportOptions{}).
		Return(&service.ExportResult{PDF: []byte("%PDF-1.3"), FileName: "estimate-E-1.pdf"}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/previews/estimate/pdf", invoiceBody, gin.Params{{Key: "kind", Value: "estimate"}})
	h.PDF(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.ContentTypePDF, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="estimate-E-1.pdf"`)
	assert.Equal(t, "%PDF-1.3", w.Body.String())
}

func TestPreviewHandler_PDF_Store(t *testing.T) {
	exports := new(mocks.MockExportService)
	h := handler.NewPreviewHandler(new(mocks.MockPreviewService), exports)

	rec := &domain.ExportRecord{ID: uuid.New(), DocumentKind: "invoice", Status: domain.ExportStatusEmailed}
	exports.On("Export", mock.Anything, document.KindInvoice, mock.Anything, service.ExportOptions{
		Store: true, EmailTo: "a@b.c", EmailName: "Asha",
	}).Return(&service.ExportResult{Record: rec, DownloadURL: "https://signed"}, nil)

	c, w := newContext(http.MethodPost, "/api/v1/previews/invoice/pdf?store=true&email=a@b.c&name=Asha", invoiceBody,
		gin.Params{{Key: "kind", Value: "invoice"}})
	h.PDF(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "https://signed", data["download_url"])
}

func TestPreviewHandler_PDF_EmailWithoutStore(t *testing.T) {
	exports := new(mocks.MockExportService)
	h := handler.NewPreviewHandler(new(mocks.MockPreviewService), exports)

	exports.On("Export", mock.Anything, document.KindInvoice, mock.Anything, mock.Anything).
		Return(nil, domain.ErrEmailRequiresStore)

	c, w := newContext(http.MethodPost, "/api/v1/previews/invoice/pdf?email=a@b.c", invoiceBody,
		gin.Params{{Key: "kind", Value: "invoice"}})
	h.PDF(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EMAIL_REQUIRES_STORE", decodeResponse(t, w).Error.Code)
}

func TestPreviewHandler_PreviewByID_NotFound(t *testing.T) {
	previews := new(mocks.MockPreviewService)
	h := handler.NewPreviewHandler(previews, new(mocks.MockExportService))

	previews.On("PreviewByID", mock.Anything, document.KindDeliveryChallan, "55").Return(nil, domain.ErrDocumentNotFound)

	c, w := newContext(http.MethodGet, "/api/v1/documents/delivery-challan/55/preview", "",
		gin.Params{{Key: "kind", Value: "delivery-challan"}, {Key: "id", Value: "55"}})
	h.PreviewByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "DOCUMENT_NOT_FOUND", decodeResponse(t, w).Error.Code)
}

func TestPreviewHandler_PDFByID_UpstreamDown(t *testing.T) {
	exports := new(mocks.MockExportService)
	h := handler.NewPreviewHandler(new(mocks.MockPreviewService), exports)

	exports.On("ExportByID", mock.Anything, document.KindInvoice, "1", service.ExportOptions{}).
		Return(nil, domain.ErrUpstreamUnavailable)

	c, w := newContext(http.MethodGet, "/api/v1/documents/invoice/1/pdf", "",
		gin.Params{{Key: "kind", Value: "invoice"}, {Key: "id", Value: "1"}})
	h.PDFByID(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
