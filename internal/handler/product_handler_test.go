package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"billdesk/internal/domain"
	"billdesk/internal/handler"
	"billdesk/internal/service"
	"billdesk/mocks"
)

func TestProductHandler_List(t *testing.T) {
	products := new(mocks.MockProductService)
	h := handler.NewProductHandler(products)

	products.On("List", mock.Anything, "bolt", 40, 10).Return([]domain.Product{{Name: "Bolt"}}, 41, nil)

	c, w := newContext(http.MethodGet, "/api/v1/products?search=bolt&offset=40&limit=10", "", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, 41, resp.Meta.Total)
}

func TestProductHandler_GetByID_NotFound(t *testing.T) {
	products := new(mocks.MockProductService)
	h := handler.NewProductHandler(products)
	id := uuid.New()

	products.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	c, w := newContext(http.MethodGet, "/api/v1/products/"+id.String(), "", gin.Params{{Key: "id", Value: id.String()}})
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductHandler_Import(t *testing.T) {
	products := new(mocks.MockProductService)
	h := handler.NewProductHandler(products)

	products.On("Import", mock.Anything, mock.Anything).Return(&service.ImportResult{Imported: 3}, nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("file", "products.xlsx")
	_, _ = part.Write([]byte("PK"))
	_ = writer.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/products/import", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	h.Import(c)

	assert.Equal(t, http.StatusOK, w.Code)
	products.AssertExpectations(t)
}

func TestProductHandler_Import_NoFile(t *testing.T) {
	h := handler.NewProductHandler(new(mocks.MockProductService))

	c, w := newContext(http.MethodPost, "/api/v1/products/import", "", nil)
	h.Import(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_FILE", decodeResponse(t, w).Error.Code)
}

func TestProductHandler_Template(t *testing.T) {
	products := new(mocks.MockProductService)
	h := handler.NewProductHandler(products)

	products.On("Template").Return([]byte("PK\x03\x04"), nil)

	c, w := newContext(http.MethodGet, "/api/v1/products/template", "", nil)
	h.Template(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "products-template.xlsx")
}
