package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billdesk/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	products service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /api/v1/products
// @Summary List products
// @Description Search the catalog by name, item code, HSN or barcode
// @Tags products
// @Produce json
// @Param search query string false "Search text"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Product,meta=PagMeta} "List of products"
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	products, total, err := h.products.List(c.Request.Context(), c.Query("search"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, products, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/products/:id
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} Response{data=domain.Product} "Product"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Product not found"
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid product ID")
		return
	}

	p, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, p)
}

// Import handles POST /api/v1/products/import
// @Summary Import the catalog workbook
// @Description Upsert products by item code from an .xlsx with Name, Item Code, HSN, Unit, Sale Price, Tax % and Barcode columns
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Catalog workbook (.xlsx)"
// @Success 200 {object} Response{data=service.ImportResult} "Import summary"
// @Failure 400 {object} ErrorResponseBody "Missing or invalid workbook"
// @Router /products/import [post]
func (h *ProductHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	res, err := h.products.Import(c.Request.Context(), file)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, res)
}

// Template handles GET /api/v1/products/template
// @Summary Download the catalog template
// @Tags products
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Empty catalog workbook"
// @Router /products/template [get]
func (h *ProductHandler) Template(c *gin.Context) {
	data, err := h.products.Template()
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="products-template.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
