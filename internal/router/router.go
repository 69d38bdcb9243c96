package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "billdesk/docs"
	"billdesk/internal/handler"
	"billdesk/internal/middleware"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health  *handler.HealthHandler
	Preview *handler.PreviewHandler
	Export  *handler.ExportHandler
	Product *handler.ProductHandler
	Payment *handler.PaymentHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(allowedOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger("/healthz", "/readyz"))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	previews := v1.Group("/previews")
	previews.POST("/:kind", h.Preview.Preview)
	previews.POST("/:kind/pdf", h.Preview.PDF)

	documents := v1.Group("/documents")
	documents.GET("/:kind/:id/preview", h.Preview.PreviewByID)
	documents.GET("/:kind/:id/pdf", h.Preview.PDFByID)

	exports := v1.Group("/exports")
	exports.GET("", h.Export.List)
	exports.GET("/:id", h.Export.GetByID)
	exports.GET("/:id/download", h.Export.Download)
	exports.POST("/:id/email", h.Export.Email)

	products := v1.Group("/products")
	products.GET("", h.Product.List)
	products.GET("/template", h.Product.Template)
	products.POST("/import", h.Product.Import)
	products.GET("/:id", h.Product.GetByID)

	v1.POST("/payments/link", h.Payment.Link)

	return r
}
