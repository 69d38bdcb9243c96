// @title           Billdesk Document API
// @version         1.0
// @description     Previews, PDF exports and payment allocation for GST sales documents.
// @BasePath        /api/v1
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"billdesk/internal/config"
	"billdesk/internal/email/noop"
	"billdesk/internal/email/ses"
	"billdesk/internal/handler"
	"billdesk/internal/pdfexport"
	"billdesk/internal/port"
	"billdesk/internal/repository/postgres"
	"billdesk/internal/router"
	"billdesk/internal/service"
	s3storage "billdesk/internal/storage/s3"
	"billdesk/internal/upstream"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	exportRepo := postgres.NewExportRepo(db)
	productRepo := postgres.NewProductRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	emailSender, err := newEmailSender(&cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Initialize services
	previewSvc := service.NewPreviewService(upstream.NewClient(&cfg.Upstream))
	exportSvc := service.NewExportService(
		previewSvc, pdfexport.NewRenderer(cfg.PDF), exportRepo, s3Client, emailSender, &cfg.S3,
	)
	productSvc := service.NewProductService(productRepo)
	paymentSvc := service.NewPaymentService()

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, router.Handlers{
		Health:  handler.NewHealthHandler(db),
		Preview: handler.NewPreviewHandler(previewSvc, exportSvc),
		Export:  handler.NewExportHandler(exportSvc),
		Product: handler.NewProductHandler(productSvc),
		Payment: handler.NewPaymentHandler(paymentSvc),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s (environment=%s, email=%s)", cfg.Server.Port, cfg.Server.Environment, cfg.Email.Provider)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func newEmailSender(cfg *config.EmailConfig) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewSESSender(cfg.Region, cfg.FromAddress, cfg.FromName)
	case "noop", "":
		return noop.NewNoopSender(), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
