package handler

import (
	"billdesk/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// EmailExportRequest represents the email export request body.
type EmailExportRequest struct {
	Email string `json:"email" binding:"required" example:"accounts@ashatraders.in"`
	Name  string `json:"name" example:"Asha Traders"`
}

// --- Response Types ---

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// ExportWithDownloadURL represents a stored export with its download URL.
type ExportWithDownloadURL struct {
	Export      domain.ExportRecord `json:"export"`
	DownloadURL string              `json:"download_url" example:"https://s3.amazonaws.com/billdesk-exports/...?X-Amz-Signature=..."`
}

// Response wraps a successful response.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
