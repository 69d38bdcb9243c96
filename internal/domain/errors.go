package domain

import "errors"

var (
	ErrNotFound                 = errors.New("resource not found")
	ErrDocumentNotFound         = errors.New("document not found")
	ErrUnknownDocumentKind      = errors.New("unknown document kind")
	ErrInvalidDocument          = errors.New("document payload is invalid")
	ErrUpstreamUnavailable      = errors.New("upstream billing api unavailable")
	ErrAllocationExceedsBalance = errors.New("allocation exceeds invoice balance")
	ErrAllocationExceedsPayment = errors.New("allocations exceed payment amount")
	ErrInvalidAllocation        = errors.New("invalid payment allocation")
	ErrRenderFailed             = errors.New("pdf rendering failed")
	ErrUploadFailed             = errors.New("file upload to storage failed")
	ErrEmailRequiresStore       = errors.New("emailing an export requires storing it")
	ErrEmailFailed              = errors.New("sending export email failed")
	ErrRecipientRequired        = errors.New("recipient email is required")
	ErrInvalidWorkbook          = errors.New("catalog workbook is invalid")
)
