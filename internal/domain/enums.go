package domain

// ContentTypePDF is the MIME type of every rendered export.
const ContentTypePDF = "application/pdf"

// ValidationSeverity determines how a failed consistency check is reported.
type ValidationSeverity string

const (
	ValidationSeverityError   ValidationSeverity = "error"
	ValidationSeverityWarning ValidationSeverity = "warning"
)

// ExportStatus represents the lifecycle of a stored export.
type ExportStatus string

const (
	ExportStatusPending ExportStatus = "pending"
	ExportStatusStored  ExportStatus = "stored"
	ExportStatusEmailed ExportStatus = "emailed"
	ExportStatusFailed  ExportStatus = "failed"
)
