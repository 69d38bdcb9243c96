package port

import "context"

// DocumentEmail is a rendered document shared with a customer by link.
type DocumentEmail struct {
	ToEmail      string
	ToName       string
	BusinessName string
	Title        string
	Number       string
	Total        string
	DownloadURL  string
}

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendDocumentEmail(ctx context.Context, msg DocumentEmail) error
}
