package noop

import (
	"context"
	"log"

	"billdesk/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs the download link instead of sending mail.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendDocumentEmail(_ context.Context, msg port.DocumentEmail) error {
	log.Printf("[NOOP EMAIL] %s %s for %s (%s): %s", msg.Title, msg.Number, msg.ToName, msg.ToEmail, msg.DownloadURL)
	return nil
}
