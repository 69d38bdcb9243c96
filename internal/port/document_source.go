package port

import (
	"context"

	"billdesk/internal/document"
)

// DocumentSource fetches saved documents from the billing backend.
type DocumentSource interface {
	Fetch(ctx context.Context, kind document.Kind, id string) (*document.Document, error)
}
