package service

import (
	"context"
	"fmt"
	"log"

	"billdesk/internal/document"
	"billdesk/internal/port"
)

// PreviewService builds document previews from posted or saved documents.
type PreviewService interface {
	Preview(ctx context.Context, kind document.Kind, doc *document.Document) (*document.Preview, error)
	PreviewByID(ctx context.Context, kind document.Kind, id string) (*document.Preview, error)
}

type previewService struct {
	source port.DocumentSource
}

// NewPreviewService creates a new PreviewService implementation.
func NewPreviewService(source port.DocumentSource) PreviewService {
	return &previewService{source: source}
}

func (s *previewService) Preview(_ context.Context, kind document.Kind, doc *document.Document) (*document.Preview, error) {
	p, err := document.Build(kind, doc)
	if err != nil {
		return nil, err
	}
	if len(p.Warnings) > 0 {
		log.Printf("previewService.Preview: %s %s has %d consistency warnings", kind, p.Number, len(p.Warnings))
	}
	return p, nil
}

func (s *previewService) PreviewByID(ctx context.Context, kind document.Kind, id string) (*document.Preview, error) {
	doc, err := s.source.Fetch(ctx, kind, id)
	if err != nil {
		log.Printf("previewService.PreviewByID: fetching %s %s failed: %v", kind, id, err)
		return nil, fmt.Errorf("fetching %s %s: %w", kind, id, err)
	}
	return s.Preview(ctx, kind, doc)
}
