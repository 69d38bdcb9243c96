package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billdesk/internal/document"
)

// MockPreviewService is a mock implementation of service.PreviewService.
type MockPreviewService struct {
	mock.Mock
}

func (m *MockPreviewService) Preview(ctx context.Context, kind document.Kind, doc *document.Document) (*document.Preview, error) {
	args := m.Called(ctx, kind, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Preview), args.Error(1)
}

func (m *MockPreviewService) PreviewByID(ctx context.Context, kind document.Kind, id string) (*document.Preview, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Preview), args.Error(1)
}
