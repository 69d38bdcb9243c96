package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billdesk/internal/document"
)

// MockDocumentSource is a mock implementation of port.DocumentSource.
type MockDocumentSource struct {
	mock.Mock
}

func (m *MockDocumentSource) Fetch(ctx context.Context, kind document.Kind, id string) (*document.Document, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}
