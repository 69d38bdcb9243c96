package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billdesk/internal/document"
	"billdesk/internal/domain"
	"billdesk/internal/service"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, kind document.Kind, doc *document.Document, opts service.ExportOptions) (*service.ExportResult, error) {
	args := m.Called(ctx, kind, doc, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}

func (m *MockExportService) ExportByID(ctx context.Context, kind document.Kind, id string, opts service.ExportOptions) (*service.ExportResult, error) {
	args := m.Called(ctx, kind, id, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}

func (m *MockExportService) List(ctx context.Context, offset, limit int) ([]domain.ExportRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ExportRecord), args.Int(1), args.Error(2)
}

func (m *MockExportService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExportRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportRecord), args.Error(1)
}

func (m *MockExportService) GetDownloadURL(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockExportService) Email(ctx context.Context, id uuid.UUID, toEmail, toName string) error {
	args := m.Called(ctx, id, toEmail, toName)
	return args.Error(0)
}
