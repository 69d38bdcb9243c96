package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billdesk/internal/domain"
)

// MockExportRepo is a mock implementation of port.ExportRepository.
type MockExportRepo struct {
	mock.Mock
}

func (m *MockExportRepo) Create(ctx context.Context, rec *domain.ExportRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockExportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExportRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportRecord), args.Error(1)
}

func (m *MockExportRepo) List(ctx context.Context, offset, limit int) ([]domain.ExportRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ExportRecord), args.Int(1), args.Error(2)
}

func (m *MockExportRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ExportStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockExportRepo) SetEmailed(ctx context.Context, id uuid.UUID, email string) error {
	args := m.Called(ctx, id, email)
	return args.Error(0)
}
