package port

import (
	"context"

	"github.com/google/uuid"

	"billdesk/internal/domain"
)

// ExportRepository defines the contract for export record persistence.
type ExportRepository interface {
	Create(ctx context.Context, rec *domain.ExportRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ExportRecord, error)
	List(ctx context.Context, offset, limit int) ([]domain.ExportRecord, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ExportStatus) error
	SetEmailed(ctx context.Context, id uuid.UUID, email string) error
}

// ProductRepository defines the contract for catalog persistence.
type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Product, int, error)
	// Upsert inserts the product or updates the row with the same item code.
	Upsert(ctx context.Context, p *domain.Product) error
}
