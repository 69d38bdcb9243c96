package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"billdesk/internal/domain"
	"billdesk/internal/port"
)

type exportRepo struct {
	db *sqlx.DB
}

// NewExportRepo creates a new PostgreSQL-backed ExportRepository.
func NewExportRepo(db *sqlx.DB) port.ExportRepository {
	return &exportRepo{db: db}
}

func (r *exportRepo) Create(ctx context.Context, rec *domain.ExportRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if rec.Status == "" {
		rec.Status = domain.ExportStatusPending
	}

	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO exports (id, document_kind, document_number, file_name, s3_bucket, s3_key,
			size_bytes, rounded_total, status, emailed_to, created_at, updated_at)
		VALUES (:id, :document_kind, :document_number, :file_name, :s3_bucket, :s3_key,
			:size_bytes, :rounded_total, :status, :emailed_to, :created_at, :updated_at)`, rec)
	if err != nil {
		return fmt.Errorf("exportRepo.Create: %w", err)
	}
	return nil
}

func (r *exportRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExportRecord, error) {
	var rec domain.ExportRecord
	err := r.db.GetContext(ctx, &rec, "SELECT * FROM exports WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("exportRepo.GetByID: %w", err)
	}
	return &rec, nil
}

func (r *exportRepo) List(ctx context.Context, offset, limit int) ([]domain.ExportRecord, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM exports"); err != nil {
		return nil, 0, fmt.Errorf("exportRepo.List count: %w", err)
	}

	var recs []domain.ExportRecord
	err := r.db.SelectContext(ctx, &recs,
		"SELECT * FROM exports ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("exportRepo.List: %w", err)
	}
	return recs, total, nil
}

func (r *exportRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ExportStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE exports SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("exportRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *exportRepo) SetEmailed(ctx context.Context, id uuid.UUID, email string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE exports SET status = $1, emailed_to = $2, updated_at = $3 WHERE id = $4",
		domain.ExportStatusEmailed, email, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("exportRepo.SetEmailed: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
