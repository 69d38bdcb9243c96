package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"billdesk/internal/domain"
	"billdesk/internal/port"
)

type productRepo struct {
	db *sqlx.DB
}

// NewProductRepo creates a new PostgreSQL-backed ProductRepository.
func NewProductRepo(db *sqlx.DB) port.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var p domain.Product
	err := r.db.GetContext(ctx, &p, "SELECT * FROM products WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("productRepo.GetByID: %w", err)
	}
	return &p, nil
}

// List matches search case-insensitively against name, item code, HSN and barcode.
func (r *productRepo) List(ctx context.Context, search string, offset, limit int) ([]domain.Product, int, error) {
	where := ""
	args := []interface{}{}
	if s := strings.TrimSpace(search); s != "" {
		where = ` WHERE name ILIKE $1 OR item_code ILIKE $1 OR hsn_code ILIKE $1 OR barcode ILIKE $1`
		args = append(args, "%"+escapeLike(s)+"%")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM products"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("productRepo.List count: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf("SELECT * FROM products%s ORDER BY name ASC LIMIT $%d OFFSET $%d", where, n+1, n+2)
	var products []domain.Product
	if err := r.db.SelectContext(ctx, &products, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("productRepo.List: %w", err)
	}
	return products, total, nil
}

func (r *productRepo) Upsert(ctx context.Context, p *domain.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	// RETURNING reports the surviving row so callers see the existing id on update.
	query := `INSERT INTO products (id, name, item_code, hsn_code, unit, sale_price, tax_percent, barcode, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (item_code) DO UPDATE SET
			name = EXCLUDED.name,
			hsn_code = EXCLUDED.hsn_code,
			unit = EXCLUDED.unit,
			sale_price = EXCLUDED.sale_price,
			tax_percent = EXCLUDED.tax_percent,
			barcode = EXCLUDED.barcode,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err := r.db.QueryRowxContext(ctx, query,
		p.ID, p.Name, p.ItemCode, p.HSNCode, p.Unit, p.SalePrice, p.TaxPercent, p.Barcode, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("productRepo.Upsert: %w", err)
	}
	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
