package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExportRecord tracks a rendered document PDF kept in object storage.
type ExportRecord struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	DocumentKind   string          `db:"document_kind" json:"document_kind"`
	DocumentNumber string          `db:"document_number" json:"document_number"`
	FileName       string          `db:"file_name" json:"file_name"`
	S3Bucket       string          `db:"s3_bucket" json:"-"`
	S3Key          string          `db:"s3_key" json:"-"`
	SizeBytes      int64           `db:"size_bytes" json:"size_bytes"`
	RoundedTotal   decimal.Decimal `db:"rounded_total" json:"rounded_total"`
	Status         ExportStatus    `db:"status" json:"status"`
	EmailedTo      *string         `db:"emailed_to" json:"emailed_to,omitempty"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// Product is a catalog entry offered when filling document rows.
type Product struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	Name       string          `db:"name" json:"name"`
	ItemCode   string          `db:"item_code" json:"item_code"`
	HSNCode    string          `db:"hsn_code" json:"hsn_code"`
	Unit       string          `db:"unit" json:"unit"`
	SalePrice  decimal.Decimal `db:"sale_price" json:"sale_price"`
	TaxPercent decimal.Decimal `db:"tax_percent" json:"tax_percent"`
	Barcode    string          `db:"barcode" json:"barcode,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`
}
