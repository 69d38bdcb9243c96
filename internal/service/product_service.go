package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"billdesk/internal/catalog"
	"billdesk/internal/domain"
	"billdesk/internal/port"
)

// ImportResult summarises a catalog workbook import.
type ImportResult struct {
	Imported int `json:"imported"`
	Failed   int `json:"failed"`
}

// ProductService defines the catalog contract.
type ProductService interface {
	List(ctx context.Context, search string, offset, limit int) ([]domain.Product, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	Import(ctx context.Context, workbook io.Reader) (*ImportResult, error)
	Template() ([]byte, error)
}

type productService struct {
	repo port.ProductRepository
}

// NewProductService creates a new ProductService implementation.
func NewProductService(repo port.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) List(ctx context.Context, search string, offset, limit int) ([]domain.Product, int, error) {
	return s.repo.List(ctx, search, offset, limit)
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Import upserts every product in the workbook by item code. A failing row is
// logged and counted; the rest of the sheet is still imported.
func (s *productService) Import(ctx context.Context, workbook io.Reader) (*ImportResult, error) {
	products, err := catalog.ParseWorkbook(workbook)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for i := range products {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("productService.Import: %w", err)
		}
		if err := s.repo.Upsert(ctx, &products[i]); err != nil {
			log.Printf("productService.Import: upsert %s failed: %v", products[i].ItemCode, err)
			result.Failed++
			continue
		}
		result.Imported++
	}

	log.Printf("productService.Import: imported %d products, %d failed", result.Imported, result.Failed)
	return result, nil
}

func (s *productService) Template() ([]byte, error) {
	return catalog.Template()
}
