package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billdesk/internal/catalog"
	"billdesk/internal/domain"
	"billdesk/internal/service"
	"billdesk/mocks"
)

func TestProductService_List(t *testing.T) {
	repo := new(mocks.MockProductRepo)
	svc := service.NewProductService(repo)

	repo.On("List", mock.Anything, "bolt", 0, 20).Return([]domain.Product{{Name: "Bolt"}}, 1, nil)

	products, total, err := svc.List(context.Background(), "bolt", 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, products, 1)
}

func TestProductService_Import(t *testing.T) {
	repo := new(mocks.MockProductRepo)
	svc := service.NewProductService(repo)

	data, err := catalog.Export([]domain.Product{
		{Name: "Bolt", ItemCode: "B1", SalePrice: decimal.NewFromInt(5)},
		{Name: "Nut", ItemCode: "N1", SalePrice: decimal.NewFromInt(2)},
	})
	require.NoError(t, err)

	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool { return p.ItemCode == "B1" })).Return(nil)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool { return p.ItemCode == "N1" })).
		Return(errors.New("constraint"))

	res, err := svc.Import(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Failed)
}

func TestProductService_Import_InvalidWorkbook(t *testing.T) {
	svc := service.NewProductService(new(mocks.MockProductRepo))

	_, err := svc.Import(context.Background(), bytes.NewBufferString("not a workbook"))
	assert.ErrorIs(t, err, domain.ErrInvalidWorkbook)
}
