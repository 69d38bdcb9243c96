package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billdesk/internal/document"
	"billdesk/internal/domain"
	"billdesk/internal/service"
	"billdesk/internal/taxengine"
)

func openInvoices() []document.LinkedInvoice {
	return []document.LinkedInvoice{
		{ID: "b", Number: "INV-2", Date: "2024-05-01", Balance: taxengine.NewAmount(400)},
		{ID: "a", Number: "INV-1", Date: "2024-04-01", Balance: taxengine.NewAmount(300)},
	}
}

func TestPaymentService_Link_Auto(t *testing.T) {
	svc := service.NewPaymentService()

	res, err := svc.Link(context.Background(), service.LinkInput{Amount: taxengine.NewAmount(500), Invoices: openInvoices()})
	require.NoError(t, err)
	require.Len(t, res.Links, 2)
	assert.Equal(t, "INV-1", res.Links[0].Number)
	assert.Equal(t, "300", res.Links[0].Allocated.String())
	assert.Equal(t, "200", res.Links[1].Allocated.String())
	assert.True(t, res.Unused.IsZero())
}

func TestPaymentService_Link_ManualOverBalance(t *testing.T) {
	svc := service.NewPaymentService()
	invoices := openInvoices()
	invoices[1].Allocated = taxengine.NewAmount(350)

	_, err := svc.Link(context.Background(), service.LinkInput{Amount: taxengine.NewAmount(500), Invoices: invoices})
	assert.ErrorIs(t, err, domain.ErrAllocationExceedsBalance)
}

func TestPaymentService_Link_MissingAmount(t *testing.T) {
	svc := service.NewPaymentService()

	_, err := svc.Link(context.Background(), service.LinkInput{Invoices: openInvoices()})
	assert.ErrorIs(t, err, domain.ErrInvalidAllocation)
}
