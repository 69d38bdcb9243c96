package service

import (
	"context"
	"log"

	"billdesk/internal/document"
	"billdesk/internal/domain"
	"billdesk/internal/paymentlink"
	"billdesk/internal/taxengine"
)

// LinkInput is a payment and the open invoices it may settle. Allocations are
// manual when any invoice carries an allocated amount.
type LinkInput struct {
	Amount   taxengine.Amount         `json:"amount"`
	Invoices []document.LinkedInvoice `json:"invoices"`
}

// PaymentService allocates received payments to open invoices.
type PaymentService interface {
	Link(ctx context.Context, input LinkInput) (*paymentlink.Result, error)
}

type paymentService struct{}

// NewPaymentService creates a new PaymentService implementation.
func NewPaymentService() PaymentService {
	return &paymentService{}
}

func (s *paymentService) Link(_ context.Context, input LinkInput) (*paymentlink.Result, error) {
	if !input.Amount.Valid || input.Amount.Value.IsNegative() {
		return nil, domain.ErrInvalidAllocation
	}
	res, err := document.LinkPayment(input.Amount.Value, input.Invoices)
	if err != nil {
		log.Printf("paymentService.Link: %v", err)
		return nil, err
	}
	return res, nil
}
