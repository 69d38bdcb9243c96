package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billdesk/internal/paymentlink"
	"billdesk/internal/service"
)

// MockPaymentService is a mock implementation of service.PaymentService.
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Link(ctx context.Context, input service.LinkInput) (*paymentlink.Result, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentlink.Result), args.Error(1)
}
