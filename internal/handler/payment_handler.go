package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"billdesk/internal/domain"
	"billdesk/internal/service"
)

// PaymentHandler handles payment allocation endpoints.
type PaymentHandler struct {
	payments service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Link handles POST /api/v1/payments/link
// @Summary Allocate a payment to open invoices
// @Description Without allocated amounts the payment settles the oldest invoices first; otherwise the given allocations are validated
// @Tags payments
// @Accept json
// @Produce json
// @Param body body service.LinkInput true "Payment and open invoices"
// @Success 200 {object} Response{data=paymentlink.Result} "Allocation result"
// @Failure 400 {object} ErrorResponseBody "Invalid allocation"
// @Failure 422 {object} ErrorResponseBody "Allocation exceeds balance or payment"
// @Router /payments/link [post]
func (h *PaymentHandler) Link(c *gin.Context) {
	var input service.LinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleError(c, fmt.Errorf("%v: %w", err, domain.ErrInvalidAllocation))
		return
	}

	res, err := h.payments.Link(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, res)
}
