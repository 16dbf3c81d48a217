package services

import (
	"context"

	"github.com/harutok/warikan/internal/core/domain"
	"github.com/harutok/warikan/internal/dto"
)

// PaymentReaderSvc defines read operations for the payment ledger.
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a specific payment.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPayments retrieves all payments in insertion order.
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for the payment ledger.
type PaymentWriterSvc interface {
	// CreatePayment records a payment, normalizing its amount into the
	// accounting currency with the current rate table.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)

	// UpdatePayment edits a payment and re-normalizes it.
	UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, error)

	// DeletePayment removes a payment.
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentSvcFacade combines all payment-related service interfaces.
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
