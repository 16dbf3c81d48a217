package repositories

import (
	"context"

	"github.com/harutok/warikan/internal/core/domain"
)

// PaymentReader defines read operations for the payment ledger.
type PaymentReader interface {
	// FindPaymentByID retrieves a single payment by ID.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPayments retrieves all payments in insertion order.
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for the payment ledger.
type PaymentWriter interface {
	// SavePayment persists a new payment.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// UpdatePayment replaces an existing payment wholesale.
	UpdatePayment(ctx context.Context, payment domain.Payment) error

	// DeletePayment removes a payment by ID.
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
