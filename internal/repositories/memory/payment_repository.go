package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/harutok/warikan/internal/apperrors"
	"github.com/harutok/warikan/internal/core/domain"
	portsrepo "github.com/harutok/warikan/internal/core/ports/repositories"
)

// Ensure PaymentRepository implements the repository facade.
var _ portsrepo.PaymentRepositoryFacade = (*PaymentRepository)(nil)

// PaymentRepository stores the payment ledger in insertion order.
type PaymentRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.Payment
	ordered []string
}

// NewPaymentRepository creates an empty payment repository.
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		byID: make(map[string]domain.Payment),
	}
}

// SavePayment persists a new payment.
func (r *PaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[payment.PaymentID]; exists {
		return fmt.Errorf("payment %s: %w", payment.PaymentID, apperrors.ErrDuplicate)
	}
	r.byID[payment.PaymentID] = payment
	r.ordered = append(r.ordered, payment.PaymentID)
	return nil
}

// UpdatePayment replaces an existing payment wholesale.
func (r *PaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[payment.PaymentID]; !ok {
		return fmt.Errorf("payment %s: %w", payment.PaymentID, apperrors.ErrNotFound)
	}
	r.byID[payment.PaymentID] = payment
	return nil
}

// FindPaymentByID retrieves a payment by ID.
func (r *PaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.byID[paymentID]
	if !ok {
		return nil, fmt.Errorf("payment %s: %w", paymentID, apperrors.ErrNotFound)
	}
	return &payment, nil
}

// ListPayments retrieves all payments in insertion order.
func (r *PaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payments := make([]domain.Payment, 0, len(r.ordered))
	for _, id := range r.ordered {
		payments = append(payments, r.byID[id])
	}
	return payments, nil
}

// DeletePayment removes a payment by ID.
func (r *PaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[paymentID]; !ok {
		return fmt.Errorf("payment %s: %w", paymentID, apperrors.ErrNotFound)
	}
	delete(r.byID, paymentID)
	for i, id := range r.ordered {
		if id == paymentID {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}
	return nil
}
