package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harutok/warikan/internal/apperrors"
	"github.com/harutok/warikan/internal/core/domain"
	portsrepo "github.com/harutok/warikan/internal/core/ports/repositories"
	portssvc "github.com/harutok/warikan/internal/core/ports/services"
	"github.com/harutok/warikan/internal/dto"
	"github.com/harutok/warikan/internal/utils/accounting"
)

// PaymentService provides business logic for the payment ledger. Amounts are
// normalized into the accounting currency exactly once, at create/edit time.
type PaymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	memberRepo  portsrepo.MemberReader
	rates       portssvc.RateProviderSvc
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, memberRepo portsrepo.MemberReader, rates portssvc.RateProviderSvc) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		rates:       rates,
	}
}

// CreatePayment records a payment after validating and normalizing it.
func (s *PaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if err := s.validatePaymentInput(ctx, req.PayerID, req.Amount, req.CurrencyCode, req.Description); err != nil {
		return nil, err
	}

	normalized, rate := s.normalize(ctx, req.Amount, req.CurrencyCode)

	now := time.Now()
	payment := domain.Payment{
		PaymentID:        uuid.NewString(),
		PayerID:          req.PayerID,
		Description:      strings.TrimSpace(req.Description),
		CurrencyCode:     req.CurrencyCode,
		OriginalAmount:   req.Amount,
		RateApplied:      rate,
		NormalizedAmount: normalized,
		CreatedAt:        now,
		LastUpdatedAt:    now,
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment in service: %w", err)
	}
	return &payment, nil
}

// UpdatePayment edits an existing payment. The amount is re-normalized with
// the current rate table; the previously stored rate is discarded.
func (s *PaymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	existing, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment in service: %w", err)
	}

	if err := s.validatePaymentInput(ctx, req.PayerID, req.Amount, req.CurrencyCode, req.Description); err != nil {
		return nil, err
	}

	normalized, rate := s.normalize(ctx, req.Amount, req.CurrencyCode)

	payment := domain.Payment{
		PaymentID:        existing.PaymentID,
		PayerID:          req.PayerID,
		Description:      strings.TrimSpace(req.Description),
		CurrencyCode:     req.CurrencyCode,
		OriginalAmount:   req.Amount,
		RateApplied:      rate,
		NormalizedAmount: normalized,
		CreatedAt:        existing.CreatedAt,
		LastUpdatedAt:    time.Now(),
	}

	if err := s.paymentRepo.UpdatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to update payment in service: %w", err)
	}
	return &payment, nil
}

// GetPaymentByID retrieves a specific payment.
func (s *PaymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment in service: %w", err)
	}
	return payment, nil
}

// ListPayments retrieves all payments in insertion order.
func (s *PaymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments in service: %w", err)
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

// DeletePayment removes a payment from the ledger.
func (s *PaymentService) DeletePayment(ctx context.Context, paymentID string) error {
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		return fmt.Errorf("failed to delete payment in service: %w", err)
	}
	return nil
}

func (s *PaymentService) validatePaymentInput(ctx context.Context, payerID string, amount decimal.Decimal, currencyCode, description string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !domain.IsSupportedCurrency(currencyCode) {
		return fmt.Errorf("%w: unsupported currency code '%s'", apperrors.ErrValidation, currencyCode)
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description must not be empty", apperrors.ErrValidation)
	}
	if _, err := s.memberRepo.FindMemberByID(ctx, payerID); err != nil {
		return fmt.Errorf("%w: payer '%s' is not a member", apperrors.ErrValidation, payerID)
	}
	return nil
}

// normalize converts the amount into the accounting currency with the current
// rate table. A degraded rate fetch is logged but never fails the payment:
// the provider already served the fallback table.
func (s *PaymentService) normalize(ctx context.Context, amount decimal.Decimal, currencyCode string) (decimal.Decimal, decimal.Decimal) {
	table, err := s.rates.GetRates(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Normalizing payment with fallback rates", slog.String("error", err.Error()))
	}
	return accounting.ToAccountingCurrency(amount, currencyCode, table)
}
