package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/harutok/warikan/internal/core/domain"
)

// CreatePaymentRequest defines the data needed to record a payment.
// Amount must be strictly positive and CurrencyCode must belong to the
// supported currency set; both are enforced at binding time.
type CreatePaymentRequest struct {
	PayerID      string          `json:"payerID" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
	Description  string          `json:"description" binding:"required"`
}

// UpdatePaymentRequest defines the data needed to edit an existing payment.
// The payment is re-normalized with the current rate table on update.
type UpdatePaymentRequest struct {
	PayerID      string          `json:"payerID" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
	Description  string          `json:"description" binding:"required"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID        string          `json:"paymentID"`
	PayerID          string          `json:"payerID"`
	Description      string          `json:"description"`
	CurrencyCode     string          `json:"currencyCode"`
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	RateApplied      decimal.Decimal `json:"rateApplied"`
	NormalizedAmount decimal.Decimal `json:"normalizedAmount"`
	CreatedAt        time.Time       `json:"createdAt"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
}

// ToPaymentResponse converts a domain.Payment to a PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:        p.PaymentID,
		PayerID:          p.PayerID,
		Description:      p.Description,
		CurrencyCode:     p.CurrencyCode,
		OriginalAmount:   p.OriginalAmount,
		RateApplied:      p.RateApplied,
		NormalizedAmount: p.NormalizedAmount,
		CreatedAt:        p.CreatedAt,
		LastUpdatedAt:    p.LastUpdatedAt,
	}
}

// ToListPaymentResponse converts a slice of payments to response DTOs.
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}
