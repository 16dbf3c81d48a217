package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records a single expense paid by one member on behalf of the group.
//
// NormalizedAmount is always expressed in the accounting currency and equals
// OriginalAmount multiplied by RateApplied, rounded to two decimal places at
// create/edit time. It is never re-rounded afterwards. RateApplied is always
// positive; when no conversion was possible it is one and NormalizedAmount
// carries the original amount unchanged.
type Payment struct {
	PaymentID        string          `json:"paymentID"` // Primary Key (UUID)
	PayerID          string          `json:"payerID"`   // FK -> Member.MemberID
	Description      string          `json:"description"`
	CurrencyCode     string          `json:"currencyCode"` // FK -> Currency.CurrencyCode
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	RateApplied      decimal.Decimal `json:"rateApplied"`
	NormalizedAmount decimal.Decimal `json:"normalizedAmount"`
	CreatedAt        time.Time       `json:"createdAt"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
}
