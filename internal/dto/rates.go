package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/harutok/warikan/internal/core/domain"
)

// RateTableResponse defines the data returned for the current rate table.
// Warning is non-empty when the table came from the built-in fallback because
// the live fetch failed; the table itself remains usable.
type RateTableResponse struct {
	BaseCurrency string                     `json:"baseCurrency"`
	Rates        map[string]decimal.Decimal `json:"rates"`
	FetchedAt    time.Time                  `json:"fetchedAt"`
	ValidUntil   time.Time                  `json:"validUntil"`
	Warning      string                     `json:"warning,omitempty"`
}

// ToRateTableResponse converts a domain.RateTable to a response DTO,
// attaching the degraded-fetch reason when present.
func ToRateTableResponse(t *domain.RateTable, fetchErr error) RateTableResponse {
	res := RateTableResponse{
		BaseCurrency: t.BaseCurrency,
		Rates:        t.Rates,
		FetchedAt:    t.FetchedAt,
		ValidUntil:   t.ValidUntil,
	}
	if fetchErr != nil {
		res.Warning = fetchErr.Error()
	}
	return res
}
