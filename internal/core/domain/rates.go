package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateTable is a time-bounded snapshot of currency conversion multipliers
// anchored to a base currency. Keys in Rates are currency pairs of the form
// BASE+TARGET (e.g. "USDJPY" holds the USD->JPY multiplier).
//
// A table is immutable once built; a refresh replaces it wholesale, never
// field by field.
type RateTable struct {
	BaseCurrency string                     `json:"baseCurrency"`
	Rates        map[string]decimal.Decimal `json:"rates"`
	FetchedAt    time.Time                  `json:"fetchedAt"`
	ValidUntil   time.Time                  `json:"validUntil"`
}

// Fresh reports whether the table is still within its validity window.
func (t *RateTable) Fresh(now time.Time) bool {
	return now.Before(t.ValidUntil)
}

// Rate returns the multiplier for the given currency pair key.
func (t *RateTable) Rate(pair string) (decimal.Decimal, bool) {
	r, ok := t.Rates[pair]
	return r, ok
}
