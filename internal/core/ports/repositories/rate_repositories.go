package repositories

import (
	"context"

	"github.com/harutok/warikan/internal/core/domain"
)

// RateCache is the single named slot the rate provider persists its table in.
// The provider owns it exclusively; no other component reads or writes it.
type RateCache interface {
	// GetRateTable reads the cached table. A missing or unparseable entry is
	// reported as apperrors.ErrNotFound so callers treat it as a cache miss.
	GetRateTable(ctx context.Context) (*domain.RateTable, error)

	// PutRateTable overwrites the cached table wholesale.
	PutRateTable(ctx context.Context, table domain.RateTable) error
}

// RateFetcher obtains a live rate table from the external rate source.
// Implementations set BaseCurrency, Rates and FetchedAt; the provider stamps
// the validity window.
type RateFetcher interface {
	FetchRates(ctx context.Context) (*domain.RateTable, error)
}
