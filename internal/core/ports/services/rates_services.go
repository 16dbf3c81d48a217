package services

import (
	"context"

	"github.com/harutok/warikan/internal/core/domain"
)

// RateProviderSvc supplies a rate table that is fresh enough to use,
// transparently handling cache hits, remote fetch and fallback.
//
// Both methods always return a usable table. A non-nil error wraps
// apperrors.ErrRateFetch and means the table is the built-in fallback;
// callers may surface the reason but must not treat it as a failure.
type RateProviderSvc interface {
	// GetRates returns the cached table while fresh, otherwise fetches.
	GetRates(ctx context.Context) (*domain.RateTable, error)

	// RefreshRates fetches unconditionally, bypassing the freshness check.
	RefreshRates(ctx context.Context) (*domain.RateTable, error)
}
