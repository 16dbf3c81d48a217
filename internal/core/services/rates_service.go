package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harutok/warikan/internal/apperrors"
	"github.com/harutok/warikan/internal/core/domain"
	portsrepo "github.com/harutok/warikan/internal/core/ports/repositories"
	"github.com/harutok/warikan/pkg/metrics"
)

// fallbackQuotes is the fixed offline rate table, anchored to USD like the
// live quotes so triangulation through the base currency keeps working when
// the rate source is unreachable.
var fallbackQuotes = map[string]decimal.Decimal{
	"USDJPY": decimal.RequireFromString("146.55"),
	"USDEUR": decimal.RequireFromString("0.8545"),
	"USDGBP": decimal.RequireFromString("0.7402"),
	"USDCNY": decimal.RequireFromString("7.1488"),
	"USDKRW": decimal.RequireFromString("1332.2727"),
	"USDTHB": decimal.RequireFromString("34.8929"),
	"USDSGD": decimal.RequireFromString("1.3470"),
}

// RatesService provides a rate table that is fresh enough to use. It owns the
// cache slot exclusively: fresh cache hits are served without a network call,
// misses trigger a remote fetch, and any fetch failure degrades to the fixed
// fallback table for the current call only.
type RatesService struct {
	fetcher   portsrepo.RateFetcher
	cache     portsrepo.RateCache
	ttl       time.Duration
	accessKey string

	// refreshMu serializes check-then-fetch-then-put so two concurrent
	// refreshes cannot interleave partial writes. Reads of a fresh cached
	// table never take it.
	refreshMu sync.Mutex
}

// NewRatesService creates a new RatesService. An empty accessKey is a
// configuration error that degrades every fetch to the fallback table
// without touching the network.
func NewRatesService(fetcher portsrepo.RateFetcher, cache portsrepo.RateCache, ttl time.Duration, accessKey string) *RatesService {
	return &RatesService{
		fetcher:   fetcher,
		cache:     cache,
		ttl:       ttl,
		accessKey: accessKey,
	}
}

// GetRates returns the cached table while fresh, otherwise fetches live rates.
// The returned table is always usable; a non-nil error wraps
// apperrors.ErrRateFetch and means the fallback table was served.
func (s *RatesService) GetRates(ctx context.Context) (*domain.RateTable, error) {
	if table, ok := s.cachedFresh(ctx); ok {
		metrics.RateLookups.WithLabelValues(metrics.RateOutcomeCache).Inc()
		return table, nil
	}
	return s.refresh(ctx, false)
}

// RefreshRates fetches live rates unconditionally, bypassing the freshness
// check. The cache is overwritten only on success.
func (s *RatesService) RefreshRates(ctx context.Context) (*domain.RateTable, error) {
	return s.refresh(ctx, true)
}

// cachedFresh reads the cache slot and reports whether it held a table that
// is still within its validity window. Read failures are treated as misses.
func (s *RatesService) cachedFresh(ctx context.Context) (*domain.RateTable, bool) {
	table, err := s.cache.GetRateTable(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			slog.WarnContext(ctx, "Rate cache read failed, treating as miss", slog.String("error", err.Error()))
		}
		return nil, false
	}
	if !table.Fresh(time.Now()) {
		return nil, false
	}
	return table, true
}

func (s *RatesService) refresh(ctx context.Context, force bool) (*domain.RateTable, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	// A concurrent refresh may have landed while we waited on the lock.
	if !force {
		if table, ok := s.cachedFresh(ctx); ok {
			metrics.RateLookups.WithLabelValues(metrics.RateOutcomeCache).Inc()
			return table, nil
		}
	}

	now := time.Now()

	if s.accessKey == "" {
		metrics.RateLookups.WithLabelValues(metrics.RateOutcomeFallback).Inc()
		return s.fallbackTable(now), fmt.Errorf("%w: no access key configured", apperrors.ErrRateFetch)
	}

	fetched, err := s.fetcher.FetchRates(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Live rate fetch failed, serving fallback table", slog.String("error", err.Error()))
		metrics.RateLookups.WithLabelValues(metrics.RateOutcomeFallback).Inc()
		return s.fallbackTable(now), fmt.Errorf("%w: %v", apperrors.ErrRateFetch, err)
	}

	table := *fetched
	if table.FetchedAt.IsZero() {
		table.FetchedAt = now
	}
	table.ValidUntil = now.Add(s.ttl)

	// The fallback is never persisted; only successful fetches overwrite the
	// slot, so a later call retries the real fetch once this table expires.
	if err := s.cache.PutRateTable(ctx, table); err != nil {
		slog.WarnContext(ctx, "Rate cache write failed", slog.String("error", err.Error()))
	}

	metrics.RateLookups.WithLabelValues(metrics.RateOutcomeLive).Inc()
	return &table, nil
}

func (s *RatesService) fallbackTable(now time.Time) *domain.RateTable {
	rates := make(map[string]decimal.Decimal, len(fallbackQuotes))
	for pair, rate := range fallbackQuotes {
		rates[pair] = rate
	}
	return &domain.RateTable{
		BaseCurrency: "USD",
		Rates:        rates,
		FetchedAt:    now,
		ValidUntil:   now.Add(s.ttl),
	}
}
