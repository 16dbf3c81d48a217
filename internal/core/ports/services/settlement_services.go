package services

import (
	"context"

	"github.com/harutok/warikan/internal/core/domain"
)

// SettlementSvcFacade computes the group settlement from the current roster
// and ledger.
type SettlementSvcFacade interface {
	// GetSettlement returns per-member deltas in roster order plus the
	// group total and fair share they were derived from.
	GetSettlement(ctx context.Context) (*domain.SettlementSummary, error)
}
