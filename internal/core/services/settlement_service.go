package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/harutok/warikan/internal/core/domain"
	portsrepo "github.com/harutok/warikan/internal/core/ports/repositories"
	"github.com/harutok/warikan/internal/utils/accounting"
)

// SettlementService computes the group settlement from the current roster and
// ledger. The calculation itself is pure; this service only loads the inputs.
type SettlementService struct {
	memberRepo  portsrepo.MemberReader
	paymentRepo portsrepo.PaymentReader
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(memberRepo portsrepo.MemberReader, paymentRepo portsrepo.PaymentReader) *SettlementService {
	return &SettlementService{
		memberRepo:  memberRepo,
		paymentRepo: paymentRepo,
	}
}

// GetSettlement returns per-member deltas in roster order plus the totals
// they were derived from. An empty roster yields an empty result.
func (s *SettlementService) GetSettlement(ctx context.Context) (*domain.SettlementSummary, error) {
	members, err := s.memberRepo.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members in service: %w", err)
	}
	payments, err := s.paymentRepo.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments in service: %w", err)
	}

	total := accounting.SettlementTotal(payments)
	fairShare := decimal.Zero
	if len(members) > 0 {
		fairShare = total.Div(decimal.NewFromInt(int64(len(members)))).Round(accounting.NormalizedPrecision)
	}

	return &domain.SettlementSummary{
		Entries:   accounting.ComputeSettlement(members, payments),
		Total:     total,
		FairShare: fairShare,
	}, nil
}
