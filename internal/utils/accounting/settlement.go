package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/harutok/warikan/internal/core/domain"
)

// ComputeSettlement computes each member's net balance against an equal-share
// split of all normalized payments. It is pure and idempotent: no I/O, no
// errors, identical output for identical input.
//
// Entries come back in roster order, including members whose delta is zero.
// delta = round(paid - fairShare, 2), where fairShare is the unrounded total
// divided by the member count. Payments whose PayerID matches no member (the
// payer was deleted) still count toward the total but credit nobody.
func ComputeSettlement(members []domain.Member, payments []domain.Payment) []domain.SettlementEntry {
	entries := make([]domain.SettlementEntry, 0, len(members))
	if len(members) == 0 {
		return entries
	}

	total := decimal.Zero
	paidBy := make(map[string]decimal.Decimal, len(members))
	for _, p := range payments {
		total = total.Add(p.NormalizedAmount)
		paidBy[p.PayerID] = paidBy[p.PayerID].Add(p.NormalizedAmount)
	}

	fairShare := total.Div(decimal.NewFromInt(int64(len(members))))

	for _, m := range members {
		paid := paidBy[m.MemberID]
		entries = append(entries, domain.SettlementEntry{
			MemberID: m.MemberID,
			Name:     m.Name,
			Delta:    paid.Sub(fairShare).Round(NormalizedPrecision),
		})
	}
	return entries
}

// SettlementTotal sums the normalized amounts of all payments. Exposed so the
// settlement endpoint can report the group total alongside the per-member
// deltas without re-deriving it.
func SettlementTotal(payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.NormalizedAmount)
	}
	return total
}
