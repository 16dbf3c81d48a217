package dto

import (
	"github.com/shopspring/decimal"

	"github.com/harutok/warikan/internal/core/domain"
)

// SettlementEntryResponse defines one member's net settlement position.
type SettlementEntryResponse struct {
	MemberID string          `json:"memberID"`
	Name     string          `json:"name"`
	Delta    decimal.Decimal `json:"delta"`
}

// SettlementResponse defines the full settlement result in roster order.
type SettlementResponse struct {
	Entries   []SettlementEntryResponse `json:"entries"`
	Total     decimal.Decimal           `json:"total"`
	FairShare decimal.Decimal           `json:"fairShare"`
}

// ToSettlementResponse converts a domain.SettlementSummary to a response DTO.
func ToSettlementResponse(s *domain.SettlementSummary) SettlementResponse {
	entries := make([]SettlementEntryResponse, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = SettlementEntryResponse{
			MemberID: e.MemberID,
			Name:     e.Name,
			Delta:    e.Delta,
		}
	}
	return SettlementResponse{
		Entries:   entries,
		Total:     s.Total,
		FairShare: s.FairShare,
	}
}
