package domain

import "github.com/shopspring/decimal"

// SettlementSummary bundles the per-member settlement entries with the group
// totals they were derived from. Like its entries it is recomputed on every
// read, never stored.
type SettlementSummary struct {
	Entries   []SettlementEntry `json:"entries"`
	Total     decimal.Decimal   `json:"total"`
	FairShare decimal.Decimal   `json:"fairShare"`
}
