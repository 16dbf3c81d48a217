package domain

import "github.com/shopspring/decimal"

// SettlementEntry is one member's net settlement position against an equal
// share split. It is derived from the current roster and ledger on every read
// and never stored.
//
// Sign convention: a positive Delta means the member overpaid their share and
// is owed money; negative means they owe; zero means exactly settled.
type SettlementEntry struct {
	MemberID string          `json:"memberID"`
	Name     string          `json:"name"`
	Delta    decimal.Decimal `json:"delta"`
}
