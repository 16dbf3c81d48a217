package domain

import "time"

// Member represents a participant in the expense group.
// Deleting a member does not cascade to their recorded payments; see the
// settlement calculator for how orphaned payer references are handled.
type Member struct {
	MemberID  string    `json:"memberID"` // Primary Key (UUID)
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
