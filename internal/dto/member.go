package dto

import (
	"time"

	"github.com/harutok/warikan/internal/core/domain"
)

// CreateMemberRequest defines the data needed to add a member to the group.
type CreateMemberRequest struct {
	Name string `json:"name" binding:"required"`
}

// MemberResponse defines the data returned for a member.
type MemberResponse struct {
	MemberID  string    `json:"memberID"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToMemberResponse converts a domain.Member to a MemberResponse DTO.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:  m.MemberID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// ToListMemberResponse converts a slice of members to response DTOs.
func ToListMemberResponse(members []domain.Member) []MemberResponse {
	res := make([]MemberResponse, len(members))
	for i := range members {
		res[i] = ToMemberResponse(&members[i])
	}
	return res
}
