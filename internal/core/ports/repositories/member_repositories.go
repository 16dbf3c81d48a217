package repositories

import (
	"context"

	"github.com/harutok/warikan/internal/core/domain"
)

// MemberReader defines read operations for the member roster.
type MemberReader interface {
	// FindMemberByID retrieves a single member by ID.
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// ListMembers retrieves the roster in insertion order.
	ListMembers(ctx context.Context) ([]domain.Member, error)
}

// MemberWriter defines write operations for the member roster.
type MemberWriter interface {
	// SaveMember persists a new member.
	SaveMember(ctx context.Context, member domain.Member) error

	// DeleteMember removes a member by ID. Payments referencing the member
	// are left untouched.
	DeleteMember(ctx context.Context, memberID string) error
}

// MemberRepositoryFacade combines all member-related repository interfaces.
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}
