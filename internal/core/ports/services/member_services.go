package services

import (
	"context"

	"github.com/harutok/warikan/internal/core/domain"
	"github.com/harutok/warikan/internal/dto"
)

// MemberReaderSvc defines read operations for the member roster.
type MemberReaderSvc interface {
	// GetMemberByID retrieves a specific member.
	GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// ListMembers retrieves the roster in insertion order.
	ListMembers(ctx context.Context) ([]domain.Member, error)
}

// MemberWriterSvc defines write operations for the member roster.
type MemberWriterSvc interface {
	// CreateMember adds a member to the group.
	CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error)

	// DeleteMember removes a member. Their recorded payments are kept.
	DeleteMember(ctx context.Context, memberID string) error
}

// MemberSvcFacade combines all member-related service interfaces.
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
}
