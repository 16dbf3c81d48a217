package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harutok/warikan/internal/apperrors"
	"github.com/harutok/warikan/internal/core/domain"
	portsrepo "github.com/harutok/warikan/internal/core/ports/repositories"
	"github.com/harutok/warikan/internal/dto"
)

// MemberService provides business logic for the member roster.
type MemberService struct {
	memberRepo portsrepo.MemberRepositoryFacade
}

// NewMemberService creates a new MemberService.
func NewMemberService(memberRepo portsrepo.MemberRepositoryFacade) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// CreateMember adds a member to the group.
func (s *MemberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: member name must not be empty", apperrors.ErrValidation)
	}

	member := domain.Member{
		MemberID:  uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member in service: %w", err)
	}
	return &member, nil
}

// GetMemberByID retrieves a specific member.
func (s *MemberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member in service: %w", err)
	}
	return member, nil
}

// ListMembers retrieves the roster in insertion order.
func (s *MemberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.memberRepo.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members in service: %w", err)
	}
	if members == nil {
		return []domain.Member{}, nil
	}
	return members, nil
}

// DeleteMember removes a member from the roster. Payments referencing the
// member are deliberately kept: they stay in the settlement total but credit
// nobody, which shifts the fair share up for the remaining members.
func (s *MemberService) DeleteMember(ctx context.Context, memberID string) error {
	if err := s.memberRepo.DeleteMember(ctx, memberID); err != nil {
		return fmt.Errorf("failed to delete member in service: %w", err)
	}
	return nil
}
