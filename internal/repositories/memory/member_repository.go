// Package memory provides session-scoped, in-memory implementations of the
// repository ports. Members and payments live only for the lifetime of the
// process; the rate cache is the sole persisted artifact.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/harutok/warikan/internal/apperrors"
	"github.com/harutok/warikan/internal/core/domain"
	portsrepo "github.com/harutok/warikan/internal/core/ports/repositories"
)

// Ensure MemberRepository implements the repository facade.
var _ portsrepo.MemberRepositoryFacade = (*MemberRepository)(nil)

// MemberRepository stores the roster in insertion order. Insertion order is
// significant: settlement entries are reported in roster order.
type MemberRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.Member
	ordered []string
}

// NewMemberRepository creates an empty member repository.
func NewMemberRepository() *MemberRepository {
	return &MemberRepository{
		byID: make(map[string]domain.Member),
	}
}

// SaveMember persists a new member.
func (r *MemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[member.MemberID]; exists {
		return fmt.Errorf("member %s: %w", member.MemberID, apperrors.ErrDuplicate)
	}
	r.byID[member.MemberID] = member
	r.ordered = append(r.ordered, member.MemberID)
	return nil
}

// FindMemberByID retrieves a member by ID.
func (r *MemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	member, ok := r.byID[memberID]
	if !ok {
		return nil, fmt.Errorf("member %s: %w", memberID, apperrors.ErrNotFound)
	}
	return &member, nil
}

// ListMembers retrieves the roster in insertion order.
func (r *MemberRepository) ListMembers(ctx context.Context) ([]domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]domain.Member, 0, len(r.ordered))
	for _, id := range r.ordered {
		members = append(members, r.byID[id])
	}
	return members, nil
}

// DeleteMember removes a member by ID. Payments referencing the member are
// not touched.
func (r *MemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[memberID]; !ok {
		return fmt.Errorf("member %s: %w", memberID, apperrors.ErrNotFound)
	}
	delete(r.byID, memberID)
	for i, id := range r.ordered {
		if id == memberID {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}
	return nil
}
