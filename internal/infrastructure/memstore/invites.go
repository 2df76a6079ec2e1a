package memstore

import (
	"context"
	"sync"

	"github.com/blueward/access-system/internal/core/domain"
)

// InviteStore is an in-memory ports.InviteRepository. List results preserve
// insertion order.
type InviteStore struct {
	mu      sync.RWMutex
	invites []*domain.Invite
}

func NewInviteStore(seed ...*domain.Invite) *InviteStore {
	s := &InviteStore{}
	for _, inv := range seed {
		clone := *inv
		s.invites = append(s.invites, &clone)
	}
	return s
}

func (s *InviteStore) Create(_ context.Context, inv *domain.Invite) (*domain.Invite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *inv
	clone.ID = s.nextID()
	s.invites = append(s.invites, &clone)
	out := clone
	return &out, nil
}

func (s *InviteStore) FindByID(_ context.Context, id int) (*domain.Invite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invites {
		if inv.ID == id {
			clone := *inv
			return &clone, nil
		}
	}
	return nil, domain.ErrInviteNotFound
}

func (s *InviteStore) FindByCode(_ context.Context, code string) (*domain.Invite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invites {
		if inv.Code == code {
			clone := *inv
			return &clone, nil
		}
	}
	return nil, domain.ErrInviteNotFound
}

func (s *InviteStore) ListByCreator(_ context.Context, creatorID int) ([]*domain.Invite, error) {
	return s.filter(func(inv *domain.Invite) bool { return inv.CreatedBy == creatorID }), nil
}

func (s *InviteStore) ListByGuest(_ context.Context, guestID int) ([]*domain.Invite, error) {
	return s.filter(func(inv *domain.Invite) bool { return inv.GuestID == guestID }), nil
}

func (s *InviteStore) ListAll(_ context.Context) ([]*domain.Invite, error) {
	return s.filter(func(*domain.Invite) bool { return true }), nil
}

func (s *InviteStore) Update(_ context.Context, inv *domain.Invite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.invites {
		if existing.ID == inv.ID {
			clone := *inv
			s.invites[i] = &clone
			return nil
		}
	}
	return domain.ErrInviteNotFound
}

func (s *InviteStore) filter(keep func(*domain.Invite) bool) []*domain.Invite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Invite, 0)
	for _, inv := range s.invites {
		if keep(inv) {
			clone := *inv
			out = append(out, &clone)
		}
	}
	return out
}

func (s *InviteStore) nextID() int {
	max := 0
	for _, inv := range s.invites {
		if inv.ID > max {
			max = inv.ID
		}
	}
	return max + 1
}
