package memstore

import (
	"context"
	"sync"

	"github.com/blueward/access-system/internal/core/domain"
)

// VIPInviteStore is an in-memory ports.VIPInviteRepository.
type VIPInviteStore struct {
	mu      sync.RWMutex
	invites []*domain.VIPInvite
}

func NewVIPInviteStore(seed ...*domain.VIPInvite) *VIPInviteStore {
	s := &VIPInviteStore{}
	for _, inv := range seed {
		clone := *inv
		s.invites = append(s.invites, &clone)
	}
	return s
}

func (s *VIPInviteStore) Create(_ context.Context, inv *domain.VIPInvite) (*domain.VIPInvite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *inv
	clone.ID = s.nextID()
	s.invites = append(s.invites, &clone)
	out := clone
	return &out, nil
}

func (s *VIPInviteStore) FindByID(_ context.Context, id int) (*domain.VIPInvite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invites {
		if inv.ID == id {
			clone := *inv
			return &clone, nil
		}
	}
	return nil, domain.ErrVIPInviteNotFound
}

func (s *VIPInviteStore) FindByCode(_ context.Context, code string) (*domain.VIPInvite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invites {
		if inv.Code == code {
			clone := *inv
			return &clone, nil
		}
	}
	return nil, domain.ErrVIPInviteNotFound
}

func (s *VIPInviteStore) ListAll(_ context.Context) ([]*domain.VIPInvite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.VIPInvite, 0, len(s.invites))
	for _, inv := range s.invites {
		clone := *inv
		out = append(out, &clone)
	}
	return out, nil
}

func (s *VIPInviteStore) Update(_ context.Context, inv *domain.VIPInvite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.invites {
		if existing.ID == inv.ID {
			clone := *inv
			s.invites[i] = &clone
			return nil
		}
	}
	return domain.ErrVIPInviteNotFound
}

// Delete removes the record entirely, shifting later entries up.
func (s *VIPInviteStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.invites {
		if existing.ID == id {
			s.invites = append(s.invites[:i], s.invites[i+1:]...)
			return nil
		}
	}
	return domain.ErrVIPInviteNotFound
}

func (s *VIPInviteStore) nextID() int {
	max := 100 // VIP ids start above the regular invite range
	for _, inv := range s.invites {
		if inv.ID > max {
			max = inv.ID
		}
	}
	return max + 1
}
