// Package memstore provides the in-memory repository implementations backing
// the demo. Stores are plain slices guarded by a mutex; they promise safe
// single-process use, nothing more. The repository interfaces leave room for
// a real backing store later.
package memstore

import (
	"context"
	"sync"

	"github.com/blueward/access-system/internal/core/domain"
)

// UserStore is an in-memory ports.UserRepository.
type UserStore struct {
	mu    sync.RWMutex
	users []*domain.User
}

func NewUserStore(seed ...*domain.User) *UserStore {
	s := &UserStore{}
	for _, u := range seed {
		s.users = append(s.users, u.Clone())
	}
	return s
}

func (s *UserStore) FindByID(_ context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u.Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *UserStore) ListByRole(_ context.Context, role domain.Role) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.User, 0)
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u.Clone())
		}
	}
	return out, nil
}

func (s *UserStore) ListAll(_ context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Clone())
	}
	return out, nil
}

func (s *UserStore) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return nil, domain.ErrUserExists
		}
	}
	clone := u.Clone()
	clone.ID = s.nextID()
	s.users = append(s.users, clone)
	return clone.Clone(), nil
}

func (s *UserStore) Update(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.users {
		if existing.ID == u.ID {
			s.users[i] = u.Clone()
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (s *UserStore) nextID() int {
	max := 0
	for _, u := range s.users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
