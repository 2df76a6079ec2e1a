package memstore

import (
	"context"
	"sync"

	"github.com/blueward/access-system/internal/core/domain"
)

// NotificationStore is an in-memory ports.NotificationRepository.
type NotificationStore struct {
	mu            sync.RWMutex
	notifications []*domain.Notification
}

func NewNotificationStore(seed ...*domain.Notification) *NotificationStore {
	s := &NotificationStore{}
	for _, n := range seed {
		clone := *n
		s.notifications = append(s.notifications, &clone)
	}
	return s
}

func (s *NotificationStore) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *n
	clone.ID = s.nextID()
	s.notifications = append(s.notifications, &clone)
	out := clone
	return &out, nil
}

func (s *NotificationStore) FindByID(_ context.Context, id int) (*domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.notifications {
		if n.ID == id {
			clone := *n
			return &clone, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

func (s *NotificationStore) ListByUser(_ context.Context, userID int) ([]*domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Notification, 0)
	for _, n := range s.notifications {
		if n.UserID == userID {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *NotificationStore) Update(_ context.Context, n *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.notifications {
		if existing.ID == n.ID {
			clone := *n
			s.notifications[i] = &clone
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

func (s *NotificationStore) nextID() int {
	max := 0
	for _, n := range s.notifications {
		if n.ID > max {
			max = n.ID
		}
	}
	return max + 1
}
