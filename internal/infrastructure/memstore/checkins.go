package memstore

import (
	"context"
	"sync"

	"github.com/blueward/access-system/internal/core/domain"
)

// CheckInStore is the in-memory append-only gate log.
type CheckInStore struct {
	mu      sync.RWMutex
	records []*domain.CheckInRecord
}

func NewCheckInStore(seed ...*domain.CheckInRecord) *CheckInStore {
	s := &CheckInStore{}
	for _, r := range seed {
		clone := *r
		s.records = append(s.records, &clone)
	}
	return s
}

func (s *CheckInStore) Append(_ context.Context, rec *domain.CheckInRecord) (*domain.CheckInRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *rec
	clone.ID = len(s.records) + 1
	s.records = append(s.records, &clone)
	out := clone
	return &out, nil
}

func (s *CheckInStore) ListByUser(_ context.Context, userID int) ([]*domain.CheckInRecord, error) {
	return s.filter(func(r *domain.CheckInRecord) bool { return r.UserID == userID }), nil
}

func (s *CheckInStore) ListByInvite(_ context.Context, inviteID int) ([]*domain.CheckInRecord, error) {
	return s.filter(func(r *domain.CheckInRecord) bool { return r.InviteID == inviteID }), nil
}

func (s *CheckInStore) ListAll(_ context.Context) ([]*domain.CheckInRecord, error) {
	return s.filter(func(*domain.CheckInRecord) bool { return true }), nil
}

func (s *CheckInStore) filter(keep func(*domain.CheckInRecord) bool) []*domain.CheckInRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.CheckInRecord, 0)
	for _, r := range s.records {
		if keep(r) {
			clone := *r
			out = append(out, &clone)
		}
	}
	return out
}
