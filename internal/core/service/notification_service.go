package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/blueward/access-system/internal/core/domain"
	"github.com/blueward/access-system/internal/core/ports"
	"github.com/blueward/access-system/internal/metrics"
)

// NotificationService reads and acknowledges user notifications.
type NotificationService struct {
	repo ports.NotificationRepository
	log  zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, log zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, log: log}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID int) ([]*domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *NotificationService) ListUnreadForUser(ctx context.Context, userID int) ([]*domain.Notification, error) {
	all, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	unread := make([]*domain.Notification, 0, len(all))
	for _, n := range all {
		if !n.Read {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

// MarkRead acknowledges a notification. Idempotent: marking an already-read
// notification succeeds again. Returns false only when the id does not exist.
func (s *NotificationService) MarkRead(ctx context.Context, id int) bool {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotificationNotFound) {
			s.log.Error().Err(err).Int("notification_id", id).Msg("mark read lookup failed")
		}
		return false
	}
	if !n.Read {
		n.Read = true
		if err := s.repo.Update(ctx, n); err != nil {
			s.log.Error().Err(err).Int("notification_id", id).Msg("failed to persist read flag")
			return false
		}
	}
	metrics.NotificationsReadTotal.Inc()
	return true
}
