package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/blueward/access-system/internal/core/domain"
	"github.com/blueward/access-system/internal/core/ports"
	"github.com/blueward/access-system/internal/metrics"
)

// CheckInService appends gate events to the log and notifies invite creators.
type CheckInService struct {
	log           zerolog.Logger
	checkIns      ports.CheckInRepository
	invites       ports.InviteRepository
	notifications ports.NotificationRepository
	now           ports.Clock
}

func NewCheckInService(
	checkIns ports.CheckInRepository,
	invites ports.InviteRepository,
	notifications ports.NotificationRepository,
	now ports.Clock,
	log zerolog.Logger,
) *CheckInService {
	if now == nil {
		now = time.Now
	}
	return &CheckInService{
		checkIns:      checkIns,
		invites:       invites,
		notifications: notifications,
		now:           now,
		log:           log,
	}
}

// Record appends one gate event. Check-ins require a usable invite; the
// invite's usage count is bumped and single-use invites retire after their
// first use. The invite creator is notified either way.
func (s *CheckInService) Record(ctx context.Context, in ports.RecordCheckInInput) (*domain.CheckInRecord, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	inv, err := s.invites.FindByID(ctx, in.InviteID)
	if err != nil {
		return nil, fmt.Errorf("record gate event: %w", err)
	}

	now := s.now().UTC()
	if in.Type == domain.CheckIn {
		if !inv.Usable(now) {
			return nil, fmt.Errorf("record gate event: %w (status %s)", domain.ErrInviteNotUsable, inv.EffectiveStatus(now))
		}
		inv.UsageCount++
		if !inv.MultiUse {
			inv.Status = domain.InviteUsed
		}
		if err := s.invites.Update(ctx, inv); err != nil {
			return nil, fmt.Errorf("record gate event: update invite: %w", err)
		}
	}

	rec := &domain.CheckInRecord{
		UserID:        in.UserID,
		InviteID:      in.InviteID,
		Timestamp:     now,
		Type:          in.Type,
		CorrelationID: uuid.NewString(),
	}
	stored, err := s.checkIns.Append(ctx, rec)
	if err != nil {
		s.log.Error().Err(err).Int("user_id", in.UserID).Msg("failed to append gate record")
		return nil, err
	}

	// Notify the invite creator. Non-fatal: the gate record stands even if
	// the notification write fails.
	n := &domain.Notification{
		UserID:        inv.CreatedBy,
		RelatedUserID: in.UserID,
		Type:          domain.NotificationType(in.Type),
		Timestamp:     now,
	}
	if _, err := s.notifications.Create(ctx, n); err != nil {
		s.log.Warn().Err(err).Int("user_id", inv.CreatedBy).Msg("failed to notify invite creator")
	}

	metrics.GateEventsTotal.WithLabelValues(string(in.Type)).Inc()
	s.log.Info().Int("user_id", in.UserID).Int("invite_id", in.InviteID).
		Str("type", string(in.Type)).Str("correlation_id", stored.CorrelationID).
		Msg("gate event recorded")
	return stored, nil
}

func (s *CheckInService) ListByUser(ctx context.Context, userID int) ([]*domain.CheckInRecord, error) {
	return s.checkIns.ListByUser(ctx, userID)
}

func (s *CheckInService) ListByInvite(ctx context.Context, inviteID int) ([]*domain.CheckInRecord, error) {
	return s.checkIns.ListByInvite(ctx, inviteID)
}

func (s *CheckInService) ListAll(ctx context.Context) ([]*domain.CheckInRecord, error) {
	return s.checkIns.ListAll(ctx)
}

// LatestForUser returns the most recent gate record for a user, nil when the
// user has no history.
func (s *CheckInService) LatestForUser(ctx context.Context, userID int) (*domain.CheckInRecord, error) {
	recs, err := s.checkIns.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var latest *domain.CheckInRecord
	for _, r := range recs {
		if latest == nil || r.Timestamp.After(latest.Timestamp) {
			latest = r
		}
	}
	return latest, nil
}
