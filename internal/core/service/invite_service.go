package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/blueward/access-system/internal/core/domain"
	"github.com/blueward/access-system/internal/core/ports"
	"github.com/blueward/access-system/internal/metrics"
)

// InviteService implements the resident/guest invite lifecycle. Expiry is
// evaluated lazily on read; stored records are never rewritten by the clock.
type InviteService struct {
	repo  ports.InviteRepository
	users ports.UserRepository
	now   ports.Clock
	log   zerolog.Logger
}

func NewInviteService(repo ports.InviteRepository, users ports.UserRepository, now ports.Clock, log zerolog.Logger) *InviteService {
	if now == nil {
		now = time.Now
	}
	return &InviteService{repo: repo, users: users, now: now, log: log}
}

func (s *InviteService) Create(ctx context.Context, in ports.CreateInviteInput) (*domain.Invite, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	creator, err := s.users.FindByID(ctx, in.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("create invite: creator: %w", err)
	}
	if creator.Role != domain.RoleResident && creator.Role != domain.RoleGuest {
		return nil, domain.ErrForbidden
	}
	guest, err := s.users.FindByID(ctx, in.GuestID)
	if err != nil {
		return nil, fmt.Errorf("create invite: guest: %w", err)
	}

	now := s.now().UTC()
	inv := &domain.Invite{
		CreatedBy: creator.ID,
		GuestID:   guest.ID,
		Code:      inviteCode(creator.FullName, guest.FullName),
		ValidDays: in.ValidDays,
		MultiUse:  in.MultiUse,
		Status:    domain.InviteActive,
		CreatedAt: now,
		ExpiresAt: now.AddDate(0, 0, in.ValidDays),
	}

	created, err := s.repo.Create(ctx, inv)
	if err != nil {
		s.log.Error().Err(err).Int("created_by", in.CreatedBy).Msg("failed to create invite")
		return nil, err
	}

	// Track the new invite on the creator; a failed update leaves the invite
	// valid but unlisted on the profile, so only log it.
	creator.Invites = append(creator.Invites, created.ID)
	if err := s.users.Update(ctx, creator); err != nil {
		s.log.Warn().Err(err).Int("user_id", creator.ID).Msg("failed to attach invite to creator")
	}

	metrics.InvitesCreatedTotal.WithLabelValues("standard").Inc()
	s.log.Info().Int("invite_id", created.ID).Str("code", created.Code).
		Int("guest_id", guest.ID).Msg("invite created")
	return created, nil
}

func (s *InviteService) FindByID(ctx context.Context, id int) (*ports.InviteView, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(inv), nil
}

func (s *InviteService) FindByCode(ctx context.Context, code string) (*ports.InviteView, error) {
	inv, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.view(inv), nil
}

func (s *InviteService) ListCreatedBy(ctx context.Context, creatorID int) ([]*ports.InviteView, error) {
	invs, err := s.repo.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	return s.views(invs), nil
}

func (s *InviteService) ListForGuest(ctx context.Context, guestID int) ([]*ports.InviteView, error) {
	invs, err := s.repo.ListByGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}
	return s.views(invs), nil
}

func (s *InviteService) ListAll(ctx context.Context) ([]*ports.InviteView, error) {
	invs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(invs), nil
}

// Cancel moves an active invite to canceled.
func (s *InviteService) Cancel(ctx context.Context, id int) error {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !inv.Status.CanTransitionTo(domain.InviteCanceled) {
		return fmt.Errorf("cancel invite: %w (from %s)", domain.ErrInvalidTransition, inv.Status)
	}
	inv.Status = domain.InviteCanceled
	if err := s.repo.Update(ctx, inv); err != nil {
		return fmt.Errorf("cancel invite: %w", err)
	}
	s.log.Info().Int("invite_id", id).Msg("invite canceled")
	return nil
}

// Search matches invites for the security desk by code, guest name, or
// creator residence. Empty query fields are ignored.
func (s *InviteService) Search(ctx context.Context, q ports.InviteSearchQuery) ([]*ports.InviteView, error) {
	invs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*ports.InviteView, 0)
	for _, inv := range invs {
		if q.Code != "" && !containsFold(inv.Code, q.Code) {
			continue
		}
		if q.GuestName != "" {
			guest, err := s.users.FindByID(ctx, inv.GuestID)
			if err != nil || !containsFold(guest.FullName, q.GuestName) {
				continue
			}
		}
		if q.Residence != "" {
			creator, err := s.users.FindByID(ctx, inv.CreatedBy)
			if err != nil || !containsFold(creator.Residence, q.Residence) {
				continue
			}
		}
		matched = append(matched, s.view(inv))
	}
	return matched, nil
}

func (s *InviteService) view(inv *domain.Invite) *ports.InviteView {
	return &ports.InviteView{Invite: *inv, Effective: inv.EffectiveStatus(s.now())}
}

func (s *InviteService) views(invs []*domain.Invite) []*ports.InviteView {
	out := make([]*ports.InviteView, 0, len(invs))
	for _, inv := range invs {
		out = append(out, s.view(inv))
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
