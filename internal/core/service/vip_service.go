package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/blueward/access-system/internal/core/domain"
	"github.com/blueward/access-system/internal/core/ports"
	"github.com/blueward/access-system/internal/metrics"
)

// VIPInviteService implements the admin-only VIP invite lifecycle. Deletion
// is destructive, so it demands a confirmation token issued by ConfirmDelete
// for the same invite id.
type VIPInviteService struct {
	repo ports.VIPInviteRepository
	now  ports.Clock
	log  zerolog.Logger

	mu      sync.Mutex
	pending map[string]int // confirmation token -> invite id
}

func NewVIPInviteService(repo ports.VIPInviteRepository, now ports.Clock, log zerolog.Logger) *VIPInviteService {
	if now == nil {
		now = time.Now
	}
	return &VIPInviteService{repo: repo, now: now, log: log, pending: make(map[string]int)}
}

func (s *VIPInviteService) Create(ctx context.Context, actor domain.Role, in ports.CreateVIPInviteInput) (*domain.VIPInvite, error) {
	if actor != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	inv := &domain.VIPInvite{
		Code:         vipCode(),
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		CreatedBy:    in.CreatedBy,
		CreatedAt:    now,
		Status:       domain.VIPActive,
		IsIndefinite: in.IsIndefinite,
	}
	if !in.IsIndefinite {
		inv.ValidDays = in.ValidDays
		inv.ExpiresAt = now.AddDate(0, 0, in.ValidDays)
	}

	created, err := s.repo.Create(ctx, inv)
	if err != nil {
		s.log.Error().Err(err).Str("full_name", in.FullName).Msg("failed to create vip invite")
		return nil, err
	}

	metrics.InvitesCreatedTotal.WithLabelValues("vip").Inc()
	s.log.Info().Int("vip_id", created.ID).Str("code", created.Code).
		Bool("indefinite", created.IsIndefinite).Msg("vip invite created")
	return created, nil
}

func (s *VIPInviteService) FindByID(ctx context.Context, actor domain.Role, id int) (*domain.VIPInvite, error) {
	if actor != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, id)
}

func (s *VIPInviteService) FindByCode(ctx context.Context, actor domain.Role, code string) (*domain.VIPInvite, error) {
	if actor != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByCode(ctx, code)
}

func (s *VIPInviteService) ListAll(ctx context.Context, actor domain.Role) ([]*domain.VIPInvite, error) {
	if actor != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListAll(ctx)
}

func (s *VIPInviteService) Enable(ctx context.Context, actor domain.Role, id int) error {
	return s.setStatus(ctx, actor, id, domain.VIPActive)
}

func (s *VIPInviteService) Disable(ctx context.Context, actor domain.Role, id int) error {
	return s.setStatus(ctx, actor, id, domain.VIPDisabled)
}

func (s *VIPInviteService) setStatus(ctx context.Context, actor domain.Role, id int, status domain.VIPStatus) error {
	if actor != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if inv.Status == status {
		return nil
	}
	inv.Status = status
	if err := s.repo.Update(ctx, inv); err != nil {
		return fmt.Errorf("vip invite %d: %w", id, err)
	}
	s.log.Info().Int("vip_id", id).Str("status", string(status)).Msg("vip invite status changed")
	return nil
}

// ConfirmDelete issues a single-use token that authorizes deleting exactly
// one invite. The invite must exist at confirmation time.
func (s *VIPInviteService) ConfirmDelete(ctx context.Context, actor domain.Role, id int) (string, error) {
	if actor != domain.RoleAdmin {
		return "", domain.ErrForbidden
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return "", err
	}
	token := uuid.NewString()
	s.mu.Lock()
	s.pending[token] = id
	s.mu.Unlock()
	s.log.Warn().Int("vip_id", id).Msg("vip invite delete pending confirmation")
	return token, nil
}

// Delete removes the invite entirely. The token must have been issued by
// ConfirmDelete for the same id and is consumed whether or not the delete
// succeeds.
func (s *VIPInviteService) Delete(ctx context.Context, actor domain.Role, id int, confirmToken string) error {
	if actor != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	s.mu.Lock()
	pendingID, ok := s.pending[confirmToken]
	delete(s.pending, confirmToken)
	s.mu.Unlock()
	if !ok || pendingID != id {
		return domain.ErrConfirmationRequired
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Warn().Int("vip_id", id).Msg("vip invite deleted")
	return nil
}
