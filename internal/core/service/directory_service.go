package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/blueward/access-system/internal/core/domain"
	"github.com/blueward/access-system/internal/core/ports"
)

// DirectoryService implements lookups and admin mutations over the community
// directory.
type DirectoryService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewDirectoryService(repo ports.UserRepository, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{repo: repo, log: log}
}

func (s *DirectoryService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *DirectoryService) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DirectoryService) ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	return s.repo.ListByRole(ctx, role)
}

func (s *DirectoryService) ListAll(ctx context.Context) ([]*domain.User, error) {
	return s.repo.ListAll(ctx)
}

// Friends resolves the friend ids of a user. Ids that no longer resolve are
// skipped silently so a stale friend list renders as an empty state, not an
// error.
func (s *DirectoryService) Friends(ctx context.Context, userID int) ([]*domain.User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	friends := make([]*domain.User, 0, len(u.Friends))
	for _, fid := range u.Friends {
		f, err := s.repo.FindByID(ctx, fid)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		friends = append(friends, f)
	}
	return friends, nil
}

// CreateGuardAccount creates a security-role account. Admin-only. The
// password is hashed at rest; login in this demo never verifies it.
func (s *DirectoryService) CreateGuardAccount(ctx context.Context, actor domain.Role, in ports.CreateGuardAccountInput) (*domain.User, error) {
	if actor != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("create guard account: %w", err)
	}

	guard := &domain.User{
		Username:     in.Username,
		FullName:     in.FullName,
		Role:         domain.RoleSecurity,
		Email:        in.Email,
		Phone:        in.Phone,
		AssignedArea: in.AssignedArea,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, guard)
	if err != nil {
		s.log.Error().Err(err).Str("username", in.Username).Msg("failed to create guard account")
		return nil, err
	}

	s.log.Info().Int("user_id", created.ID).Str("username", created.Username).
		Str("area", created.AssignedArea).Msg("guard account created")
	return created, nil
}

// SetEnabled toggles an account. Admin-only.
func (s *DirectoryService) SetEnabled(ctx context.Context, actor domain.Role, userID int, enabled bool) error {
	if actor != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	u.Disabled = !enabled
	if err := s.repo.Update(ctx, u); err != nil {
		return fmt.Errorf("set enabled: %w", err)
	}
	s.log.Info().Int("user_id", userID).Bool("enabled", enabled).Msg("account state changed")
	return nil
}

// CreateLinkCode issues a residence link code for sharing with a guest.
// Redemption never validates the code against anything; that permissiveness
// is part of the demo contract.
func (s *DirectoryService) CreateLinkCode(ctx context.Context, actor domain.Role, residence string) (string, error) {
	if actor != domain.RoleAdmin {
		return "", domain.ErrForbidden
	}
	if residence == "" {
		return "", fmt.Errorf("residence is required")
	}
	code := linkCode(residence)
	s.log.Info().Str("residence", residence).Str("code", code).Msg("residence link code issued")
	return code, nil
}
