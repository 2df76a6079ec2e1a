package ports

import (
	"context"

	"github.com/blueward/access-system/internal/core/domain"
)

// CreateGuardAccountInput carries the admin "create guard account" form.
// Password and ConfirmPassword must match; the hash is stored but the demo
// login flow never verifies it.
type CreateGuardAccountInput struct {
	Username        string `validate:"required,min=3,max=32"`
	FullName        string `validate:"required"`
	Password        string `validate:"required,min=4"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Email           string `validate:"omitempty,email"`
	Phone           string `validate:"omitempty"`
	AssignedArea    string `validate:"required"`
}

// DirectoryService exposes lookups and admin mutations over the community
// directory.
type DirectoryService interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	// ListByRole returns an empty slice for an unknown role rather than an error.
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	ListAll(ctx context.Context) ([]*domain.User, error)
	// Friends resolves a user's friend ids to users; dangling ids are skipped.
	Friends(ctx context.Context, userID int) ([]*domain.User, error)

	// CreateGuardAccount is admin-only and creates a security-role account.
	CreateGuardAccount(ctx context.Context, actor domain.Role, in CreateGuardAccountInput) (*domain.User, error)
	// SetEnabled toggles an account on or off (Resident Disabler). Admin-only.
	SetEnabled(ctx context.Context, actor domain.Role, userID int, enabled bool) error
	// CreateLinkCode issues a residence link code (Resident Linker). Admin-only.
	// Codes are generated for sharing; redemption does not validate them.
	CreateLinkCode(ctx context.Context, actor domain.Role, residence string) (string, error)
}
