package ports

import (
	"context"

	"github.com/blueward/access-system/internal/core/domain"
)

// CreateVIPInviteInput carries the admin "VIP invite" form. Indefinite
// invites must not set ValidDays; bounded ones must.
type CreateVIPInviteInput struct {
	CreatedBy    int    `validate:"required,gt=0"`
	FullName     string `validate:"required"`
	Email        string `validate:"required,email"`
	Phone        string `validate:"required"`
	IsIndefinite bool
	ValidDays    int `validate:"required_if=IsIndefinite false,excluded_if=IsIndefinite true,omitempty,gte=1,lte=365"`
}

// VIPInviteService defines the admin-only VIP invite lifecycle. Every
// operation checks the actor role and returns domain.ErrForbidden for
// non-admin callers.
type VIPInviteService interface {
	Create(ctx context.Context, actor domain.Role, in CreateVIPInviteInput) (*domain.VIPInvite, error)
	FindByID(ctx context.Context, actor domain.Role, id int) (*domain.VIPInvite, error)
	FindByCode(ctx context.Context, actor domain.Role, code string) (*domain.VIPInvite, error)
	ListAll(ctx context.Context, actor domain.Role) ([]*domain.VIPInvite, error)
	Enable(ctx context.Context, actor domain.Role, id int) error
	Disable(ctx context.Context, actor domain.Role, id int) error
	// ConfirmDelete issues a single-use token for the given invite. Delete
	// refuses to run without it, making the confirmation step part of the
	// call contract instead of UI discipline.
	ConfirmDelete(ctx context.Context, actor domain.Role, id int) (string, error)
	Delete(ctx context.Context, actor domain.Role, id int, confirmToken string) error
}
