package ports

import (
	"context"
	"time"

	"github.com/blueward/access-system/internal/core/domain"
)

// CreateInviteInput carries the "new invite" form.
type CreateInviteInput struct {
	CreatedBy int  `validate:"required,gt=0"`
	GuestID   int  `validate:"required,gt=0"`
	ValidDays int  `validate:"required,gte=1,lte=365"`
	MultiUse  bool
}

// InviteView is an invite with its expiry resolved at read time. The stored
// status is left untouched; only the presented status reflects lapsed expiry.
type InviteView struct {
	domain.Invite
	// Effective is the status after lazy expiry evaluation.
	Effective domain.InviteStatus
}

// InviteSearchQuery matches invites by code, guest name, or creator residence.
// Empty fields are ignored; all comparisons are case-insensitive substrings.
type InviteSearchQuery struct {
	Code      string
	GuestName string
	Residence string
}

// InviteService defines use-case operations for resident/guest invites.
type InviteService interface {
	Create(ctx context.Context, in CreateInviteInput) (*domain.Invite, error)
	FindByID(ctx context.Context, id int) (*InviteView, error)
	FindByCode(ctx context.Context, code string) (*InviteView, error)
	ListCreatedBy(ctx context.Context, creatorID int) ([]*InviteView, error)
	ListForGuest(ctx context.Context, guestID int) ([]*InviteView, error)
	ListAll(ctx context.Context) ([]*InviteView, error)
	// Cancel moves an active invite to canceled; anything else is an
	// invalid transition.
	Cancel(ctx context.Context, id int) error
	Search(ctx context.Context, q InviteSearchQuery) ([]*InviteView, error)
}

// Clock supplies the current time; injected so expiry evaluation is testable.
type Clock func() time.Time
