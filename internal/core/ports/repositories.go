package ports

import (
	"context"

	"github.com/blueward/access-system/internal/core/domain"
)

// UserRepository defines persistence operations for the community directory.
type UserRepository interface {
	// FindByID returns domain.ErrUserNotFound on miss.
	FindByID(ctx context.Context, id int) (*domain.User, error)
	// FindByUsername scans every role collection; domain.ErrUserNotFound on miss.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// ListByRole returns an empty slice for an unknown role, never an error.
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	ListAll(ctx context.Context) ([]*domain.User, error)
	// Create assigns the next id and returns the stored user.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

// InviteRepository defines persistence operations for invites.
type InviteRepository interface {
	Create(ctx context.Context, inv *domain.Invite) (*domain.Invite, error)
	FindByID(ctx context.Context, id int) (*domain.Invite, error)
	FindByCode(ctx context.Context, code string) (*domain.Invite, error)
	// List results preserve insertion order.
	ListByCreator(ctx context.Context, creatorID int) ([]*domain.Invite, error)
	ListByGuest(ctx context.Context, guestID int) ([]*domain.Invite, error)
	ListAll(ctx context.Context) ([]*domain.Invite, error)
	Update(ctx context.Context, inv *domain.Invite) error
}

// VIPInviteRepository defines persistence operations for VIP invites.
type VIPInviteRepository interface {
	Create(ctx context.Context, inv *domain.VIPInvite) (*domain.VIPInvite, error)
	FindByID(ctx context.Context, id int) (*domain.VIPInvite, error)
	FindByCode(ctx context.Context, code string) (*domain.VIPInvite, error)
	ListAll(ctx context.Context) ([]*domain.VIPInvite, error)
	Update(ctx context.Context, inv *domain.VIPInvite) error
	// Delete removes the record entirely; not a soft tombstone.
	Delete(ctx context.Context, id int) error
}

// CheckInRepository is the append-only gate log.
type CheckInRepository interface {
	Append(ctx context.Context, rec *domain.CheckInRecord) (*domain.CheckInRecord, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.CheckInRecord, error)
	ListByInvite(ctx context.Context, inviteID int) ([]*domain.CheckInRecord, error)
	ListAll(ctx context.Context) ([]*domain.CheckInRecord, error)
}

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	FindByID(ctx context.Context, id int) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.Notification, error)
	Update(ctx context.Context, n *domain.Notification) error
}
