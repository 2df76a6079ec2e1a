package ports

import (
	"context"

	"github.com/blueward/access-system/internal/core/domain"
)

// RecordCheckInInput carries one gate event.
type RecordCheckInInput struct {
	UserID   int                `validate:"required,gt=0"`
	InviteID int                `validate:"required,gt=0"`
	Type     domain.CheckInType `validate:"required,oneof=check-in check-out"`
}

// CheckInService processes gate check-ins and check-outs against the log.
type CheckInService interface {
	// Record appends a gate event. A check-in requires a usable invite,
	// bumps its usage count, retires single-use invites, and notifies the
	// invite's creator.
	Record(ctx context.Context, in RecordCheckInInput) (*domain.CheckInRecord, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.CheckInRecord, error)
	ListByInvite(ctx context.Context, inviteID int) ([]*domain.CheckInRecord, error)
	ListAll(ctx context.Context) ([]*domain.CheckInRecord, error)
	// LatestForUser returns nil when the user has no gate history.
	LatestForUser(ctx context.Context, userID int) (*domain.CheckInRecord, error)
}

// NotificationService reads and acknowledges user notifications.
type NotificationService interface {
	ListForUser(ctx context.Context, userID int) ([]*domain.Notification, error)
	ListUnreadForUser(ctx context.Context, userID int) ([]*domain.Notification, error)
	// MarkRead is idempotent: acknowledging an already-read notification
	// succeeds. It returns false only when the id does not exist.
	MarkRead(ctx context.Context, id int) bool
}
