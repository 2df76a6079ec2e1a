package domain

import (
	"errors"
	"time"
)

// InviteStatus represents the lifecycle state of an invite.
type InviteStatus string

const (
	InviteActive   InviteStatus = "active"
	InviteExpired  InviteStatus = "expired"
	InviteCanceled InviteStatus = "canceled"
	InviteUsed     InviteStatus = "used"
)

// validInviteTransitions defines the allowed state machine transitions.
// Terminal states (expired, canceled, used) have no outgoing edges.
var validInviteTransitions = map[InviteStatus][]InviteStatus{
	InviteActive: {InviteExpired, InviteCanceled, InviteUsed},
}

var ErrInviteNotFound = errors.New("invite not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrInviteNotUsable = errors.New("invite is not usable")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s InviteStatus) CanTransitionTo(next InviteStatus) bool {
	for _, allowed := range validInviteTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Invite is an access code issued by a resident or guest for a visitor.
type Invite struct {
	ID         int          `json:"id"`
	CreatedBy  int          `json:"created_by"`
	GuestID    int          `json:"guest_id"`
	Code       string       `json:"code"`
	ValidDays  int          `json:"valid_days"`
	MultiUse   bool         `json:"multi_use"`
	Status     InviteStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	ExpiresAt  time.Time    `json:"expires_at"`
	UsageCount int          `json:"usage_count"`
}

// EffectiveStatus resolves expiry lazily: a stored-active invite whose
// expiry has passed is presented as expired without rewriting the record.
func (i *Invite) EffectiveStatus(now time.Time) InviteStatus {
	if i.Status == InviteActive && !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt) {
		return InviteExpired
	}
	return i.Status
}

// Usable reports whether the invite admits a check-in at the given time.
func (i *Invite) Usable(now time.Time) bool {
	if i.EffectiveStatus(now) != InviteActive {
		return false
	}
	if !i.MultiUse && i.UsageCount > 0 {
		return false
	}
	return true
}
