package domain

import (
	"errors"
	"time"
)

// NotificationType classifies what happened to the related user.
type NotificationType string

const (
	NotifyCheckIn      NotificationType = "check-in"
	NotifyCheckOut     NotificationType = "check-out"
	NotifyEntryRequest NotificationType = "entry-request"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification informs a user about activity involving another user.
// Records are never deleted; Read flips true once and stays.
type Notification struct {
	ID            int              `json:"id"`
	UserID        int              `json:"user_id"`
	RelatedUserID int              `json:"related_user_id"`
	Type          NotificationType `json:"type"`
	Timestamp     time.Time        `json:"timestamp"`
	Read          bool             `json:"read"`
}
