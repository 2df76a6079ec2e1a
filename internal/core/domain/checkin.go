package domain

import "time"

// CheckInType distinguishes gate entries from exits.
type CheckInType string

const (
	CheckIn  CheckInType = "check-in"
	CheckOut CheckInType = "check-out"
)

// Valid reports whether t is a known check-in type.
func (t CheckInType) Valid() bool {
	return t == CheckIn || t == CheckOut
}

// CheckInRecord is one entry in the append-only gate log.
type CheckInRecord struct {
	ID        int         `json:"id"`
	UserID    int         `json:"user_id"`
	InviteID  int         `json:"invite_id"`
	Timestamp time.Time   `json:"timestamp"`
	Type      CheckInType `json:"type"`
	// CorrelationID ties the record to the notification it produced.
	CorrelationID string `json:"correlation_id,omitempty"`
}
