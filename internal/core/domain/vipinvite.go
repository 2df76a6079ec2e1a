package domain

import (
	"errors"
	"time"
)

// VIPStatus represents the lifecycle state of a VIP invite.
type VIPStatus string

const (
	VIPActive   VIPStatus = "active"
	VIPDisabled VIPStatus = "disabled"
)

var ErrVIPInviteNotFound = errors.New("vip invite not found")
var ErrConfirmationRequired = errors.New("delete confirmation token missing or invalid")

// VIPInvite is an admin-issued, typically long-lived or indefinite invite.
// Indefinite invites carry a zero ExpiresAt.
type VIPInvite struct {
	ID           int       `json:"id"`
	Code         string    `json:"code"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	CreatedBy    int       `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	Status       VIPStatus `json:"status"`
	IsIndefinite bool      `json:"is_indefinite"`
	ValidDays    int       `json:"valid_days,omitempty"`
	ExpiresAt    time.Time `json:"expires_at,omitzero"`
}
