package domain

import (
	"errors"
	"time"
)

// Role is the sole authorization axis in the system.
type Role string

const (
	RoleResident Role = "resident"
	RoleGuest    Role = "guest"
	RoleSecurity Role = "security"
	RoleAdmin    Role = "admin"
)

// Roles lists every valid role in a stable order.
var Roles = []Role{RoleResident, RoleGuest, RoleSecurity, RoleAdmin}

// Valid reports whether r is a member of the role set.
func (r Role) Valid() bool {
	switch r {
	case RoleResident, RoleGuest, RoleSecurity, RoleAdmin:
		return true
	}
	return false
}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrForbidden = errors.New("access forbidden")

// User models a member of the community directory.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	Role      Role   `json:"role"`
	Residence string `json:"residence,omitempty"`
	Friends   []int  `json:"friends,omitempty"`
	Invites   []int  `json:"invites,omitempty"`

	// Guard accounts created by an admin carry contact and assignment details.
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	AssignedArea string `json:"assigned_area,omitempty"`

	// PasswordHash is stored for admin-created guard accounts. The demo login
	// flow accepts any password and never compares against it.
	PasswordHash string `json:"-"`

	Disabled  bool      `json:"disabled,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Clone returns a deep copy. Friends and Invites are copied so mutating a
// returned user can never write through into stored state.
func (u *User) Clone() *User {
	clone := *u
	clone.Friends = append([]int(nil), u.Friends...)
	clone.Invites = append([]int(nil), u.Invites...)
	return &clone
}

// IsFriend reports whether the given user id appears in the friend list.
func (u *User) IsFriend(id int) bool {
	for _, f := range u.Friends {
		if f == id {
			return true
		}
	}
	return false
}
