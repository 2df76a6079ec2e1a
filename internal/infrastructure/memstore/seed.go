package memstore

import (
	"time"

	"github.com/blueward/access-system/internal/core/domain"
)

// Fixture bundles the seeded repositories for the demo dataset.
type Fixture struct {
	Users         *UserStore
	Invites       *InviteStore
	VIPInvites    *VIPInviteStore
	CheckIns      *CheckInStore
	Notifications *NotificationStore
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("memstore: bad fixture timestamp: " + s)
	}
	return t
}

// Seed returns repositories pre-loaded with the demo community: two
// residents, four guests, one guard, one admin, and their invites, gate log
// and notifications.
func Seed() *Fixture {
	return &Fixture{
		Users: NewUserStore(
			&domain.User{ID: 1, Username: "john_resident", FullName: "John Smith", Role: domain.RoleResident,
				Residence: "A101", Friends: []int{3, 4, 5}, Invites: []int{1, 2}},
			&domain.User{ID: 2, Username: "maria_resident", FullName: "Maria Rodriguez", Role: domain.RoleResident,
				Residence: "B205", Friends: []int{3, 6}, Invites: []int{3}},
			&domain.User{ID: 3, Username: "bob_guest", FullName: "Bob Johnson", Role: domain.RoleGuest, Friends: []int{1, 2}},
			&domain.User{ID: 4, Username: "sarah_guest", FullName: "Sarah Wilson", Role: domain.RoleGuest, Friends: []int{1}},
			&domain.User{ID: 5, Username: "dave_guest", FullName: "Dave Miller", Role: domain.RoleGuest, Friends: []int{1}},
			&domain.User{ID: 6, Username: "lisa_guest", FullName: "Lisa Anderson", Role: domain.RoleGuest, Friends: []int{2}},
			&domain.User{ID: 7, Username: "guard_main", FullName: "Michael Guard", Role: domain.RoleSecurity},
			&domain.User{ID: 8, Username: "admin_super", FullName: "Admin User", Role: domain.RoleAdmin},
		),
		Invites: NewInviteStore(
			&domain.Invite{ID: 1, CreatedBy: 1, GuestID: 3, ValidDays: 3, MultiUse: true, Code: "JB12345",
				Status: domain.InviteActive, CreatedAt: ts("2023-04-01T10:00:00Z"), ExpiresAt: ts("2023-04-04T10:00:00Z"), UsageCount: 2},
			&domain.Invite{ID: 2, CreatedBy: 1, GuestID: 4, ValidDays: 1, MultiUse: false, Code: "JS67890",
				Status: domain.InviteActive, CreatedAt: ts("2023-04-02T14:00:00Z"), ExpiresAt: ts("2023-04-03T14:00:00Z")},
			&domain.Invite{ID: 3, CreatedBy: 2, GuestID: 6, ValidDays: 7, MultiUse: true, Code: "ML24680",
				Status: domain.InviteActive, CreatedAt: ts("2023-04-01T09:00:00Z"), ExpiresAt: ts("2023-04-08T09:00:00Z"), UsageCount: 1},
		),
		VIPInvites: NewVIPInviteStore(
			&domain.VIPInvite{ID: 101, Code: "VIP1234", FullName: "James Williams", Email: "james.williams@example.com",
				Phone: "+1 555-123-4567", CreatedBy: 8, CreatedAt: ts("2023-04-01T09:00:00Z"),
				Status: domain.VIPActive, IsIndefinite: true},
			&domain.VIPInvite{ID: 102, Code: "VIP5678", FullName: "Emily Parker", Email: "emily.parker@example.com",
				Phone: "+1 555-234-5678", CreatedBy: 8, CreatedAt: ts("2023-04-02T10:30:00Z"),
				Status: domain.VIPActive, ValidDays: 30, ExpiresAt: ts("2023-05-02T10:30:00Z")},
			&domain.VIPInvite{ID: 103, Code: "VIP9012", FullName: "Michael Davidson", Email: "michael.davidson@example.com",
				Phone: "+1 555-345-6789", CreatedBy: 8, CreatedAt: ts("2023-04-05T14:15:00Z"),
				Status: domain.VIPActive, ValidDays: 60, ExpiresAt: ts("2023-06-05T14:15:00Z")},
			&domain.VIPInvite{ID: 104, Code: "VIP3456", FullName: "Sofia Martinez", Email: "sofia.martinez@example.com",
				Phone: "+1 555-456-7890", CreatedBy: 8, CreatedAt: ts("2023-03-15T11:45:00Z"),
				Status: domain.VIPDisabled, IsIndefinite: true},
		),
		CheckIns: NewCheckInStore(
			&domain.CheckInRecord{ID: 1, UserID: 3, InviteID: 1, Timestamp: ts("2023-04-01T14:30:00Z"), Type: domain.CheckIn},
			&domain.CheckInRecord{ID: 2, UserID: 3, InviteID: 1, Timestamp: ts("2023-04-01T19:45:00Z"), Type: domain.CheckOut},
			&domain.CheckInRecord{ID: 3, UserID: 3, InviteID: 1, Timestamp: ts("2023-04-02T11:15:00Z"), Type: domain.CheckIn},
			&domain.CheckInRecord{ID: 4, UserID: 6, InviteID: 3, Timestamp: ts("2023-04-02T16:20:00Z"), Type: domain.CheckIn},
			&domain.CheckInRecord{ID: 5, UserID: 6, InviteID: 3, Timestamp: ts("2023-04-02T20:05:00Z"), Type: domain.CheckOut},
		),
		Notifications: NewNotificationStore(
			&domain.Notification{ID: 1, UserID: 1, RelatedUserID: 3, Type: domain.NotifyCheckIn, Timestamp: ts("2023-04-01T14:30:00Z"), Read: true},
			&domain.Notification{ID: 2, UserID: 1, RelatedUserID: 3, Type: domain.NotifyCheckOut, Timestamp: ts("2023-04-01T19:45:00Z"), Read: true},
			&domain.Notification{ID: 3, UserID: 7, RelatedUserID: 3, Type: domain.NotifyEntryRequest, Timestamp: ts("2023-04-02T11:10:00Z"), Read: true},
			&domain.Notification{ID: 4, UserID: 2, RelatedUserID: 6, Type: domain.NotifyCheckIn, Timestamp: ts("2023-04-02T16:20:00Z")},
		),
	}
}
