package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blueward/access-system/internal/core/domain"
	"github.com/blueward/access-system/internal/core/ports"
	"github.com/blueward/access-system/internal/infrastructure/memstore"
)

// fixedClock pins the clock inside the fixture's validity window so that the
// seeded 2023 invites still read as active.
func fixedClock() time.Time {
	return time.Date(2023, 4, 2, 12, 0, 0, 0, time.UTC)
}

func newInviteService(fx *memstore.Fixture, now ports.Clock) *InviteService {
	return NewInviteService(fx.Invites, fx.Users, now, discardLogger)
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestInvite_Create_VisibleToCreatorGuestAndAdmin(t *testing.T) {
	fx := memstore.Seed()
	svc := newInviteService(fx, fixedClock)

	// Resident john (id 1) invites guest bob (id 3).
	created, err := svc.Create(context.Background(), ports.CreateInviteInput{
		CreatedBy: 1, GuestID: 3, ValidDays: 3, MultiUse: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 4 {
		t.Errorf("expected next id 4, got %d", created.ID)
	}
	if len(created.Code) != 7 || created.Code[:2] != "JB" {
		t.Errorf("expected code like JBddddd, got %q", created.Code)
	}
	if !created.ExpiresAt.Equal(fixedClock().AddDate(0, 0, 3)) {
		t.Errorf("unexpected expiry %v", created.ExpiresAt)
	}

	containsID := func(views []*ports.InviteView) bool {
		for _, v := range views {
			if v.ID == created.ID {
				return true
			}
		}
		return false
	}

	byCreator, err := svc.ListCreatedBy(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !containsID(byCreator) {
		t.Error("creator listing must include the new invite")
	}

	byGuest, err := svc.ListForGuest(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if !containsID(byGuest) {
		t.Error("guest listing must include the new invite")
	}

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !containsID(all) {
		t.Error("admin listing must include the new invite")
	}

	// The invite id is also tracked on the creator's profile.
	john, err := fx.Users.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, id := range john.Invites {
		if id == created.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("creator invite ids %v missing %d", john.Invites, created.ID)
	}
}

func TestInvite_Create_RoleAndValidation(t *testing.T) {
	fx := memstore.Seed()
	svc := newInviteService(fx, fixedClock)

	// Guards and admins do not create standard invites.
	for _, creator := range []int{7, 8} {
		_, err := svc.Create(context.Background(), ports.CreateInviteInput{
			CreatedBy: creator, GuestID: 3, ValidDays: 1,
		})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("creator %d: expected ErrForbidden, got %v", creator, err)
		}
	}

	// Unknown ids surface ErrUserNotFound.
	_, err := svc.Create(context.Background(), ports.CreateInviteInput{CreatedBy: 99, GuestID: 3, ValidDays: 1})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for creator, got %v", err)
	}
	_, err = svc.Create(context.Background(), ports.CreateInviteInput{CreatedBy: 1, GuestID: 99, ValidDays: 1})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for guest, got %v", err)
	}

	// ValidDays outside 1..365 fails validation before any lookup.
	for _, days := range []int{0, 366} {
		if _, err := svc.Create(context.Background(), ports.CreateInviteInput{CreatedBy: 1, GuestID: 3, ValidDays: days}); err == nil {
			t.Errorf("validDays=%d: expected validation error", days)
		}
	}
}

// ---------------------------------------------------------------------------
// Cancel
// ---------------------------------------------------------------------------

func TestInvite_Cancel(t *testing.T) {
	fx := memstore.Seed()
	svc := newInviteService(fx, fixedClock)

	if err := svc.Cancel(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	view, err := svc.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if view.Status != domain.InviteCanceled || view.Effective != domain.InviteCanceled {
		t.Errorf("expected canceled/canceled, got %s/%s", view.Status, view.Effective)
	}

	// Canceling again is an invalid transition.
	err = svc.Cancel(context.Background(), 1)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}

	if err := svc.Cancel(context.Background(), 99); !errors.Is(err, domain.ErrInviteNotFound) {
		t.Errorf("expected ErrInviteNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Lazy expiry on read
// ---------------------------------------------------------------------------

func TestInvite_LazyExpiryOnRead(t *testing.T) {
	fx := memstore.Seed()
	// A week past the fixture window: invites 1 and 2 have lapsed, invite 3
	// expires at 2023-04-08T09:00Z and has lapsed too.
	late := func() time.Time { return time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC) }
	svc := newInviteService(fx, late)

	view, err := svc.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if view.Effective != domain.InviteExpired {
		t.Errorf("expected effective expired, got %s", view.Effective)
	}
	if view.Status != domain.InviteActive {
		t.Errorf("presented record must keep stored status active, got %s", view.Status)
	}

	// The repository record is never rewritten by the clock.
	stored, err := fx.Invites.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != domain.InviteActive {
		t.Errorf("stored status must stay active, got %s", stored.Status)
	}
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

func TestInvite_Search(t *testing.T) {
	fx := memstore.Seed()
	svc := newInviteService(fx, fixedClock)

	cases := []struct {
		name string
		q    ports.InviteSearchQuery
		want []int
	}{
		{"by code exact", ports.InviteSearchQuery{Code: "JB12345"}, []int{1}},
		{"by code lowercase", ports.InviteSearchQuery{Code: "jb123"}, []int{1}},
		{"by guest name partial", ports.InviteSearchQuery{GuestName: "wilson"}, []int{2}},
		{"by residence", ports.InviteSearchQuery{Residence: "a101"}, []int{1, 2}},
		{"combined narrows", ports.InviteSearchQuery{Residence: "A101", GuestName: "Bob"}, []int{1}},
		{"no match", ports.InviteSearchQuery{Code: "ZZZ"}, nil},
		{"empty query matches all", ports.InviteSearchQuery{}, []int{1, 2, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Search(context.Background(), tc.q)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d results, got %d", len(tc.want), len(got))
			}
			for i, v := range got {
				if v.ID != tc.want[i] {
					t.Errorf("result %d: expected invite %d, got %d", i, tc.want[i], v.ID)
				}
			}
		})
	}
}
