package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/blueward/access-system/internal/core/domain"
	"github.com/blueward/access-system/internal/core/ports"
	"github.com/blueward/access-system/internal/infrastructure/memstore"
)

var discardLogger = zerolog.Nop()

func guardInput() ports.CreateGuardAccountInput {
	return ports.CreateGuardAccountInput{
		Username:        "guard_night",
		FullName:        "Nora Night",
		Password:        "s3cret",
		ConfirmPassword: "s3cret",
		Email:           "nora@example.com",
		AssignedArea:    "North Gate",
	}
}

// ---------------------------------------------------------------------------
// Lookup tests
// ---------------------------------------------------------------------------

func TestDirectory_FindByUsername_EveryFixtureUser(t *testing.T) {
	fx := memstore.Seed()
	svc := NewDirectoryService(fx.Users, discardLogger)

	all, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 8 {
		t.Fatalf("expected 8 fixture users, got %d", len(all))
	}
	for _, u := range all {
		byName, err := svc.FindByUsername(context.Background(), u.Username)
		if err != nil {
			t.Fatalf("%s: %v", u.Username, err)
		}
		if byName.ID != u.ID {
			t.Errorf("%s: expected id %d, got %d", u.Username, u.ID, byName.ID)
		}
		byID, err := svc.FindByID(context.Background(), u.ID)
		if err != nil {
			t.Fatalf("id %d: %v", u.ID, err)
		}
		if byID.Username != u.Username {
			t.Errorf("id %d: expected username %q, got %q", u.ID, u.Username, byID.Username)
		}
	}
}

func TestDirectory_FindByUsername_Miss(t *testing.T) {
	fx := memstore.Seed()
	svc := NewDirectoryService(fx.Users, discardLogger)

	_, err := svc.FindByUsername(context.Background(), "nobody")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDirectory_ListByRole(t *testing.T) {
	fx := memstore.Seed()
	svc := NewDirectoryService(fx.Users, discardLogger)

	cases := []struct {
		role domain.Role
		want int
	}{
		{domain.RoleResident, 2},
		{domain.RoleGuest, 4},
		{domain.RoleSecurity, 1},
		{domain.RoleAdmin, 1},
		{domain.Role("butler"), 0}, // unknown role: empty, not an error
	}
	for _, tc := range cases {
		got, err := svc.ListByRole(context.Background(), tc.role)
		if err != nil {
			t.Fatalf("%s: %v", tc.role, err)
		}
		if len(got) != tc.want {
			t.Errorf("%s: expected %d users, got %d", tc.role, tc.want, len(got))
		}
	}
}

func TestDirectory_Friends_SkipsDanglingIDs(t *testing.T) {
	users := memstore.NewUserStore(
		&domain.User{ID: 1, Username: "a", FullName: "A", Role: domain.RoleResident, Friends: []int{2, 99}},
		&domain.User{ID: 2, Username: "b", FullName: "B", Role: domain.RoleGuest},
	)
	svc := NewDirectoryService(users, discardLogger)

	friends, err := svc.Friends(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(friends) != 1 || friends[0].ID != 2 {
		t.Errorf("expected only user 2, got %v", friends)
	}
}

// ---------------------------------------------------------------------------
// Guard account tests
// ---------------------------------------------------------------------------

func TestDirectory_CreateGuardAccount_Success(t *testing.T) {
	fx := memstore.Seed()
	svc := NewDirectoryService(fx.Users, discardLogger)

	guard, err := svc.CreateGuardAccount(context.Background(), domain.RoleAdmin, guardInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if guard.ID == 0 {
		t.Error("expected an assigned id")
	}
	if guard.Role != domain.RoleSecurity {
		t.Errorf("expected security role, got %s", guard.Role)
	}
	// The password is hashed at rest even though login never checks it.
	if guard.PasswordHash == "" || guard.PasswordHash == "s3cret" {
		t.Error("password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(guard.PasswordHash), []byte("s3cret")) != nil {
		t.Error("stored hash must match the supplied password")
	}
}

func TestDirectory_CreateGuardAccount_NonAdminForbidden(t *testing.T) {
	fx := memstore.Seed()
	svc := NewDirectoryService(fx.Users, discardLogger)

	for _, role := range []domain.Role{domain.RoleResident, domain.RoleGuest, domain.RoleSecurity} {
		_, err := svc.CreateGuardAccount(context.Background(), role, guardInput())
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("%s: expected ErrForbidden, got %v", role, err)
		}
	}
}

func TestDirectory_CreateGuardAccount_ValidationMessages(t *testing.T) {
	fx := memstore.Seed()
	svc := NewDirectoryService(fx.Users, discardLogger)

	in := guardInput()
	in.ConfirmPassword = "different"
	_, err := svc.CreateGuardAccount(context.Background(), domain.RoleAdmin, in)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "confirmpassword must match password") {
		t.Errorf("expected field-level message, got %q", err)
	}

	in = guardInput()
	in.Username = ""
	in.AssignedArea = ""
	_, err = svc.CreateGuardAccount(context.Background(), domain.RoleAdmin, in)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "username is required") || !strings.Contains(err.Error(), "assignedarea is required") {
		t.Errorf("expected both field messages, got %q", err)
	}
}

func TestDirectory_CreateGuardAccount_DuplicateUsername(t *testing.T) {
	fx := memstore.Seed()
	svc := NewDirectoryService(fx.Users, discardLogger)

	in := guardInput()
	in.Username = "guard_main"
	_, err := svc.CreateGuardAccount(context.Background(), domain.RoleAdmin, in)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestDirectory_SetEnabled(t *testing.T) {
	fx := memstore.Seed()
	svc := NewDirectoryService(fx.Users, discardLogger)

	if err := svc.SetEnabled(context.Background(), domain.RoleAdmin, 1, false); err != nil {
		t.Fatal(err)
	}
	u, err := svc.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !u.Disabled {
		t.Error("expected account to be disabled")
	}

	if err := svc.SetEnabled(context.Background(), domain.RoleAdmin, 1, true); err != nil {
		t.Fatal(err)
	}
	u, _ = svc.FindByID(context.Background(), 1)
	if u.Disabled {
		t.Error("expected account to be enabled again")
	}

	if err := svc.SetEnabled(context.Background(), domain.RoleSecurity, 1, false); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden for non-admin, got %v", err)
	}
}

func TestDirectory_CreateLinkCode(t *testing.T) {
	fx := memstore.Seed()
	svc := NewDirectoryService(fx.Users, discardLogger)

	code, err := svc.CreateLinkCode(context.Background(), domain.RoleAdmin, "A101")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(code, "LNK-A101-") {
		t.Errorf("unexpected link code shape: %s", code)
	}

	if _, err := svc.CreateLinkCode(context.Background(), domain.RoleResident, "A101"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden for non-admin, got %v", err)
	}
}
