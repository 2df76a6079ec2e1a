package domain

import "testing"

func TestResolveScreen_AllowedPassesThrough(t *testing.T) {
	cases := []struct {
		role   Role
		screen ScreenID
	}{
		{RoleResident, ScreenInvites},
		{RoleResident, ScreenCheckInOut},
		{RoleGuest, ScreenUpgradeToResident},
		{RoleSecurity, ScreenSearchInvites},
		{RoleAdmin, ScreenVIPInviteManager},
		{RoleAdmin, ScreenGuardAccountOverview},
	}
	for _, tc := range cases {
		if got := ResolveScreen(tc.role, tc.screen); got != tc.screen {
			t.Errorf("%s/%s: expected pass-through, got %s", tc.role, tc.screen, got)
		}
	}
}

func TestResolveScreen_DisallowedFallsBackToHome(t *testing.T) {
	cases := []struct {
		role   Role
		screen ScreenID
	}{
		{RoleResident, ScreenVIPInvite},
		{RoleGuest, ScreenGuardAccountOverview},
		{RoleSecurity, ScreenUpgradeToResident},
		{RoleAdmin, ScreenCheckInOut},
		{RoleResident, ScreenID("NoSuchScreen")},
	}
	for _, tc := range cases {
		if got := ResolveScreen(tc.role, tc.screen); got != ScreenHome {
			t.Errorf("%s/%s: expected fallback to home, got %s", tc.role, tc.screen, got)
		}
	}
}

func TestResolveScreen_UnknownRole(t *testing.T) {
	if got := ResolveScreen(Role("intruder"), ScreenInvites); got != ScreenHome {
		t.Errorf("unknown role must land on home, got %s", got)
	}
}

func TestProfileFor_EveryRoleHasHome(t *testing.T) {
	for _, r := range Roles {
		p := ProfileFor(r)
		if p.Home == "" {
			t.Errorf("%s: missing home screen", r)
		}
		if !p.Allows(p.Home) {
			t.Errorf("%s: home screen must be in its own allow-list", r)
		}
	}
}
