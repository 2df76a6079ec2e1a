package domain

// ScreenID identifies a dashboard view.
type ScreenID string

const (
	ScreenHome                 ScreenID = "Home"
	ScreenInvites              ScreenID = "Invites"
	ScreenFriendList           ScreenID = "FriendList"
	ScreenCheckInOut           ScreenID = "CheckInOut"
	ScreenNotifications        ScreenID = "Notifications"
	ScreenUpgradeToResident    ScreenID = "UpgradeToResident"
	ScreenSearchInvites        ScreenID = "SearchInvites"
	ScreenVIPInvite            ScreenID = "VIPInvite"
	ScreenVIPInviteManager     ScreenID = "VIPInviteManager"
	ScreenResidentLinker       ScreenID = "ResidentLinker"
	ScreenResidentDisabler     ScreenID = "ResidentDisabler"
	ScreenGuardAccountOverview ScreenID = "GuardAccountOverview"
)

// RoleProfile describes what a role may reach and where it lands by default.
type RoleProfile struct {
	Home    ScreenID
	Screens []ScreenID
}

// roleProfiles is the single allow-list driving navigation for every role;
// the sidebar, router and dashboard selection all read from it.
var roleProfiles = map[Role]RoleProfile{
	RoleResident: {
		Home:    ScreenHome,
		Screens: []ScreenID{ScreenHome, ScreenInvites, ScreenFriendList, ScreenCheckInOut, ScreenNotifications},
	},
	RoleGuest: {
		Home:    ScreenHome,
		Screens: []ScreenID{ScreenHome, ScreenInvites, ScreenFriendList, ScreenCheckInOut, ScreenUpgradeToResident},
	},
	RoleSecurity: {
		Home:    ScreenHome,
		Screens: []ScreenID{ScreenHome, ScreenSearchInvites, ScreenNotifications, ScreenInvites},
	},
	RoleAdmin: {
		Home: ScreenHome,
		Screens: []ScreenID{
			ScreenHome, ScreenVIPInvite, ScreenVIPInviteManager,
			ScreenResidentLinker, ScreenResidentDisabler, ScreenGuardAccountOverview,
		},
	},
}

// ProfileFor returns the navigation profile for a role. Unknown roles get an
// empty profile whose Resolve always falls back to Home.
func ProfileFor(role Role) RoleProfile {
	if p, ok := roleProfiles[role]; ok {
		return p
	}
	return RoleProfile{Home: ScreenHome}
}

// Allows reports whether the profile permits the requested screen.
func (p RoleProfile) Allows(screen ScreenID) bool {
	for _, s := range p.Screens {
		if s == screen {
			return true
		}
	}
	return false
}

// ResolveScreen maps (role, requested screen) to the screen actually shown.
// Disallowed or unknown screens fall back to the role's home dashboard.
// Navigation is stateless: there is no history or back-stack.
func ResolveScreen(role Role, requested ScreenID) ScreenID {
	p := ProfileFor(role)
	if p.Allows(requested) {
		return requested
	}
	return p.Home
}
