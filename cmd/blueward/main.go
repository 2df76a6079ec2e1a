// Command blueward is the terminal demo for the BlueWard access system.
//
// Each invocation restores the persisted session and language preference,
// runs one command against the seeded in-memory fixture, and exits. Only the
// session and the language survive between runs; fixture mutations are
// deliberately ephemeral.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/blueward/access-system/internal/core/domain"
	"github.com/blueward/access-system/internal/core/service"
	"github.com/blueward/access-system/internal/infrastructure/config"
	"github.com/blueward/access-system/internal/infrastructure/memstore"
	"github.com/blueward/access-system/internal/infrastructure/storage"
	"github.com/blueward/access-system/pkg/logger"
)

type app struct {
	cfg           *config.Config
	session       *service.Session
	locale        *service.LocaleService
	directory     *service.DirectoryService
	invites       *service.InviteService
	vip           *service.VIPInviteService
	checkIns      *service.CheckInService
	notifications *service.NotificationService
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
		Output: os.Stderr,
	})

	store := storage.New(cfg.DataDir, log)
	fx := memstore.Seed()

	directory := service.NewDirectoryService(fx.Users, log)
	a := &app{
		cfg:           cfg,
		directory:     directory,
		session:       service.NewSession(directory, store, cfg.LoginDelay, log),
		locale:        service.NewLocaleService(store, cfg.DefaultLanguage, log),
		invites:       service.NewInviteService(fx.Invites, fx.Users, nil, log),
		vip:           service.NewVIPInviteService(fx.VIPInvites, nil, log),
		checkIns:      service.NewCheckInService(fx.CheckIns, fx.Invites, fx.Notifications, nil, log),
		notifications: service.NewNotificationService(fx.Notifications, log),
	}

	if err := a.run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) run(args []string) error {
	if len(args) == 0 {
		a.usage()
		return nil
	}
	ctx := context.Background()

	switch args[0] {
	case "login":
		return a.cmdLogin(ctx, args[1:])
	case "logout":
		a.session.Logout()
		fmt.Println(a.tr("userMenu.logout"))
		return nil
	case "whoami":
		return a.cmdWhoami()
	case "switch":
		return a.cmdSwitch(ctx, args[1:])
	case "upgrade":
		return a.cmdUpgrade(args[1:])
	case "downgrade":
		return a.cmdDowngrade(args[1:])
	case "lang":
		return a.cmdLang(args[1:])
	case "screens":
		return a.cmdScreens(args[1:])
	case "invites":
		return a.cmdInvites(ctx)
	case "create-invite":
		return a.cmdCreateInvite(ctx, args[1:])
	case "cancel-invite":
		return a.cmdCancelInvite(ctx, args[1:])
	case "search":
		return a.cmdSearch(ctx, args[1:])
	case "checkin":
		return a.cmdGate(ctx, domain.CheckIn, args[1:])
	case "checkout":
		return a.cmdGate(ctx, domain.CheckOut, args[1:])
	case "history":
		return a.cmdHistory(ctx, args[1:])
	case "friends":
		return a.cmdFriends(ctx)
	case "notifications":
		return a.cmdNotifications(ctx)
	case "read":
		return a.cmdRead(ctx, args[1:])
	case "vip":
		return a.cmdVIP(ctx, args[1:])
	case "guards":
		return a.cmdGuards(ctx, args[1:])
	case "link":
		return a.cmdLink(ctx, args[1:])
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// tr resolves a dotted translation key against the active table.
func (a *app) tr(path string) string {
	return a.locale.Translations().Lookup(path)
}

func (a *app) usage() {
	fmt.Printf("%s (%s)\n\n", a.tr("common.appName"), a.tr("dashboard.demoMode"))
	fmt.Println(a.tr("dashboard.demoDescription"))
	fmt.Println(`
  login <username> [password]      logout      whoami      switch <username>
  upgrade <residence-code>         downgrade <user-id>
  lang [en|es]                     screens [screen-id]
  invites                          create-invite <guest-id> <valid-days> [multi]
  cancel-invite <id>               search <code|name|residence> <query>
  checkin <user-id> <invite-id>    checkout <user-id> <invite-id>
  history [user-id]                friends
  notifications                    read <id>
  vip list|create|enable|disable|delete ...
  guards list|create ...               link <residence>`)
	fmt.Printf("\n%s: john_resident, maria_resident, bob_guest, guard_main, admin_super (%s)\n",
		a.tr("auth.demoCredentials"), a.tr("auth.noPasswordRequired"))
}

// requireUser fails the command when nobody is logged in.
func (a *app) requireUser() (*domain.User, error) {
	u := a.session.Current()
	if u == nil {
		return nil, service.ErrNotLoggedIn
	}
	return u, nil
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%s: login <username> [password]", a.tr("common.requiredFields"))
	}
	password := ""
	if len(args) > 1 {
		password = args[1]
	}
	fmt.Println(a.tr("common.loading"))
	u, err := a.session.Login(ctx, args[0], password)
	if err != nil {
		return err
	}
	fmt.Printf("%s, %s!\n", a.tr("common.welcome"), u.FullName)
	return nil
}

func (a *app) cmdWhoami() error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s (%s)\n", a.tr("dashboard.currentUserType"), u.FullName, a.roleLabel(u.Role))
	if u.Residence != "" {
		fmt.Printf("%s: %s\n", a.tr("security.searchByResidence"), u.Residence)
	}
	return nil
}

func (a *app) cmdSwitch(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("switch <username>")
	}
	u, err := a.directory.FindByUsername(ctx, args[0])
	if err != nil {
		return err
	}
	a.session.SwitchIdentity(u)
	fmt.Printf("%s: %s\n", a.tr("userMenu.switchUser"), u.FullName)
	return nil
}

func (a *app) cmdUpgrade(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%s: upgrade <residence-code>", a.tr("guest.enterCode"))
	}
	if err := a.session.UpgradeToResident(args[0]); err != nil {
		return err
	}
	fmt.Println(a.tr("guest.upgradeToResident"), "✓")
	return nil
}

func (a *app) cmdDowngrade(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("downgrade <user-id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("downgrade: bad user id %q", args[0])
	}
	if !a.session.DowngradeToGuest(id) {
		return domain.ErrForbidden
	}
	fmt.Println(a.tr("admin.downgradeToGuest"), "✓")
	return nil
}

func (a *app) cmdLang(args []string) error {
	if len(args) == 0 {
		fmt.Println(a.locale.Current())
		return nil
	}
	if !a.locale.SetLocale(args[0]) {
		return fmt.Errorf("language %q is not supported", args[0])
	}
	fmt.Println(a.tr("common.success"))
	return nil
}

func (a *app) cmdScreens(args []string) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	profile := domain.ProfileFor(u.Role)
	if len(args) == 0 {
		for _, s := range profile.Screens {
			fmt.Println(s)
		}
		return nil
	}
	fmt.Println(domain.ResolveScreen(u.Role, domain.ScreenID(args[0])))
	return nil
}
