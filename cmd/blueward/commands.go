package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/blueward/access-system/internal/core/domain"
	"github.com/blueward/access-system/internal/core/ports"
)

// cmdInvites shows the invite slice appropriate to the active role:
// residents see invites they created, guests see invites issued to them,
// security and admin see everything.
func (a *app) cmdInvites(ctx context.Context) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}

	var views []*ports.InviteView
	switch u.Role {
	case domain.RoleResident:
		views, err = a.invites.ListCreatedBy(ctx, u.ID)
	case domain.RoleGuest:
		views, err = a.invites.ListForGuest(ctx, u.ID)
	default:
		views, err = a.invites.ListAll(ctx)
	}
	if err != nil {
		return err
	}

	if len(views) == 0 {
		fmt.Println(a.tr("security.noAction"))
		return nil
	}
	for _, v := range views {
		a.printInvite(ctx, v)
	}
	return nil
}

func (a *app) printInvite(ctx context.Context, v *ports.InviteView) {
	guestName := ""
	if g, err := a.directory.FindByID(ctx, v.GuestID); err == nil {
		guestName = g.FullName
	}
	line := fmt.Sprintf("#%d %s  %s: %s  %s: %s",
		v.ID, v.Code,
		a.tr("guest.guestName"), guestName,
		a.tr("resident.inviteStatus"), a.statusLabel(string(v.Effective)))
	if !v.ExpiresAt.IsZero() {
		line += fmt.Sprintf("  %s: %s", a.tr("guest.validUntil"), v.ExpiresAt.Format(time.RFC3339))
	}
	fmt.Printf("%s  %s: %d\n", line, a.tr("guest.usageCount"), v.UsageCount)
}

func (a *app) cmdCreateInvite(ctx context.Context, args []string) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%s: create-invite <guest-id> <valid-days> [multi]", a.tr("common.requiredFields"))
	}
	guestID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("create-invite: bad guest id %q", args[0])
	}
	validDays, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("create-invite: bad valid-days %q", args[1])
	}
	multi := len(args) > 2 && args[2] == "multi"

	inv, err := a.invites.Create(ctx, ports.CreateInviteInput{
		CreatedBy: u.ID,
		GuestID:   guestID,
		ValidDays: validDays,
		MultiUse:  multi,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", a.tr("resident.newInvite"), inv.Code)
	return nil
}

func (a *app) cmdCancelInvite(ctx context.Context, args []string) error {
	if _, err := a.requireUser(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("cancel-invite <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("cancel-invite: bad id %q", args[0])
	}
	if err := a.invites.Cancel(ctx, id); err != nil {
		return err
	}
	fmt.Println(a.tr("resident.cancelInvite"), "✓")
	return nil
}

func (a *app) cmdSearch(ctx context.Context, args []string) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	if u.Role != domain.RoleSecurity && u.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if len(args) != 2 {
		return fmt.Errorf("search <code|name|residence> <query>")
	}

	var q ports.InviteSearchQuery
	switch args[0] {
	case "code":
		q.Code = args[1]
	case "name":
		q.GuestName = args[1]
	case "residence":
		q.Residence = args[1]
	default:
		return fmt.Errorf("search: unknown field %q", args[0])
	}

	views, err := a.invites.Search(ctx, q)
	if err != nil {
		return err
	}
	if len(views) == 0 {
		fmt.Println(a.tr("common.residenceNotFound"))
		return nil
	}
	for _, v := range views {
		a.printInvite(ctx, v)
	}
	return nil
}

func (a *app) cmdGate(ctx context.Context, kind domain.CheckInType, args []string) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	if u.Role != domain.RoleSecurity {
		return domain.ErrForbidden
	}
	if len(args) != 2 {
		return fmt.Errorf("%s <user-id> <invite-id>", kind)
	}
	userID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad user id %q", args[0])
	}
	inviteID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad invite id %q", args[1])
	}

	rec, err := a.checkIns.Record(ctx, ports.RecordCheckInInput{
		UserID:   userID,
		InviteID: inviteID,
		Type:     kind,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s %s (#%d)\n", a.tr("security.approved"), rec.Timestamp.Format(time.RFC3339), rec.ID)
	return nil
}

func (a *app) cmdHistory(ctx context.Context, args []string) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}

	userID := u.ID
	if len(args) == 1 {
		if u.Role != domain.RoleSecurity && u.Role != domain.RoleAdmin {
			return domain.ErrForbidden
		}
		userID, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("history: bad user id %q", args[0])
		}
	}

	recs, err := a.checkIns.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println(a.tr("security.noAction"))
		return nil
	}
	fmt.Println(a.tr("resident.checkInHistory"))
	for _, r := range recs {
		fmt.Printf("  #%d %s %s (invite %d)\n", r.ID, r.Timestamp.Format(time.RFC3339), r.Type, r.InviteID)
	}
	return nil
}

func (a *app) cmdFriends(ctx context.Context) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	friends, err := a.directory.Friends(ctx, u.ID)
	if err != nil {
		return err
	}
	fmt.Println(a.tr("resident.friendList"))
	for _, f := range friends {
		fmt.Printf("  %s (%s)\n", f.FullName, a.roleLabel(f.Role))
	}
	return nil
}

func (a *app) cmdNotifications(ctx context.Context) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	ns, err := a.notifications.ListForUser(ctx, u.ID)
	if err != nil {
		return err
	}
	if len(ns) == 0 {
		fmt.Println(a.tr("security.noAction"))
		return nil
	}
	for _, n := range ns {
		marker := "*"
		if n.Read {
			marker = " "
		}
		related := ""
		if ru, err := a.directory.FindByID(ctx, n.RelatedUserID); err == nil {
			related = ru.FullName
		}
		fmt.Printf("%s #%d %s %s from %s\n", marker, n.ID, n.Timestamp.Format(time.RFC3339), n.Type, related)
	}
	return nil
}

func (a *app) cmdRead(ctx context.Context, args []string) error {
	if _, err := a.requireUser(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("read <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("read: bad id %q", args[0])
	}
	if !a.notifications.MarkRead(ctx, id) {
		return domain.ErrNotificationNotFound
	}
	fmt.Println(a.tr("common.success"))
	return nil
}

// roleLabel renders a role using the auth translation category.
func (a *app) roleLabel(r domain.Role) string {
	if label := a.tr("auth." + string(r)); label != "" {
		return label
	}
	return string(r)
}

func (a *app) statusLabel(status string) string {
	if label := a.tr("status." + status); label != "" {
		return label
	}
	return status
}
