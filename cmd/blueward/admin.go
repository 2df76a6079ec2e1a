package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/blueward/access-system/internal/core/domain"
	"github.com/blueward/access-system/internal/core/ports"
)

// cmdVIP handles the admin VIP invite lifecycle. Deletion runs the two-step
// confirm:  `vip delete <id>` prints the warning and the confirmation token,
// `vip delete <id> <token>` performs the removal.
func (a *app) cmdVIP(ctx context.Context, args []string) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("vip list|create|enable|disable|delete")
	}

	switch args[0] {
	case "list":
		invites, err := a.vip.ListAll(ctx, u.Role)
		if err != nil {
			return err
		}
		for _, inv := range invites {
			expiry := a.tr("admin.indefiniteInvite")
			if !inv.IsIndefinite {
				expiry = fmt.Sprintf("%s: %s", a.tr("guest.validUntil"), inv.ExpiresAt.Format(time.RFC3339))
			}
			fmt.Printf("#%d %s  %s  %s  %s\n", inv.ID, inv.Code, inv.FullName, a.statusLabel(string(inv.Status)), expiry)
		}
		return nil

	case "create":
		if len(args) < 4 {
			return fmt.Errorf("%s: vip create <full-name> <email> <phone> [valid-days]", a.tr("common.requiredFields"))
		}
		in := ports.CreateVIPInviteInput{
			CreatedBy:    u.ID,
			FullName:     args[1],
			Email:        args[2],
			Phone:        args[3],
			IsIndefinite: len(args) < 5,
		}
		if len(args) >= 5 {
			days, err := strconv.Atoi(args[4])
			if err != nil {
				return fmt.Errorf("vip create: bad valid-days %q", args[4])
			}
			in.ValidDays = days
		}
		inv, err := a.vip.Create(ctx, u.Role, in)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", a.tr("admin.generateCode"), inv.Code)
		return nil

	case "enable", "disable":
		if len(args) != 2 {
			return fmt.Errorf("vip %s <id>", args[0])
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("vip %s: bad id %q", args[0], args[1])
		}
		if args[0] == "enable" {
			err = a.vip.Enable(ctx, u.Role, id)
		} else {
			err = a.vip.Disable(ctx, u.Role, id)
		}
		if err != nil {
			return err
		}
		fmt.Println(a.tr("common.success"))
		return nil

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("vip delete <id> [confirm-token]")
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("vip delete: bad id %q", args[1])
		}
		if len(args) == 2 {
			token, err := a.vip.ConfirmDelete(ctx, u.Role, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s? %s:\n  vip delete %d %s\n", a.tr("common.delete"), a.tr("common.confirm"), id, token)
			return nil
		}
		if err := a.vip.Delete(ctx, u.Role, id, args[2]); err != nil {
			return err
		}
		fmt.Println(a.tr("common.success"))
		return nil

	default:
		return fmt.Errorf("vip: unknown subcommand %q", args[0])
	}
}

// cmdLink issues a residence link code for sharing with a guest.
func (a *app) cmdLink(ctx context.Context, args []string) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("link <residence>")
	}
	code, err := a.directory.CreateLinkCode(ctx, u.Role, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", a.tr("admin.createLinkCode"), code)
	return nil
}

// cmdGuards handles admin guard account management.
func (a *app) cmdGuards(ctx context.Context, args []string) error {
	u, err := a.requireUser()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("guards list|create|enable|disable")
	}

	switch args[0] {
	case "list":
		if u.Role != domain.RoleAdmin && u.Role != domain.RoleSecurity {
			return domain.ErrForbidden
		}
		guards, err := a.directory.ListByRole(ctx, domain.RoleSecurity)
		if err != nil {
			return err
		}
		fmt.Println(a.tr("admin.guardAccountManagement"))
		for _, g := range guards {
			state := a.statusLabel("active")
			if g.Disabled {
				state = a.statusLabel("disabled")
			}
			fmt.Printf("  #%d %s (%s)  %s: %s  %s\n", g.ID, g.FullName, g.Username,
				a.tr("common.assignedArea"), g.AssignedArea, state)
		}
		return nil

	case "create":
		if len(args) != 6 {
			return fmt.Errorf("%s: guards create <username> <full-name> <password> <confirm-password> <area>",
				a.tr("common.requiredFields"))
		}
		guard, err := a.directory.CreateGuardAccount(ctx, u.Role, ports.CreateGuardAccountInput{
			Username:        args[1],
			FullName:        args[2],
			Password:        args[3],
			ConfirmPassword: args[4],
			AssignedArea:    args[5],
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s: #%d %s\n", a.tr("admin.createGuardAccount"), guard.ID, guard.Username)
		return nil

	case "enable", "disable":
		if len(args) != 2 {
			return fmt.Errorf("guards %s <id>", args[0])
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("guards %s: bad id %q", args[0], args[1])
		}
		if err := a.directory.SetEnabled(ctx, u.Role, id, args[0] == "enable"); err != nil {
			return err
		}
		fmt.Println(a.tr("common.success"))
		return nil

	default:
		return fmt.Errorf("guards: unknown subcommand %q", args[0])
	}
}
