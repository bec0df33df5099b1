package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/service"
)

// userAdmin is the slice of service.UserService the users commands need.
type userAdmin interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	SetRole(ctx context.Context, userID int64, role model.Role) (*model.User, bool, error)
}

type userAdminLoader func(ctx context.Context) (userAdmin, func(), error)

func newUsersCmd(load userAdminLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect and manage user accounts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check <email>",
		Short: "Show a user's role and team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			users, closeFn, err := load(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			user, err := users.GetByEmail(ctx, args[0])
			if errors.Is(err, service.ErrUserNotFound) {
				return fmt.Errorf("no user with email %s", args[0])
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id:    %d\n", user.ID)
			fmt.Fprintf(out, "name:  %s\n", user.Name)
			fmt.Fprintf(out, "email: %s\n", user.Email)
			fmt.Fprintf(out, "role:  %s\n", user.Role)
			if user.TeamName != nil {
				fmt.Fprintf(out, "team:  %s\n", *user.TeamName)
			} else {
				fmt.Fprintln(out, "team:  (none)")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-role <email> <role>",
		Short: "Change a user's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := model.ParseRole(args[1])
			if err != nil {
				return fmt.Errorf("invalid role %q, valid roles are: %s", args[1], roleList())
			}

			ctx := cmd.Context()
			users, closeFn, err := load(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			user, err := users.GetByEmail(ctx, args[0])
			if errors.Is(err, service.ErrUserNotFound) {
				return fmt.Errorf("no user with email %s", args[0])
			}
			if err != nil {
				return err
			}

			updated, changed, err := users.SetRole(ctx, user.ID, role)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already has role %s\n", user.Email, role)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n", updated.Email, user.Role, updated.Role)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list-admins",
		Short: "List every admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			users, closeFn, err := load(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			admins, err := users.ListByRole(ctx, model.RoleAdmin)
			if err != nil {
				return err
			}
			if len(admins) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no admin users")
				return nil
			}
			for _, a := range admins {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", a.ID, a.Email, a.Name)
			}
			return nil
		},
	})

	return cmd
}

func roleList() string {
	roles := model.Roles()
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	return strings.Join(names, ", ")
}
