package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domainUser "github.com/BruksfildServices01/barbershop-api/internal/domain/user"
)

var validRoles = map[string]bool{
	domainUser.RoleNone:    true,
	domainUser.RoleManager: true,
	domainUser.RoleBarber:  true,
}

var validPositions = map[string]bool{
	"":                          true,
	domainUser.PositionChairman: true,
}

func newPromoteCmd(env Env) *cobra.Command {
	var (
		email    string
		role     string
		position string
	)

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Set a user's role and/or position directly.",
		Long: `Set role (manager, barber or "") and/or position (chairman or "") on a user,
creating the user document when it does not exist. Only flags that are passed
are changed.`,
		Example: `shopctl promote --email owner@example.com --position chairman
shopctl promote --email sam@example.com --role ""`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.TrimSpace(email)
			if email == "" {
				return fmt.Errorf("--email is required")
			}

			var rolePtr, positionPtr *string
			if cmd.Flags().Changed("role") {
				if !validRoles[role] {
					return fmt.Errorf("invalid role %q (want manager, barber or \"\")", role)
				}
				rolePtr = &role
			}
			if cmd.Flags().Changed("position") {
				if !validPositions[position] {
					return fmt.Errorf("invalid position %q (want chairman or \"\")", position)
				}
				positionPtr = &position
			}
			if rolePtr == nil && positionPtr == nil {
				return fmt.Errorf("nothing to change: pass --role and/or --position")
			}

			if !env.CheckEmail(email) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: domain of %s does not resolve\n", email)
			}

			users, closeFn, err := env.Users(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := users.Promote(cmd.Context(), email, rolePtr, positionPtr)
			if err != nil {
				return err
			}

			switch {
			case res.UpsertedCount > 0:
				fmt.Fprintf(cmd.OutOrStdout(), "User %s created.\n", email)
			case res.ModifiedCount > 0:
				fmt.Fprintf(cmd.OutOrStdout(), "User %s updated.\n", email)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "User %s already up to date.\n", email)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user to change")
	cmd.Flags().StringVar(&role, "role", "", "manager, barber or empty to clear")
	cmd.Flags().StringVar(&position, "position", "", "chairman or empty to clear")
	return cmd
}
