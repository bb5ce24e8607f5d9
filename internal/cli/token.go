package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newTokenCmd(env Env) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:     "token",
		Short:   "Print a signed bearer token for an email.",
		Example: "shopctl token --email owner@example.com",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.TrimSpace(email)
			if email == "" {
				return fmt.Errorf("--email is required")
			}

			tok, err := env.Tokens().Issue(email)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email carried in the token")
	return cmd
}
