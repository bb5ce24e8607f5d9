package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/barbershop-api/internal/store"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

// TokenIssuer is satisfied by *token.Service.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

// Promoter writes role/position directly, bypassing the HTTP role policy.
type Promoter interface {
	Promote(ctx context.Context, email string, role, position *string) (*store.UpdateResult, error)
}

// Env supplies the commands' collaborators. Users opens a store connection
// on demand and returns a func that closes it.
type Env struct {
	Tokens     func() TokenIssuer
	Users      func(ctx context.Context) (Promoter, func(), error)
	CheckEmail func(email string) bool
}

func NewRootCmd(env Env) *cobra.Command {
	if env.CheckEmail == nil {
		env.CheckEmail = validators.IsEmailDomainValid
	}

	root := &cobra.Command{
		Use:   "shopctl",
		Short: "Administrative tasks for the barbershop API.",
		Long: `shopctl talks to the same store and secret as the API server.

Use it to bootstrap the first chairman (the HTTP API cannot create one) and to
mint bearer tokens for testing.`,
		SilenceUsage: true,
	}

	root.AddCommand(newTokenCmd(env))
	root.AddCommand(newPromoteCmd(env))
	return root
}
