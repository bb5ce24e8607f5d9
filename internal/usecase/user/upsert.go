package user

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/user"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/store"
)

// TokenIssuer signs a bearer token for an email.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

type UpsertResult struct {
	Result *store.UpdateResult `json:"result"`
	Token  string              `json:"token"`
}

// UpsertUser is the sign-in entry point: the client has already authenticated
// the person, so the user document is merged by email and a token returned.
type UpsertUser struct {
	repo   domain.Repository
	tokens TokenIssuer
	audit  *audit.Dispatcher
}

func NewUpsertUser(repo domain.Repository, tokens TokenIssuer, audit *audit.Dispatcher) *UpsertUser {
	return &UpsertUser{repo: repo, tokens: tokens, audit: audit}
}

// Execute never lets the body grant privileges; role and position are only
// changed through ChangeRole or the admin CLI.
func (uc *UpsertUser) Execute(ctx context.Context, email string, u models.User) (*UpsertResult, error) {
	u.Email = email
	u.Role = ""
	u.Position = ""

	res, err := uc.repo.Upsert(ctx, email, u)
	if err != nil {
		return nil, err
	}

	tok, err := uc.tokens.Issue(email)
	if err != nil {
		return nil, err
	}

	if res.UpsertedCount > 0 {
		uc.audit.Dispatch(audit.Event{
			Actor:    email,
			Action:   audit.ActionUserUpserted,
			Entity:   "user",
			EntityID: email,
		})
	}

	return &UpsertResult{Result: res, Token: tok}, nil
}
