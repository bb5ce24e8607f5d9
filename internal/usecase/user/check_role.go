package user

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/user"
	"github.com/BruksfildServices01/barbershop-api/internal/store"
)

type CheckRole struct {
	repo domain.Repository
}

func NewCheckRole(repo domain.Repository) *CheckRole {
	return &CheckRole{repo: repo}
}

// Has reports whether email satisfies check. An unknown user is simply false.
func (uc *CheckRole) Has(ctx context.Context, email string, check domain.Policy) (bool, error) {
	u, err := uc.repo.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return check(*u), nil
}
