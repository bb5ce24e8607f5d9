package user

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/store"
)

type Repository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Upsert merges the non-empty fields of u into the document keyed by email.
	Upsert(ctx context.Context, email string, u models.User) (*store.UpdateResult, error)
	SetImage(ctx context.Context, email string, img string) (*store.UpdateResult, error)

	// ChangeRoleAs loads the requester, checks allowed and sets the target's
	// role. It returns ErrForbidden when the requester is unknown or denied.
	ChangeRoleAs(
		ctx context.Context,
		requester string,
		allowed Policy,
		target string,
		role string,
	) (*store.UpdateResult, error)
}
