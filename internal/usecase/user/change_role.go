package user

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/user"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/store"
)

// ======================================================
// GRANTS
// ======================================================

// Grant pairs the requester policy with the role written to the target.
type Grant struct {
	Name   string
	Policy domain.Policy
	Role   string
}

var (
	GrantBarber  = Grant{Name: "barber", Policy: domain.RequireManager, Role: domain.RoleBarber}
	GrantManager = Grant{Name: "manager", Policy: domain.RequireChairman, Role: domain.RoleManager}
	RevokeRole   = Grant{Name: "remove", Policy: domain.RequireManagerOrChairman, Role: domain.RoleNone}
)

// ======================================================
// USE CASE
// ======================================================

type ChangeRole struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeRole(repo domain.Repository, audit *audit.Dispatcher) *ChangeRole {
	return &ChangeRole{repo: repo, audit: audit}
}

func (uc *ChangeRole) Execute(
	ctx context.Context,
	requester string,
	target string,
	g Grant,
) (*store.UpdateResult, error) {

	res, err := uc.repo.ChangeRoleAs(ctx, requester, g.Policy, target, g.Role)
	if httperr.IsBusiness(err, "forbidden") {
		uc.audit.Dispatch(audit.Event{
			Actor:    requester,
			Action:   audit.ActionRoleDenied,
			Entity:   "user",
			EntityID: target,
			Metadata: map[string]string{"grant": g.Name},
		})
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    requester,
		Action:   audit.ActionRoleChanged,
		Entity:   "user",
		EntityID: target,
		Metadata: map[string]string{"grant": g.Name, "role": g.Role},
	})
	return res, nil
}
