package user

import (
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

const (
	RoleNone    = ""
	RoleManager = "manager"
	RoleBarber  = "barber"

	PositionChairman = "chairman"
)

var ErrForbidden = httperr.ErrBusiness("forbidden")

// Policy decides whether the requester may perform a privileged mutation.
type Policy func(requester models.User) bool

func IsManager(u models.User) bool  { return u.Role == RoleManager }
func IsBarber(u models.User) bool   { return u.Role == RoleBarber }
func IsChairman(u models.User) bool { return u.Position == PositionChairman }

var (
	RequireManager  Policy = IsManager
	RequireChairman Policy = IsChairman

	RequireManagerOrChairman Policy = func(u models.User) bool {
		return IsManager(u) || IsChairman(u)
	}
)
