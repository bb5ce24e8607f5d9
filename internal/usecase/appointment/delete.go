package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/store"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(repo domain.Repository, audit *audit.Dispatcher) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, audit: audit}
}

// Execute deletes by id. There is no ownership check; the route is public.
func (uc *DeleteAppointment) Execute(ctx context.Context, id string) (*store.DeleteResult, error) {
	res, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	if res.DeletedCount > 0 {
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionAppointmentDeleted,
			Entity:   "appointment",
			EntityID: id,
		})
	}
	return res, nil
}
