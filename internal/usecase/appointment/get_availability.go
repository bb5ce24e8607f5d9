package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type GetAvailability struct {
	repo    domain.Repository
	barbers domain.BarberLister
}

func NewGetAvailability(repo domain.Repository, barbers domain.BarberLister) *GetAvailability {
	return &GetAvailability{repo: repo, barbers: barbers}
}

// Execute returns every barber document with slots narrowed to the labels
// still free on date. Nothing is persisted.
func (uc *GetAvailability) Execute(ctx context.Context, date string) ([]models.Document, error) {
	barbers, err := uc.barbers.ListBarbers(ctx)
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return domain.ApplyAvailability(barbers, booked), nil
}
