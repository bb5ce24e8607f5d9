package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) ByDate(ctx context.Context, date string) ([]models.Document, error) {
	return uc.repo.ListByDate(ctx, date)
}

func (uc *ListAppointments) ByEmail(ctx context.Context, email string) ([]models.Document, error) {
	return uc.repo.ListByEmail(ctx, email)
}

func (uc *ListAppointments) ByID(ctx context.Context, id string) (models.Document, error) {
	return uc.repo.Get(ctx, id)
}
