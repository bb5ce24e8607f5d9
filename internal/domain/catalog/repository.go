package catalog

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/store"
)

// Repository covers the plain list/create collections. Creates insert the
// document as received; reads return whole documents.
type Repository interface {
	// -------- Services --------
	ListServices(ctx context.Context) ([]models.Document, error)
	CreateService(ctx context.Context, doc models.Document) (*store.InsertResult, error)

	// -------- Barbers --------
	ListBarbers(ctx context.Context) ([]models.Document, error)
	GetBarber(ctx context.Context, id string) (models.Document, error)
	CreateBarber(ctx context.Context, doc models.Document) (*store.InsertResult, error)

	// -------- Reviews --------
	ListReviews(ctx context.Context) ([]models.Document, error)
	ListReviewsByEmail(ctx context.Context, email string) ([]models.Document, error)
	ListReviewsByBarberEmail(ctx context.Context, email string) ([]models.Document, error)
	CreateReview(ctx context.Context, doc models.Document) (*store.InsertResult, error)

	// -------- Managers / Features --------
	ListManagers(ctx context.Context) ([]models.Document, error)
	CreateManager(ctx context.Context, doc models.Document) (*store.InsertResult, error)
	ListFeatures(ctx context.Context) ([]models.Document, error)
}
