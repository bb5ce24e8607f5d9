package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/BruksfildServices01/barbershop-api/internal/db"
	"github.com/BruksfildServices01/barbershop-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/store"
)

type CatalogMongoRepository struct {
	cols *db.Collections
}

func NewCatalogMongoRepository(cols *db.Collections) *CatalogMongoRepository {
	return &CatalogMongoRepository{cols: cols}
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogMongoRepository) ListServices(ctx context.Context) ([]models.Document, error) {
	return findAll[models.Document](ctx, r.cols.Services, nil)
}

func (r *CatalogMongoRepository) CreateService(ctx context.Context, doc models.Document) (*store.InsertResult, error) {
	return insertOne(ctx, r.cols.Services, doc)
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (r *CatalogMongoRepository) ListBarbers(ctx context.Context) ([]models.Document, error) {
	return findAll[models.Document](ctx, r.cols.Barbers, nil)
}

func (r *CatalogMongoRepository) GetBarber(ctx context.Context, id string) (models.Document, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findDocument(ctx, r.cols.Barbers, bson.M{"_id": oid})
}

func (r *CatalogMongoRepository) CreateBarber(ctx context.Context, doc models.Document) (*store.InsertResult, error) {
	return insertOne(ctx, r.cols.Barbers, doc)
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

func (r *CatalogMongoRepository) ListReviews(ctx context.Context) ([]models.Document, error) {
	return findAll[models.Document](ctx, r.cols.Reviews, nil)
}

func (r *CatalogMongoRepository) ListReviewsByEmail(ctx context.Context, email string) ([]models.Document, error) {
	return findAll[models.Document](ctx, r.cols.Reviews, bson.M{"email": email})
}

func (r *CatalogMongoRepository) ListReviewsByBarberEmail(ctx context.Context, email string) ([]models.Document, error) {
	return findAll[models.Document](ctx, r.cols.Reviews, bson.M{"barberEmail": email})
}

func (r *CatalogMongoRepository) CreateReview(ctx context.Context, doc models.Document) (*store.InsertResult, error) {
	return insertOne(ctx, r.cols.Reviews, doc)
}

// --------------------------------------------------
// Managers / Features
// --------------------------------------------------

func (r *CatalogMongoRepository) ListManagers(ctx context.Context) ([]models.Document, error) {
	return findAll[models.Document](ctx, r.cols.Managers, nil)
}

func (r *CatalogMongoRepository) CreateManager(ctx context.Context, doc models.Document) (*store.InsertResult, error) {
	return insertOne(ctx, r.cols.Managers, doc)
}

func (r *CatalogMongoRepository) ListFeatures(ctx context.Context) ([]models.Document, error) {
	return findAll[models.Document](ctx, r.cols.Features, nil)
}

var _ catalog.Repository = (*CatalogMongoRepository)(nil)
