package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/BruksfildServices01/barbershop-api/internal/db"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/store"
)

type AppointmentMongoRepository struct {
	cols *db.Collections
}

func NewAppointmentMongoRepository(cols *db.Collections) *AppointmentMongoRepository {
	return &AppointmentMongoRepository{cols: cols}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *AppointmentMongoRepository) ListByDate(ctx context.Context, date string) ([]models.Document, error) {
	return findAll[models.Document](ctx, r.cols.Appointments, bson.M{domain.FieldDate: date})
}

func (r *AppointmentMongoRepository) ListByEmail(ctx context.Context, email string) ([]models.Document, error) {
	return findAll[models.Document](ctx, r.cols.Appointments, bson.M{domain.FieldEmail: email})
}

func (r *AppointmentMongoRepository) Get(ctx context.Context, id string) (models.Document, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return findDocument(ctx, r.cols.Appointments, bson.M{"_id": oid})
}

// FindBySlot filters on the raw key values; a nil value matches documents
// where the field is missing, the same way the unique index treats them.
func (r *AppointmentMongoRepository) FindBySlot(ctx context.Context, key domain.SlotKey) (models.Document, error) {
	return findDocument(ctx, r.cols.Appointments, bson.M{
		domain.FieldDate:   key.Date,
		domain.FieldBarber: key.Barber,
		domain.FieldSlot:   key.Slot,
	})
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *AppointmentMongoRepository) Create(ctx context.Context, doc models.Document) (*store.InsertResult, error) {
	return insertOne(ctx, r.cols.Appointments, doc)
}

func (r *AppointmentMongoRepository) Delete(ctx context.Context, id string) (*store.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.cols.Appointments.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	return &store.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (r *AppointmentMongoRepository) MarkPaid(
	ctx context.Context,
	id string,
	transactionID string,
) (*store.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.cols.Appointments.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			domain.FieldPayment:       string(domain.PaymentPaid),
			domain.FieldTransactionID: transactionID,
		}},
	)
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

// --------------------------------------------------
// Payments
// --------------------------------------------------

func (r *AppointmentMongoRepository) CreatePayment(ctx context.Context, doc models.Document) (*store.InsertResult, error) {
	return insertOne(ctx, r.cols.Payments, doc)
}

func (r *AppointmentMongoRepository) ListPaymentsByEmail(ctx context.Context, email string) ([]models.Document, error) {
	return findAll[models.Document](ctx, r.cols.Payments, bson.M{domain.FieldEmail: email})
}

// Barbers are read here too so availability needs a single dependency.
func (r *AppointmentMongoRepository) ListBarbers(ctx context.Context) ([]models.Document, error) {
	return findAll[models.Document](ctx, r.cols.Barbers, nil)
}

// Compile-time checks
var (
	_ domain.Repository        = (*AppointmentMongoRepository)(nil)
	_ domain.PaymentRepository = (*AppointmentMongoRepository)(nil)
	_ domain.BarberLister      = (*AppointmentMongoRepository)(nil)
)
