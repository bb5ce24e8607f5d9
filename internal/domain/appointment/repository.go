package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/store"
)

type Repository interface {
	// -------- Reads --------
	ListByDate(ctx context.Context, date string) ([]models.Document, error)
	ListByEmail(ctx context.Context, email string) ([]models.Document, error)
	Get(ctx context.Context, id string) (models.Document, error)

	// FindBySlot returns store.ErrNotFound when the slot is free.
	FindBySlot(ctx context.Context, key SlotKey) (models.Document, error)

	// -------- Writes --------
	// Create inserts doc as received. It returns store.ErrDuplicate when the
	// (date, barber, slot) unique index rejects the insert.
	Create(ctx context.Context, doc models.Document) (*store.InsertResult, error)
	Delete(ctx context.Context, id string) (*store.DeleteResult, error)
	MarkPaid(ctx context.Context, id string, transactionID string) (*store.UpdateResult, error)
}

type BarberLister interface {
	ListBarbers(ctx context.Context) ([]models.Document, error)
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, doc models.Document) (*store.InsertResult, error)
	ListPaymentsByEmail(ctx context.Context, email string) ([]models.Document, error)
}
