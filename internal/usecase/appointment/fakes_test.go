package appointment

import (
	"context"
	"errors"
	"maps"
	"sync"

	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/mailer"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/store"
)

// memoryRepo is an in-memory appointment/payment store. When uniqueSlots is
// false it behaves like a store without the unique index.
type memoryRepo struct {
	mu           sync.Mutex
	appointments []models.Document
	payments     []models.Document
	barbers      []models.Document
	uniqueSlots  bool
	beforeCreate func()
	markPaidErr  error
}

// sameValue compares raw field values the way the store filter does: nil
// only matches nil.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return cast.ToString(a) == cast.ToString(b)
}

func sameSlot(doc models.Document, key domain.SlotKey) bool {
	return sameValue(doc["date"], key.Date) &&
		sameValue(doc["barber"], key.Barber) &&
		sameValue(doc["slot"], key.Slot)
}

func (r *memoryRepo) filter(docs []models.Document, field, value string) []models.Document {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Document
	for _, d := range docs {
		if d[field] == value {
			out = append(out, d)
		}
	}
	return out
}

func (r *memoryRepo) ListByDate(_ context.Context, date string) ([]models.Document, error) {
	return r.filter(r.appointments, "date", date), nil
}

func (r *memoryRepo) ListByEmail(_ context.Context, email string) ([]models.Document, error) {
	return r.filter(r.appointments, "email", email), nil
}

func (r *memoryRepo) index(id string) (int, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return -1, store.ErrInvalidID
	}
	for i := range r.appointments {
		if r.appointments[i]["_id"] == oid {
			return i, nil
		}
	}
	return -1, nil
}

func (r *memoryRepo) Get(_ context.Context, id string) (models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.index(id)
	if err != nil {
		return nil, err
	}
	if i < 0 {
		return nil, store.ErrNotFound
	}
	return maps.Clone(r.appointments[i]), nil
}

func (r *memoryRepo) FindBySlot(_ context.Context, key domain.SlotKey) (models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.appointments {
		if sameSlot(ap, key) {
			return maps.Clone(ap), nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *memoryRepo) Create(_ context.Context, doc models.Document) (*store.InsertResult, error) {
	if r.beforeCreate != nil {
		r.beforeCreate()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.uniqueSlots {
		for _, existing := range r.appointments {
			if sameSlot(existing, domain.KeyOf(doc)) {
				return nil, store.ErrDuplicate
			}
		}
	}

	stored := maps.Clone(doc)
	id := primitive.NewObjectID()
	stored["_id"] = id
	r.appointments = append(r.appointments, stored)
	return &store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) (*store.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.index(id)
	if err != nil {
		return nil, err
	}
	if i < 0 {
		return &store.DeleteResult{Acknowledged: true}, nil
	}
	r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
	return &store.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (r *memoryRepo) MarkPaid(_ context.Context, id, transactionID string) (*store.UpdateResult, error) {
	if r.markPaidErr != nil {
		return nil, r.markPaidErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.index(id)
	if err != nil {
		return nil, err
	}
	if i < 0 {
		return &store.UpdateResult{Acknowledged: true}, nil
	}
	r.appointments[i]["payment"] = "paid"
	r.appointments[i]["transactionId"] = transactionID
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *memoryRepo) CreatePayment(_ context.Context, doc models.Document) (*store.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := maps.Clone(doc)
	id := primitive.NewObjectID()
	stored["_id"] = id
	r.payments = append(r.payments, stored)
	return &store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *memoryRepo) ListPaymentsByEmail(_ context.Context, email string) ([]models.Document, error) {
	return r.filter(r.payments, "email", email), nil
}

func (r *memoryRepo) ListBarbers(_ context.Context) ([]models.Document, error) {
	return r.barbers, nil
}

type recordingSender struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return s.err
}

var errMailDown = errors.New("smtp unavailable")

func newDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.LogSink{}, 10)
}
