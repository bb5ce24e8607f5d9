package routes

import (
	"context"
	"maps"
	"sync"

	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/domain/user"
	"github.com/BruksfildServices01/barbershop-api/internal/mailer"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/payment"
	"github.com/BruksfildServices01/barbershop-api/internal/store"
)

// memStore backs every repository interface the routes use. Documents are
// kept as received, the way the document store keeps them.
type memStore struct {
	mu           sync.Mutex
	appointments []models.Document
	payments     []models.Document
	barbers      []models.Document
	services     []models.Document
	reviews      []models.Document
	managers     []models.Document
	users        map[string]models.User
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]models.User)}
}

// insert stores a copy of doc under a fresh _id.
func (m *memStore) insert(coll *[]models.Document, doc models.Document) *store.InsertResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := maps.Clone(doc)
	if stored == nil {
		stored = models.Document{}
	}
	id := primitive.NewObjectID()
	stored["_id"] = id
	*coll = append(*coll, stored)
	return &store.InsertResult{Acknowledged: true, InsertedID: id}
}

func (m *memStore) where(coll []models.Document, field, value string) []models.Document {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.Document{}
	for _, d := range coll {
		if d[field] == value {
			out = append(out, d)
		}
	}
	return out
}

func findByID(coll []models.Document, id string) (int, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return -1, store.ErrInvalidID
	}
	for i := range coll {
		if coll[i]["_id"] == oid {
			return i, nil
		}
	}
	return -1, store.ErrNotFound
}

// -------- appointments --------

func (m *memStore) ListByDate(_ context.Context, date string) ([]models.Document, error) {
	return m.where(m.appointments, "date", date), nil
}

func (m *memStore) ListByEmail(_ context.Context, email string) ([]models.Document, error) {
	return m.where(m.appointments, "email", email), nil
}

func (m *memStore) Get(_ context.Context, id string) (models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := findByID(m.appointments, id)
	if err != nil {
		return nil, err
	}
	return maps.Clone(m.appointments[i]), nil
}

func (m *memStore) FindBySlot(_ context.Context, key domain.SlotKey) (models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ap := range m.appointments {
		if cast.ToString(ap["date"]) == cast.ToString(key.Date) &&
			cast.ToString(ap["barber"]) == cast.ToString(key.Barber) &&
			cast.ToString(ap["slot"]) == cast.ToString(key.Slot) {
			return maps.Clone(ap), nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) Create(_ context.Context, doc models.Document) (*store.InsertResult, error) {
	return m.insert(&m.appointments, doc), nil
}

func (m *memStore) Delete(_ context.Context, id string) (*store.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := findByID(m.appointments, id)
	if err == store.ErrNotFound {
		return &store.DeleteResult{Acknowledged: true}, nil
	}
	if err != nil {
		return nil, err
	}
	m.appointments = append(m.appointments[:i], m.appointments[i+1:]...)
	return &store.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (m *memStore) MarkPaid(_ context.Context, id, tx string) (*store.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := findByID(m.appointments, id)
	if err == store.ErrNotFound {
		return &store.UpdateResult{Acknowledged: true}, nil
	}
	if err != nil {
		return nil, err
	}
	m.appointments[i]["payment"] = "paid"
	m.appointments[i]["transactionId"] = tx
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memStore) CreatePayment(_ context.Context, doc models.Document) (*store.InsertResult, error) {
	return m.insert(&m.payments, doc), nil
}

func (m *memStore) ListPaymentsByEmail(_ context.Context, email string) ([]models.Document, error) {
	return m.where(m.payments, "email", email), nil
}

// -------- catalog --------

func (m *memStore) ListServices(context.Context) ([]models.Document, error) { return m.services, nil }

func (m *memStore) CreateService(_ context.Context, doc models.Document) (*store.InsertResult, error) {
	return m.insert(&m.services, doc), nil
}

func (m *memStore) ListBarbers(context.Context) ([]models.Document, error) { return m.barbers, nil }

func (m *memStore) GetBarber(_ context.Context, id string) (models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := findByID(m.barbers, id)
	if err != nil {
		return nil, err
	}
	return m.barbers[i], nil
}

func (m *memStore) CreateBarber(_ context.Context, doc models.Document) (*store.InsertResult, error) {
	return m.insert(&m.barbers, doc), nil
}

func (m *memStore) ListReviews(context.Context) ([]models.Document, error) { return m.reviews, nil }

func (m *memStore) ListReviewsByEmail(_ context.Context, email string) ([]models.Document, error) {
	return m.where(m.reviews, "email", email), nil
}

func (m *memStore) ListReviewsByBarberEmail(_ context.Context, email string) ([]models.Document, error) {
	return m.where(m.reviews, "barberEmail", email), nil
}

func (m *memStore) CreateReview(_ context.Context, doc models.Document) (*store.InsertResult, error) {
	return m.insert(&m.reviews, doc), nil
}

func (m *memStore) ListManagers(context.Context) ([]models.Document, error) { return m.managers, nil }

func (m *memStore) CreateManager(_ context.Context, doc models.Document) (*store.InsertResult, error) {
	return m.insert(&m.managers, doc), nil
}

func (m *memStore) ListFeatures(context.Context) ([]models.Document, error) {
	return []models.Document{}, nil
}

// -------- users --------

func (m *memStore) List(context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.User{}
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (m *memStore) Upsert(_ context.Context, email string, u models.User) (*store.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.users[email]
	if !ok {
		m.users[email] = u
		return &store.UpdateResult{Acknowledged: true, UpsertedCount: 1}, nil
	}
	if u.Name != "" {
		existing.Name = u.Name
	}
	m.users[email] = existing
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memStore) SetImage(_ context.Context, email, img string) (*store.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.users[email]
	u.Img = img
	m.users[email] = u
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memStore) ChangeRoleAs(_ context.Context, requester string, allowed user.Policy, target, role string) (*store.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.users[requester]
	if !ok || !allowed(r) {
		return nil, user.ErrForbidden
	}
	t, ok := m.users[target]
	if !ok {
		return &store.UpdateResult{Acknowledged: true}, nil
	}
	t.Role = role
	m.users[target] = t
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

// -------- collaborators --------

type fakeProvider struct {
	calls int
}

func (p *fakeProvider) CreateIntent(_ context.Context, in payment.Intent) (string, error) {
	p.calls++
	return "pi_secret_" + in.IdempotencyKey, nil
}

type failingSender struct {
	attempts int
}

func (s *failingSender) Send(context.Context, mailer.Message) error {
	s.attempts++
	return context.DeadlineExceeded
}
