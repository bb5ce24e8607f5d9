package user

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/user"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/store"
)

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemoryUsers(seed ...models.User) *memoryUsers {
	m := &memoryUsers{users: make(map[string]models.User)}
	for _, u := range seed {
		m.users[u.Email] = u
	}
	return m
}

func (m *memoryUsers) List(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (m *memoryUsers) Upsert(_ context.Context, email string, u models.User) (*store.UpdateResult, error) {
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
	if u.Img != "" {
		existing.Img = u.Img
	}
	m.users[email] = existing
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memoryUsers) SetImage(_ context.Context, email, img string) (*store.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.users[email]
	u.Email = email
	u.Img = img
	m.users[email] = u
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memoryUsers) ChangeRoleAs(
	_ context.Context,
	requester string,
	allowed domain.Policy,
	target string,
	role string,
) (*store.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.users[requester]
	if !ok || !allowed(r) {
		return nil, domain.ErrForbidden
	}
	t, ok := m.users[target]
	if !ok {
		return &store.UpdateResult{Acknowledged: true}, nil
	}
	t.Role = role
	m.users[target] = t
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

type memorySink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *memorySink) Record(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *memorySink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}
