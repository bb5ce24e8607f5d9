package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/config"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/payment"
	"github.com/BruksfildServices01/barbershop-api/internal/token"
)

type testServer struct {
	router   *gin.Engine
	store    *memStore
	tokens   *token.Service
	provider *fakeProvider
	mail     *failingSender
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := newMemStore()
	tokens := token.NewService("test-secret", 0)
	provider := &fakeProvider{}
	mail := &failingSender{}
	dispatcher := audit.NewDispatcher(audit.LogSink{}, 16)
	t.Cleanup(dispatcher.Close)

	r := gin.New()
	RegisterRoutes(r, Deps{
		Config: &config.Config{PaymentCurrency: "usd", Timezone: "UTC"},
		Tokens: tokens,

		Appointments: st,
		Payments:     st,
		Barbers:      st,
		Catalog:      st,
		Users:        st,

		Audit:            dispatcher,
		Mailer:           mail,
		PaymentProvider:  provider,
		IdempotencyCache: payment.NewMemoryCache(),
	})

	return &testServer{router: r, store: st, tokens: tokens, provider: provider, mail: mail}
}

func (s *testServer) do(t *testing.T, method, path, email string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		tok, err := s.tokens.Issue(email)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp := httptest.NewRecorder()
	s.router.ServeHTTP(resp, req)
	return resp
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", resp.Body.String(), err)
	}
	return out
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)
	foreign, _ := token.NewService("someone-else", 0).Issue("a@example.com")

	protected := []struct{ method, path string }{
		{http.MethodGet, "/appointments?date=x"},
		{http.MethodGet, "/myAppointments?email=a@example.com"},
		{http.MethodGet, "/users"},
		{http.MethodPut, "/users/manager/b@example.com"},
		{http.MethodGet, "/manager/a@example.com"},
		{http.MethodPost, "/create-payment-intent"},
		{http.MethodPatch, "/appointment-update?id=x"},
	}

	for _, p := range protected {
		resp := s.do(t, p.method, p.path, "", nil)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without token: expected 401, got %d", p.method, p.path, resp.Code)
		}
		if msg := decode[map[string]string](t, resp)["message"]; msg != "UnAuthorized access" {
			t.Fatalf("unexpected 401 message %q", msg)
		}

		req := httptest.NewRequest(p.method, p.path, nil)
		req.Header.Set("Authorization", "Bearer "+foreign)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s %s with foreign token: expected 403, got %d", p.method, p.path, rec.Code)
		}
	}
}

func TestSelfScopedReadRejectsOtherEmail(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{
		"/myAppointments?email=x@example.com",
		"/user?email=x@example.com",
		"/myReviews?email=x@example.com",
		"/myCustomerReviews?email=x@example.com",
		"/myPayments?email=x@example.com",
	} {
		resp := s.do(t, http.MethodGet, path, "y@example.com", nil)
		if resp.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403, got %d", path, resp.Code)
		}
		if msg := decode[map[string]string](t, resp)["message"]; msg != "forbidden access" {
			t.Fatalf("%s: unexpected message %q", path, msg)
		}
	}

	resp := s.do(t, http.MethodGet, "/myAppointments?email=y@example.com", "y@example.com", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("own appointments: expected 200, got %d", resp.Code)
	}
}

func TestCreateAppointmentTwice(t *testing.T) {
	s := newTestServer(t)
	body := map[string]any{"date": "Oct 20, 2026", "barber": "Marcus", "slot": "10:00 AM", "email": "a@example.com"}

	first := decode[map[string]any](t, s.do(t, http.MethodPost, "/appointments", "", body))
	if first["success"] != true {
		t.Fatalf("expected success, got %v", first)
	}

	second := decode[map[string]any](t, s.do(t, http.MethodPost, "/appointments", "", body))
	if second["success"] != false {
		t.Fatalf("expected success=false, got %v", second)
	}
	ap, ok := second["appointment"].(map[string]any)
	if !ok || ap["slot"] != "10:00 AM" {
		t.Fatalf("expected existing appointment, got %v", second["appointment"])
	}
}

func TestAvailableRemovesBookedSlot(t *testing.T) {
	s := newTestServer(t)
	s.store.barbers = []models.Document{{"name": "Marcus", "slots": []any{"a", "b", "c"}, "img": "m.webp"}}
	s.store.appointments = []models.Document{{"date": "D", "barber": "Marcus", "slot": "b"}}

	resp := s.do(t, http.MethodGet, "/available?date=D", "", nil)
	barbers := decode[[]struct {
		Img   string   `json:"img"`
		Slots []string `json:"slots"`
	}](t, resp)
	if len(barbers) != 1 || len(barbers[0].Slots) != 2 || barbers[0].Slots[0] != "a" || barbers[0].Slots[1] != "c" {
		t.Fatalf("expected [a c], got %+v", barbers)
	}
	if barbers[0].Img != "m.webp" {
		t.Fatal("barber fields must pass through")
	}
}

func TestCreateBodiesAreStoredVerbatim(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/services", "", map[string]any{
		"name":     "Cut",
		"price":    "25",
		"duration": "30m",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("service: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if got := s.store.services[0]; got["price"] != "25" || got["duration"] != "30m" {
		t.Fatalf("service stored with changes: %v", got)
	}

	resp = s.do(t, http.MethodPost, "/appointments", "", map[string]any{
		"date":      "D",
		"barber":    "Marcus",
		"slot":      "a",
		"serviceId": "svc-1",
		"barberImg": "m.webp",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("appointment: expected 200, got %d", resp.Code)
	}
	if got := s.store.appointments[0]; got["serviceId"] != "svc-1" || got["barberImg"] != "m.webp" {
		t.Fatalf("appointment stored with changes: %v", got)
	}

	resp = s.do(t, http.MethodPost, "/reviews", "", map[string]any{"rating": "5", "tags": []string{"fade"}})
	if resp.Code != http.StatusOK {
		t.Fatalf("review: expected 200, got %d", resp.Code)
	}
	if got := s.store.reviews[0]; got["rating"] != "5" || got["tags"] == nil {
		t.Fatalf("review stored with changes: %v", got)
	}

	listed := decode[[]map[string]any](t, s.do(t, http.MethodGet, "/services", "", nil))
	if len(listed) != 1 || listed[0]["duration"] != "30m" {
		t.Fatalf("expected full service document, got %v", listed)
	}
}

func TestGrantManagerRoute(t *testing.T) {
	s := newTestServer(t)
	s.store.users["boss@example.com"] = models.User{Email: "boss@example.com", Role: "manager"}
	s.store.users["barber@example.com"] = models.User{Email: "barber@example.com", Role: "barber"}
	s.store.users["t@example.com"] = models.User{Email: "t@example.com"}

	resp := s.do(t, http.MethodPut, "/users/manager/t@example.com", "barber@example.com", nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("barber requester: expected 403, got %d", resp.Code)
	}
	if s.store.users["t@example.com"].Role != "" {
		t.Fatal("denied request must not mutate")
	}

	resp = s.do(t, http.MethodPut, "/users/manager/t@example.com", "boss@example.com", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("manager requester: expected 200, got %d", resp.Code)
	}
	if s.store.users["t@example.com"].Role != "barber" {
		t.Fatalf("expected barber role, got %q", s.store.users["t@example.com"].Role)
	}

	check := decode[map[string]bool](t, s.do(t, http.MethodGet, "/checkbarber/t@example.com", "boss@example.com", nil))
	if !check["barber"] {
		t.Fatalf("expected barber check true, got %v", check)
	}
}

func TestUpsertUserIssuesToken(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPut, "/users/new@example.com", "", map[string]string{"name": "New"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	out := decode[struct {
		Token string `json:"token"`
	}](t, resp)

	claims, err := s.tokens.Verify(out.Token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Email != "new@example.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
	if _, ok := s.store.users["new@example.com"]; !ok {
		t.Fatal("user must be created")
	}
}

func TestFinalizePaymentSurvivesEmailFailure(t *testing.T) {
	s := newTestServer(t)
	res, err := s.store.Create(context.Background(), models.Document{
		"date": "D", "barber": "Marcus", "slot": "a", "email": "c@example.com", "service": "Cut", "price": 20,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	id := res.InsertedID.(primitive.ObjectID).Hex()

	resp := s.do(t, http.MethodPatch, "/appointment-update?id="+id, "c@example.com",
		map[string]string{"transactionId": "pi_9"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if s.mail.attempts != 1 {
		t.Fatalf("expected one email attempt, got %d", s.mail.attempts)
	}
	if got := s.store.appointments[0]; got["payment"] != "paid" || got["transactionId"] != "pi_9" {
		t.Fatalf("appointment not paid: %+v", got)
	}
	if len(s.store.payments) != 1 || s.store.payments[0]["transactionId"] != "pi_9" {
		t.Fatalf("payment not recorded: %+v", s.store.payments)
	}
}

func TestFinalizePaymentUnknownAppointmentKeepsPayment(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPatch, "/appointment-update?id="+primitive.NewObjectID().Hex(), "c@example.com",
		map[string]any{"transactionId": "pi_1", "email": "c@example.com", "price": "20"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if len(s.store.payments) != 1 || s.store.payments[0]["price"] != "20" {
		t.Fatalf("payment must be recorded as sent, got %+v", s.store.payments)
	}

	mine := decode[[]map[string]any](t, s.do(t, http.MethodGet, "/myPayments?email=c@example.com", "c@example.com", nil))
	if len(mine) != 1 || mine[0]["transactionId"] != "pi_1" {
		t.Fatalf("expected payment in history, got %v", mine)
	}
}

func TestCreatePaymentIntentIdempotency(t *testing.T) {
	s := newTestServer(t)
	send := func(email string) string {
		tok, _ := s.tokens.Issue(email)
		req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(`{"price": 12.5}`))
		req.Header.Set("Authorization", "Bearer "+tok)
		req.Header.Set("Idempotency-Key", "order-1")
		resp := httptest.NewRecorder()
		s.router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.Code)
		}
		return decode[map[string]string](t, resp)["clientSecret"]
	}

	a, b := send("c@example.com"), send("c@example.com")
	if a == "" || a != b {
		t.Fatalf("expected identical secrets, got %q %q", a, b)
	}
	if s.provider.calls != 1 {
		t.Fatalf("expected one provider call, got %d", s.provider.calls)
	}

	if other := send("x@example.com"); other == a {
		t.Fatal("another user reusing the key must not receive the cached secret")
	}
	if s.provider.calls != 2 {
		t.Fatalf("expected a second provider call, got %d", s.provider.calls)
	}
}

func TestAvatarUploadWithoutStorage(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPut, "/users/me@example.com/avatar", "me@example.com", nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestAuditLogsRequireChairman(t *testing.T) {
	s := newTestServer(t)
	s.store.users["m@example.com"] = models.User{Email: "m@example.com", Role: "manager"}
	s.store.users["c@example.com"] = models.User{Email: "c@example.com", Position: "chairman"}

	if resp := s.do(t, http.MethodGet, "/audit-logs", "m@example.com", nil); resp.Code != http.StatusForbidden {
		t.Fatalf("manager: expected 403, got %d", resp.Code)
	}
	if resp := s.do(t, http.MethodGet, "/audit-logs", "c@example.com", nil); resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("chairman without audit db: expected 503, got %d", resp.Code)
	}
}
