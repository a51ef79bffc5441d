package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rentaride/car-rental-api/internal/domain"
	"github.com/rentaride/car-rental-api/internal/security"
	"github.com/rentaride/car-rental-api/internal/service"
	"github.com/rentaride/car-rental-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCustomersStore is an in-memory stand-in for the Postgres store.
type memCustomersStore struct {
	byEmail map[string]*domain.Customer
	nextID  int64
}

func newMemCustomersStore() *memCustomersStore {
	return &memCustomersStore{byEmail: map[string]*domain.Customer{}, nextID: 1}
}

func (m *memCustomersStore) GetAll(ctx context.Context) ([]domain.Customer, error) {
	out := []domain.Customer{}
	for _, c := range m.byEmail {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memCustomersStore) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	for _, c := range m.byEmail {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCustomersStore) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return m.byEmail[email], nil
}

func (m *memCustomersStore) Create(ctx context.Context, c *domain.Customer) error {
	if _, ok := m.byEmail[c.Email]; ok {
		return domain.ErrEmailAlreadyExists()
	}
	c.ID = m.nextID
	m.nextID++
	c.CreatedAt = time.Now()
	m.byEmail[c.Email] = c
	return nil
}

func (m *memCustomersStore) Update(ctx context.Context, id int64, patch *domain.CustomerPatch) (*domain.Customer, error) {
	c, _ := m.GetByID(ctx, id)
	if c == nil {
		return nil, nil
	}
	if patch.FirstName != nil {
		c.FirstName = *patch.FirstName
	}
	if patch.PhoneNumber != nil {
		c.PhoneNumber = *patch.PhoneNumber
	}
	return c, nil
}

func (m *memCustomersStore) MarkVerified(ctx context.Context, id int64) error {
	for _, c := range m.byEmail {
		if c.ID == id {
			c.IsVerified = true
			c.VerificationCode = nil
		}
	}
	return nil
}

func (m *memCustomersStore) Delete(ctx context.Context, id int64) (bool, error) {
	for email, c := range m.byEmail {
		if c.ID == id {
			delete(m.byEmail, email)
			return true, nil
		}
	}
	return false, nil
}

func (m *memCustomersStore) WithBookings(ctx context.Context) ([]domain.CustomerWithBooking, error) {
	return []domain.CustomerWithBooking{}, nil
}

func (m *memCustomersStore) WithReservations(ctx context.Context) ([]domain.CustomerWithReservation, error) {
	return []domain.CustomerWithReservation{}, nil
}

type noopPublisher struct{}

func (noopPublisher) PublishVerificationEmail(ctx context.Context, email, name, code string) error {
	return nil
}
func (noopPublisher) PublishWelcomeEmail(ctx context.Context, email, name string) error { return nil }

type testServer struct {
	router  http.Handler
	store   *memCustomersStore
	cars    *memCarsStore
	issuer  *security.TokenIssuer
	cleanup func()
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	customers := newMemCustomersStore()
	cars := newMemCarsStore()
	storage := store.Storage{Customers: customers, Cars: cars}

	hasher := security.NewPasswordHasher()
	issuer := security.NewTokenIssuer("test-secret", 72*time.Hour)
	authSvc := service.NewAuthService(storage, hasher, issuer, noopPublisher{})
	carSvc := service.NewCarService(storage, t.TempDir())

	router := NewRouter(RouterDeps{
		Store:  storage,
		Auth:   authSvc,
		Cars:   carSvc,
		Issuer: issuer,
		Hasher: hasher,
		Redis:  rdb,
	})

	return &testServer{
		router:  router,
		store:   customers,
		cars:    cars,
		issuer:  issuer,
		cleanup: func() { _ = rdb.Close() },
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	ts := newTestServer(t)
	defer ts.cleanup()

	payload := map[string]string{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@gmail.com",
		"password":  "plainpassword",
	}

	rec := ts.do(t, http.MethodPost, "/customers/register", payload, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Customer registered successfully. Please check your email for verification code.", body["message"])

	customer := body["customer"].(map[string]any)
	assert.Equal(t, "jane@gmail.com", customer["email"])
	assert.Equal(t, "customer", customer["role"])
	assert.Equal(t, false, customer["isVerified"])

	stored := ts.store.byEmail["jane@gmail.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "plainpassword", stored.Password, "plaintext must never hit storage")
}

func TestRegisterEndpoint_MissingPassword(t *testing.T) {
	ts := newTestServer(t)
	defer ts.cleanup()

	rec := ts.do(t, http.MethodPost, "/customers/register", map[string]string{
		"firstName": "Jane", "lastName": "Doe", "email": "jane@gmail.com",
	}, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Password is required", decodeBody(t, rec)["error"])
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	defer ts.cleanup()

	payload := map[string]string{
		"firstName": "Jane", "lastName": "Doe",
		"email": "jane@gmail.com", "password": "plainpassword",
	}
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/customers/register", payload, "").Code)

	rec := ts.do(t, http.MethodPost, "/customers/register", payload, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already registered", decodeBody(t, rec)["error"])
}

func TestVerifyAndLoginFlow(t *testing.T) {
	ts := newTestServer(t)
	defer ts.cleanup()

	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/customers/register", map[string]string{
		"firstName": "Jane", "lastName": "Doe",
		"email": "jane@gmail.com", "password": "plainpassword",
	}, "").Code)

	login := map[string]string{"email": "jane@gmail.com", "password": "plainpassword"}

	// unverified login blocked with the specific message
	rec := ts.do(t, http.MethodPost, "/customers/login", login, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Please verify your email before logging in", decodeBody(t, rec)["error"])

	// wrong code rejected
	code := *ts.store.byEmail["jane@gmail.com"].VerificationCode
	rec = ts.do(t, http.MethodPost, "/customers/verify", map[string]string{
		"email": "jane@gmail.com", "verificationCode": "wrong",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid verification code", decodeBody(t, rec)["error"])

	// correct code verifies
	rec = ts.do(t, http.MethodPost, "/customers/verify", map[string]string{
		"email": "jane@gmail.com", "verificationCode": code,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Email verified successfully", decodeBody(t, rec)["message"])
	assert.Nil(t, ts.store.byEmail["jane@gmail.com"].VerificationCode, "code cleared after verification")

	// login succeeds with the customer payload key
	rec = ts.do(t, http.MethodPost, "/customers/login", login, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Customer login successful", body["message"])
	assert.NotEmpty(t, body["token"])
	require.Contains(t, body, "customer")
	assert.NotContains(t, body, "admin")

	// wrong password and unknown email look identical
	recWrong := ts.do(t, http.MethodPost, "/customers/login", map[string]string{
		"email": "jane@gmail.com", "password": "nope",
	}, "")
	recUnknown := ts.do(t, http.MethodPost, "/customers/login", map[string]string{
		"email": "nobody@gmail.com", "password": "nope",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, recWrong.Code)
	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	assert.Equal(t, decodeBody(t, recWrong)["error"], decodeBody(t, recUnknown)["error"])
}

func TestAdminCreateAndLogin(t *testing.T) {
	ts := newTestServer(t)
	defer ts.cleanup()

	rec := ts.do(t, http.MethodPost, "/admin/create", map[string]string{
		"firstName": "Root", "lastName": "Admin",
		"email": "root@gmail.com", "password": "adminpass",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Admin created successfully", body["message"])
	admin := body["admin"].(map[string]any)
	assert.Equal(t, true, admin["isVerified"], "admins are pre-verified")

	rec = ts.do(t, http.MethodPost, "/customers/login", map[string]string{
		"email": "root@gmail.com", "password": "adminpass",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, "Admin login successful", body["message"])
	require.Contains(t, body, "admin")
	assert.NotContains(t, body, "customer")
}

func TestCustomerOwnership(t *testing.T) {
	ts := newTestServer(t)
	defer ts.cleanup()

	ts.store.byEmail["jane@gmail.com"] = &domain.Customer{
		ID: 1, FirstName: "Jane", Email: "jane@gmail.com",
		Role: domain.RoleCustomer, IsVerified: true,
	}
	ts.store.byEmail["john@gmail.com"] = &domain.Customer{
		ID: 2, FirstName: "John", Email: "john@gmail.com",
		Role: domain.RoleCustomer, IsVerified: true,
	}

	janeToken := issueTestToken(t, ts.issuer, domain.RoleCustomer, 1)
	adminToken := issueTestToken(t, ts.issuer, domain.RoleAdmin, 99)

	// own profile readable
	rec := ts.do(t, http.MethodGet, "/customers/1", nil, janeToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	// someone else's profile is not
	rec = ts.do(t, http.MethodGet, "/customers/2", nil, janeToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied", decodeBody(t, rec)["error"])

	// admins read anyone
	rec = ts.do(t, http.MethodGet, "/customers/2", nil, adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	// list is admin only
	rec = ts.do(t, http.MethodGet, "/customers", nil, janeToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = ts.do(t, http.MethodGet, "/customers", nil, adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCustomerDelete(t *testing.T) {
	ts := newTestServer(t)
	defer ts.cleanup()

	ts.store.byEmail["jane@gmail.com"] = &domain.Customer{
		ID: 1, FirstName: "Jane", Email: "jane@gmail.com",
		Role: domain.RoleCustomer, IsVerified: true,
	}
	adminToken := issueTestToken(t, ts.issuer, domain.RoleAdmin, 99)

	rec := ts.do(t, http.MethodDelete, "/customers/1", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Customer deleted successfully", decodeBody(t, rec)["message"])

	rec = ts.do(t, http.MethodDelete, "/customers/1", nil, adminToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Customer not found", decodeBody(t, rec)["error"])
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)
	defer ts.cleanup()

	rec := ts.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}
