package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
	"github.com/skyline-bms/apartment-portal/internal/core/ports"
	"github.com/skyline-bms/apartment-portal/internal/core/session"
)

type stubAuthenticator struct {
	loginFn       func(ctx context.Context, username, password string) (string, error)
	currentUserFn func(ctx context.Context, token string) (*domain.UserProfile, error)
	registerFn    func(ctx context.Context, in ports.RegisterInput) (*domain.UserProfile, error)
}

func (s *stubAuthenticator) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthenticator) CurrentUser(ctx context.Context, token string) (*domain.UserProfile, error) {
	return s.currentUserFn(ctx, token)
}

func (s *stubAuthenticator) Register(ctx context.Context, in ports.RegisterInput) (*domain.UserProfile, error) {
	return s.registerFn(ctx, in)
}

// memStorage is an in-memory ports.SessionStorage shared by all session ids
// in a test.
type memStorage struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string]string)}
}

func (m *memStorage) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStorage) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStorage) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func newTestManager(auth ports.Authenticator) *session.Manager {
	return session.NewManager(auth, func(sessionID string) ports.SessionStorage {
		return newMemStorage()
	}, zerolog.Nop())
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func residentProfile() *domain.UserProfile {
	return &domain.UserProfile{
		ID:              1,
		Username:        "alice",
		Email:           "alice@example.com",
		FullName:        "Alice Resident",
		ApartmentNumber: "4B",
		Role:            domain.RoleResident,
		IsActive:        true,
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthenticator{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			if username != "alice" || password != "secret123" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "token123", nil
		},
		currentUserFn: func(ctx context.Context, token string) (*domain.UserProfile, error) {
			if token != "token123" {
				t.Fatalf("unexpected token: %s", token)
			}
			return residentProfile(), nil
		},
	}
	handler := NewAuthHandler(newTestManager(stub), stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"alice","password":"secret123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	if resp["session_id"] == "" || resp["session_id"] == nil {
		t.Fatalf("expected a session id in response")
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" || user["role"] != "user" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthenticator{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(newTestManager(stub), stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"alice","password":"bad"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InactiveAccount(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthenticator{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			return "", domain.ErrUserInactive
		},
	}
	handler := NewAuthHandler(newTestManager(stub), stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"alice","password":"secret123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthenticator{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewAuthHandler(newTestManager(stub), stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthenticator{
		loginFn: func(ctx context.Context, username, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewAuthHandler(newTestManager(stub), stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthenticator{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.UserProfile, error) {
			if in.Username != "bob" || in.ApartmentNumber != "7A" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.UserProfile{Username: in.Username, Role: domain.RoleResident, IsActive: true}, nil
		},
	}
	handler := NewAuthHandler(newTestManager(stub), stub)

	body := strings.NewReader(`{"username":"bob","password":"secret123","email":"bob@example.com","full_name":"Bob Resident","apartment_number":"7A"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "bob" || resp["role"] != "user" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthenticator{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.UserProfile, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(newTestManager(stub), stub)

	body := strings.NewReader(`{"username":"bob","password":"secret123","email":"bob@example.com","full_name":"Bob Resident"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Register(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_WeakPassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthenticator{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.UserProfile, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(newTestManager(stub), stub)

	body := strings.NewReader(`{"username":"bob","password":"short","email":"bob@example.com","full_name":"Bob Resident"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout_Idempotent(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthenticator{}
	handler := NewAuthHandler(newTestManager(stub), stub)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.Header.Set("X-Session-ID", "sid-1")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler.Logout(c); err != nil {
			t.Fatalf("logout %d: %v", i, err)
		}
		if rec.Code != http.StatusNoContent {
			t.Fatalf("logout %d: expected 204, got %d", i, rec.Code)
		}
	}
}

func TestAuthHandler_Logout_NoSessionHeader(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthenticator{}
	handler := NewAuthHandler(newTestManager(stub), stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
