package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yaxhxv/todo-list-heyHomies/internal/api/middleware"
	"github.com/yaxhxv/todo-list-heyHomies/internal/core/domain"
)

type stubAuthService struct {
	user      *domain.User
	token     string
	err       error
	loggedOut []string
}

func (s *stubAuthService) Signup(_ context.Context, email, password, name string) (*domain.User, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.user, s.token, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*domain.User, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.user, s.token, nil
}

func (s *stubAuthService) CurrentUser(_ context.Context, userID string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	if s.err != nil {
		return s.err
	}
	s.loggedOut = append(s.loggedOut, token)
	return nil
}

func newEchoContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testUser() *domain.User {
	return &domain.User{
		ID:        "user_1",
		Email:     "alice@example.com",
		Name:      "Alice",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestAuthHandler_Signup_Created(t *testing.T) {
	svc := &stubAuthService{user: testUser(), token: "tok123"}
	h := NewAuthHandler(svc, time.Hour)

	c, rec := newEchoContext(t, http.MethodPost, "/api/auth/signup",
		`{"email":"alice@example.com","password":"pass123","name":"Alice"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Token != "tok123" {
		t.Fatalf("expected token in response, got %q", resp.Token)
	}
	if resp.User.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}

	cookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, middleware.SessionCookie+"=tok123") {
		t.Fatalf("expected session cookie, got %q", cookie)
	}
}

func TestAuthHandler_Signup_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"missing email", `{"password":"pass123","name":"Alice"}`, "email"},
		{"bad email", `{"email":"not-an-email","password":"pass123","name":"Alice"}`, "email"},
		{"short password", `{"email":"a@example.com","password":"abc","name":"Alice"}`, "password"},
		{"missing name", `{"email":"a@example.com","password":"pass123"}`, "name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newEchoContext(t, http.MethodPost, "/api/auth/signup", tc.body)

			err := h.Signup(c)
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if _, ok := ve.Fields[tc.field]; !ok {
				t.Fatalf("expected error on field %q, got %v", tc.field, ve.Fields)
			}
		})
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	svc := &stubAuthService{err: domain.ErrEmailInUse}
	h := NewAuthHandler(svc, time.Hour)

	c, _ := newEchoContext(t, http.MethodPost, "/api/auth/signup",
		`{"email":"alice@example.com","password":"pass123","name":"Alice"}`)

	if err := h.Signup(c); err != domain.ErrEmailInUse {
		t.Fatalf("expected ErrEmailInUse to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_OK(t *testing.T) {
	svc := &stubAuthService{user: testUser(), token: "tok456"}
	h := NewAuthHandler(svc, time.Hour)

	c, rec := newEchoContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"pass123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Token != "tok456" || resp.User.ID != "user_1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	svc := &stubAuthService{err: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc, time.Hour)

	c, _ := newEchoContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	svc := &stubAuthService{user: testUser()}
	h := NewAuthHandler(svc, time.Hour)

	c, rec := newEchoContext(t, http.MethodGet, "/api/auth/me", "")
	c.Set(middleware.CtxUserID, "user_1")

	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ID != "user_1" || resp.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", resp)
	}
}

func TestAuthHandler_Me_NoClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	c, _ := newEchoContext(t, http.MethodGet, "/api/auth/me", "")

	err := h.Me(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, time.Hour)

	c, rec := newEchoContext(t, http.MethodPost, "/api/auth/logout", "")
	c.Set(middleware.CtxToken, "tok123")

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(svc.loggedOut) != 1 || svc.loggedOut[0] != "tok123" {
		t.Fatalf("expected token to be revoked, got %v", svc.loggedOut)
	}

	cookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, middleware.SessionCookie+"=") {
		t.Fatalf("expected session cookie to be cleared, got %q", cookie)
	}
}
