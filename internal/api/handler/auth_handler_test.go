package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/notable/notes-api/internal/core/domain"
	"github.com/notable/notes-api/internal/core/ports"
)

type stubAuthService struct {
	token      string
	user       *domain.User
	err        error
	lastSignup ports.SignupInput
	lastEmail  string
}

func (s *stubAuthService) Signup(_ context.Context, input ports.SignupInput) (string, *domain.User, error) {
	s.lastSignup = input
	return s.token, s.user, s.err
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	s.lastEmail = email
	return s.token, s.user, s.err
}

func TestAuthHandlerSignup(t *testing.T) {
	svc := &stubAuthService{token: "tok", user: &domain.User{ID: "user-1", Email: "ada@example.com"}}
	h := NewAuthHandler(svc)

	c, rec := newNoteContext(t, http.MethodPost, "/auth/signup",
		`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"password1"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastSignup.Email != "ada@example.com" {
		t.Fatalf("input not bound: %+v", svc.lastSignup)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "tok" || resp.User == nil || resp.User.ID != "user-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandlerSignup_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newNoteContext(t, http.MethodPost, "/auth/signup",
		`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"short"}`)

	err := h.Signup(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandlerSignup_BadEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newNoteContext(t, http.MethodPost, "/auth/signup",
		`{"first_name":"Ada","last_name":"Lovelace","email":"not-an-email","password":"password1"}`)

	err := h.Signup(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	svc := &stubAuthService{token: "tok", user: &domain.User{ID: "user-1"}}
	h := NewAuthHandler(svc)

	c, rec := newNoteContext(t, http.MethodPost, "/auth/login",
		`{"email":"ada@example.com","password":"password1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastEmail != "ada@example.com" {
		t.Fatalf("email not bound")
	}
}

func TestAuthHandlerLogin_DomainErrorPassesThrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := newNoteContext(t, http.MethodPost, "/auth/login",
		`{"email":"ada@example.com","password":"wrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
