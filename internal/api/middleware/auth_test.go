package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/domain"
)

type stubSessions struct {
	sessions map[string]*domain.Session
}

func (s *stubSessions) Create(employeeID, employeeName string) (string, error) {
	return "", nil
}

func (s *stubSessions) Resolve(token string) (*domain.Session, bool) {
	sess, ok := s.sessions[token]
	return sess, ok
}

func (s *stubSessions) Revoke(token string) {
	delete(s.sessions, token)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{sessions: map[string]*domain.Session{
		"token123": {
			Token:        "token123",
			EmployeeID:   "1001",
			EmployeeName: "Dana",
			ExpiresAt:    time.Now().Add(time.Hour),
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(sessions)(func(c echo.Context) error {
		called = true
		if c.Get(CtxEmployeeID) != "1001" {
			t.Fatalf("employee id not set")
		}
		if c.Get(CtxEmployeeName) != "Dana" {
			t.Fatalf("employee name not set")
		}
		if c.Get(CtxSessionToken) != "token123" {
			t.Fatalf("token not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_CaseInsensitiveScheme(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{sessions: map[string]*domain.Session{
		"token123": {Token: "token123", EmployeeID: "1001"},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer token123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(sessions)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("lowercase scheme rejected: %v", err)
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{sessions: map[string]*domain.Session{}}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"no token part", "Bearer"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Auth(sessions)(func(c echo.Context) error {
			t.Fatalf("%s: next should not be called", tc.name)
			return nil
		})

		err := handler(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %v", tc.name, err)
		}
	}
}

func TestAuthMiddleware_UnknownToken(t *testing.T) {
	e := echo.New()
	sessions := &stubSessions{sessions: map[string]*domain.Session{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer nope")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(sessions)(func(c echo.Context) error {
		t.Fatalf("next should not be called")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
