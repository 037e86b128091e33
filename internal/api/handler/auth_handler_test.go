package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/api/middleware"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/domain"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/ports"
)

type stubAuthService struct {
	loginFn func(employeeID, code string) (*ports.LoginResult, error)
	revoked []string
}

func (s *stubAuthService) Login(employeeID, code string) (*ports.LoginResult, error) {
	return s.loginFn(employeeID, code)
}

func (s *stubAuthService) Logout(token string) {
	s.revoked = append(s.revoked, token)
}

func newLoginContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(employeeID, code string) (*ports.LoginResult, error) {
			if employeeID != "1001" || code != "abc123" {
				t.Fatalf("unexpected args: %s %s", employeeID, code)
			}
			return &ports.LoginResult{Token: "token123", EmployeeName: "Dana"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newLoginContext(e, `{"employeeId":"1001","code":"abc123"}`)
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
	if resp["token"] != "token123" || resp["employeeName"] != "Dana" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(employeeID, code string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	for _, body := range []string{`{}`, `{"employeeId":"1001"}`, `{"code":"abc123"}`} {
		c, _ := newLoginContext(e, body)
		err := handler.Login(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_Login_MalformedPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(employeeID, code string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newLoginContext(e, "not-json")
	err := handler.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		loginFn: func(employeeID, code string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newLoginContext(e, `{"employeeId":"9999","code":"bad"}`)
	err := handler.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxSessionToken, "token123")

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
	if len(stub.revoked) != 1 || stub.revoked[0] != "token123" {
		t.Fatalf("token not revoked: %v", stub.revoked)
	}
}
