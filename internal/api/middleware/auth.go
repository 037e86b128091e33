package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/domain"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxEmployeeID   = "employee_id"
	CtxEmployeeName = "employee_name"
	CtxSessionToken = "session_token"
)

// Auth resolves the bearer token against the session store and injects
// the session identity into context. Missing header, malformed header,
// unknown token, and expired token are all a uniform 401.
func Auth(sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			sess, ok := sessions.Resolve(parts[1])
			if !ok {
				// Mapped to 401 by the error handler; unknown and expired
				// tokens are indistinguishable.
				return domain.ErrSessionNotFound
			}

			c.Set(CtxEmployeeID, sess.EmployeeID)
			c.Set(CtxEmployeeName, sess.EmployeeName)
			c.Set(CtxSessionToken, sess.Token)

			return next(c)
		}
	}
}
