package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/api/middleware"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/domain"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Code       string `json:"code" validate:"required"`
}

type loginResponse struct {
	Token        string `json:"token"`
	EmployeeName string `json:"employeeName"`
}

// Login authenticates an instructor and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Employee credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(req.EmployeeID, req.Code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Unknown id and wrong code deliberately look the same.
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:        result.Token,
		EmployeeName: result.EmployeeName,
	})
}

// Logout revokes the caller's session.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get(middleware.CtxSessionToken).(string)
	h.authService.Logout(token)
	return c.NoContent(http.StatusNoContent)
}
