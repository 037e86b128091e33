package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/api/handler"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/api/middleware"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/ports"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/loader"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	authService ports.AuthService,
	scheduleService ports.ScheduleService,
	sessions ports.SessionStore,
	staticDir string,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("planner"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	authMiddleware := middleware.Auth(sessions)

	// --- API routes ---
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/logout", authHandler.Logout, authMiddleware)
	e.GET("/api/me/schedule", scheduleHandler.MySchedule, authMiddleware)

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Static assets ---
	// The source spreadsheets must never be downloadable, whatever the
	// filesystem looks like. Registered routes win over the static
	// wildcard, so these always answer 403.
	for _, name := range []string{loader.InstructorFile, loader.RulesFile, loader.MessagesFile} {
		e.GET("/"+name, blocked)
	}
	e.Static("/", staticDir)

	return e
}

func blocked(c echo.Context) error {
	return echo.NewHTTPError(http.StatusForbidden, "forbidden")
}
