package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/api/middleware"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/ports"
)

type ScheduleHandler struct {
	schedules ports.ScheduleService
}

func NewScheduleHandler(schedules ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

// MySchedule returns the authenticated instructor's weekly schedule.
//
// A 404 here means the session is still live but its employee id no
// longer resolves to a record — the row was removed by a reload.
//
// @Summary      Get my schedule
// @Tags         schedule
// @Produce      json
// @Success      200  {object}  ports.Schedule
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/me/schedule [get]
func (h *ScheduleHandler) MySchedule(c echo.Context) error {
	employeeID, _ := c.Get(middleware.CtxEmployeeID).(string)
	if employeeID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	schedule, err := h.schedules.ScheduleFor(employeeID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, schedule)
}
