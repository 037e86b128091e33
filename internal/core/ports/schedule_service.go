package ports

import "github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/domain"

// Schedule is the full payload served to an authenticated instructor.
type Schedule struct {
	EmployeeName   string                 `json:"employeeName"`
	Activities     []domain.Activity      `json:"activities"`
	ProgramRules   domain.ProgramRules    `json:"programRules"`
	GlobalMessages []domain.GlobalMessage `json:"globalMessages"`
}

// ScheduleService assembles an instructor's weekly schedule from the
// current snapshot.
type ScheduleService interface {
	// ScheduleFor returns the schedule for the given employee id, or
	// domain.ErrInstructorNotFound when the id no longer resolves to a
	// record in the current snapshot.
	ScheduleFor(employeeID string) (*Schedule, error)
}
