package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/domain"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/ports"
)

// ScheduleService assembles schedule payloads from the current snapshot.
type ScheduleService struct {
	snapshots ports.SnapshotSource
	logger    zerolog.Logger
}

func NewScheduleService(snapshots ports.SnapshotSource, logger zerolog.Logger) *ScheduleService {
	return &ScheduleService{snapshots: snapshots, logger: logger}
}

// ScheduleFor returns the schedule for employeeID from the current
// snapshot. A session can outlive its backing record (the record may
// disappear on a reload), in which case ErrInstructorNotFound is returned.
func (s *ScheduleService) ScheduleFor(employeeID string) (*ports.Schedule, error) {
	snap := s.snapshots.Current()

	inst, ok := snap.Lookup(employeeID)
	if !ok {
		return nil, domain.ErrInstructorNotFound
	}

	return &ports.Schedule{
		EmployeeName:   inst.Name,
		Activities:     ExtractActivities(inst),
		ProgramRules:   snap.Rules,
		GlobalMessages: snap.Messages,
	}, nil
}

// ExtractActivities flattens the record's field groups into activities,
// in group index order. A group is emitted only when its date cell is
// populated and its cancellation cell is empty — cancellation suppresses
// the activity even when a date is present. Dates that fail to parse under
// every known layout drop the group.
func ExtractActivities(inst *domain.Instructor) []domain.Activity {
	activities := make([]domain.Activity, 0, len(inst.Groups))
	for _, g := range inst.Groups {
		if strings.TrimSpace(g.Date) == "" {
			continue
		}
		if strings.TrimSpace(g.Cancelled) != "" {
			continue
		}
		date, ok := parseDate(g.Date)
		if !ok {
			continue
		}
		program := strings.TrimSpace(g.Program)
		activities = append(activities, domain.Activity{
			Date:       date,
			StartTime:  strings.TrimSpace(g.StartTime),
			EndTime:    strings.TrimSpace(g.EndTime),
			Manager:    strings.TrimSpace(g.Manager),
			School:     strings.TrimSpace(g.School),
			Class:      strings.TrimSpace(g.Class),
			Authority:  strings.TrimSpace(g.Authority),
			Program:    program,
			ProgramKey: domain.ProgramKey(program),
		})
	}
	return activities
}

// dateLayouts covers the shapes seen in real instructor sheets: the
// reader's canonical ISO form plus manually-typed cells.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02.01.2006",
	"2.1.2006",
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	if t, ok := parseSerialDate(raw); ok {
		return t, true
	}
	return time.Time{}, false
}

// parseSerialDate handles date cells that surface as raw Excel serial
// numbers. The plausible range maps to the years ~1954-2119, which keeps
// ordinary small numbers from being misread as dates.
func parseSerialDate(raw string) (time.Time, bool) {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil || serial < 20000 || serial > 80000 {
		return time.Time{}, false
	}
	// Excel's day zero, accounting for the historical leap-year bug.
	epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	return epoch.Add(time.Duration(serial * float64(24*time.Hour))), true
}
