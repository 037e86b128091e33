package ports

import "github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/domain"

// SnapshotSource hands out the current data snapshot. Handlers grab the
// snapshot once at the start of a request and work against that value, so
// a reload swapping the pointer mid-request cannot mix old and new data.
type SnapshotSource interface {
	Current() *domain.Snapshot
}
