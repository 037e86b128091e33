package ports

import "github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/domain"

// SessionStore is the process-lifetime token -> identity mapping.
type SessionStore interface {
	// Create mints an opaque random token for the given identity with an
	// absolute expiry fixed at creation time.
	Create(employeeID, employeeName string) (string, error)

	// Resolve returns the live session for token, or false when the token
	// is unknown or expired. Expired entries are deleted as a side effect.
	Resolve(token string) (*domain.Session, bool)

	// Revoke removes the entry unconditionally.
	Revoke(token string)
}
