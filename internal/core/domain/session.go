package domain

import "time"

// Session is a bearer credential minted on login. Expiry is absolute and
// fixed at creation time; there is no renewal. Sessions live only in
// process memory and do not survive a restart.
type Session struct {
	Token        string
	EmployeeID   string
	EmployeeName string
	ExpiresAt    time.Time
}

// Expired reports whether the session is unusable at instant now.
// A session is dead at its exact expiry instant, not one tick later.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
