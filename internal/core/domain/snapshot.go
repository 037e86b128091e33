package domain

import (
	"strings"
	"time"
)

// Snapshot is the immutable in-memory bundle produced by one reload cycle:
// every instructor row, the program rule lookup, and the global messages.
// A snapshot is never mutated after construction — reloads build a fresh
// one and swap a single pointer, so a request observes either the old or
// the new world, never a mix.
type Snapshot struct {
	// ID identifies the reload cycle that produced this snapshot; it only
	// appears in logs.
	ID string

	// Instructors indexes records by trimmed employee id. Rows without an
	// id are kept in All but absent here, so they can never log in.
	Instructors map[string]*Instructor

	// All preserves every parsed row in sheet order.
	All []*Instructor

	Rules    ProgramRules
	Messages []GlobalMessage
	LoadedAt time.Time
}

// Lookup returns the instructor for the given employee id after trimming,
// exact string match only.
func (s *Snapshot) Lookup(employeeID string) (*Instructor, bool) {
	inst, ok := s.Instructors[strings.TrimSpace(employeeID)]
	return inst, ok
}
