package domain

import (
	"errors"
	"strings"
	"time"
)

// MaxFieldGroups is the number of repeated activity column groups an
// instructor row may carry (Date1..Date16 and friends).
const MaxFieldGroups = 16

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInstructorNotFound = errors.New("instructor not found")
var ErrSessionNotFound = errors.New("session not found or expired")

// FieldGroup is one potential activity as it appears in the source row:
// raw cell values, untrimmed, before any date parsing. A group with an
// empty Date is an unused slot; a non-empty Cancelled suppresses the
// activity regardless of date.
type FieldGroup struct {
	Date      string
	StartTime string
	EndTime   string
	Manager   string
	School    string
	Class     string
	Authority string
	Program   string
	Cancelled string
}

// Instructor models one row of the instructor spreadsheet after
// normalization. Credential material holds at most one of the supported
// schemes worth of data: the current argon2id hash plus salt, a legacy
// salted SHA digest, or a legacy bare SHA digest. Records are rebuilt
// wholesale on every reload and never mutated in place.
type Instructor struct {
	ID        string                     `json:"employeeId"`
	Name      string                     `json:"employeeName"`
	Hash      string                     `json:"-"`
	Salt      string                     `json:"-"`
	LegacySHA string                     `json:"-"`
	Groups    [MaxFieldGroups]FieldGroup `json:"-"`
}

// Activity is the per-request materialization of a populated, non-cancelled
// field group.
type Activity struct {
	Date       time.Time `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Manager    string    `json:"manager"`
	School     string    `json:"school"`
	Class      string    `json:"class"`
	Authority  string    `json:"authority"`
	Program    string    `json:"program"`
	ProgramKey string    `json:"programKey"`
}

// RuleNote is one note attached to a program meeting.
type RuleNote struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ProgramRules maps normalized program key -> meeting number -> notes,
// in the column order of the source sheet.
type ProgramRules map[string]map[int][]RuleNote

// GlobalMessage is a banner shown to every instructor.
type GlobalMessage struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// ProgramKey normalizes a program name for rule lookup: both the rule
// sheet and the instructor sheet go through this, so the two sides
// compare equal regardless of case or surrounding whitespace.
func ProgramKey(program string) string {
	return strings.ToLower(strings.TrimSpace(program))
}
