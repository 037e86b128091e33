// Package loader builds immutable data snapshots from the three source
// spreadsheets. It owns the normalization rules: credential material
// derivation for instructor rows, the paired-column layout of program
// rules, and message defaulting. It never mutates an existing snapshot —
// every call produces a fresh one or fails whole.
package loader

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/domain"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/ports"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/service"
)

// Source file names under the data directory. The router blocks direct
// downloads of exactly these names.
const (
	InstructorFile = "InstructorData.xlsx"
	RulesFile      = "ProgramRules.xlsx"
	MessagesFile   = "GlobalMessages.xlsx"
)

// defaultSalt backs rows that carry neither an explicit salt nor an
// employee id. Changing it invalidates hashes derived from "Code" cells
// on such rows.
const defaultSalt = "weeklyplanner-static-salt"

// Loader reads and normalizes the three source sheets.
type Loader struct {
	reader ports.SheetReader
	logger zerolog.Logger
}

func New(reader ports.SheetReader, logger zerolog.Logger) *Loader {
	return &Loader{reader: reader, logger: logger}
}

// BuildSnapshot parses all three sheets and assembles a snapshot. Any
// parse failure fails the whole build: the caller keeps serving the
// previous snapshot, never a partially replaced one.
func (l *Loader) BuildSnapshot(ctx context.Context, dataDir string) (*domain.Snapshot, error) {
	instructorRows, err := l.reader.ReadObjects(ctx, filepath.Join(dataDir, InstructorFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", InstructorFile, err)
	}

	ruleRows, err := l.reader.ReadRows(ctx, filepath.Join(dataDir, RulesFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", RulesFile, err)
	}

	messageRows, err := l.reader.ReadObjects(ctx, filepath.Join(dataDir, MessagesFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", MessagesFile, err)
	}

	snap := &domain.Snapshot{
		ID:          uuid.NewString(),
		Instructors: make(map[string]*domain.Instructor),
		Rules:       l.buildRules(ruleRows),
		Messages:    buildMessages(messageRows),
		LoadedAt:    time.Now().UTC(),
	}

	for _, row := range instructorRows {
		inst := buildInstructor(row)
		snap.All = append(snap.All, inst)
		if inst.ID != "" {
			snap.Instructors[inst.ID] = inst
		}
	}

	return snap, nil
}

// buildInstructor normalizes one keyed instructor row. A salt is kept on
// the record only when something consumes it: an explicit Salt cell is
// always kept, and a row whose material needs salting (a stored hash or
// a plaintext "Code" upgrade) falls back to a per-employee salt derived
// from the id, then the static default. A row carrying only the bare
// legacy digest stays saltless so it can verify as such. A plaintext
// "Code" cell is upgraded to the current hash scheme here and the
// plaintext never enters the snapshot.
func buildInstructor(row map[string]string) *domain.Instructor {
	inst := &domain.Instructor{
		ID:        strings.TrimSpace(row["EmployeeID"]),
		Name:      strings.TrimSpace(row["Name"]),
		Hash:      strings.TrimSpace(row["Hash"]),
		Salt:      strings.TrimSpace(row["Salt"]),
		LegacySHA: strings.TrimSpace(row["Sha"]),
	}

	code := strings.TrimSpace(row["Code"])
	if inst.Salt == "" && (inst.Hash != "" || code != "") {
		inst.Salt = fallbackSalt(inst.ID)
	}

	if inst.Hash == "" && code != "" {
		inst.Hash = service.DeriveHash(code, inst.Salt)
	}

	for i := 0; i < domain.MaxFieldGroups; i++ {
		inst.Groups[i] = buildFieldGroup(row, i+1)
	}

	return inst
}

func fallbackSalt(id string) string {
	if id != "" {
		return "emp:" + id
	}
	return defaultSalt
}

// buildFieldGroup reads the suffixed columns for group n. Group 1 also
// accepts unsuffixed column names, a leftover of the original single
// activity layout.
func buildFieldGroup(row map[string]string, n int) domain.FieldGroup {
	suffix := strconv.Itoa(n)
	cell := func(name string) string {
		if v := row[name+suffix]; v != "" {
			return v
		}
		if n == 1 {
			return row[name]
		}
		return ""
	}

	return domain.FieldGroup{
		Date:      cell("Date"),
		StartTime: cell("StartTime"),
		EndTime:   cell("EndTime"),
		Manager:   cell("Manager"),
		School:    cell("School"),
		Class:     cell("Class"),
		Authority: cell("Authority"),
		Program:   cell("Program"),
		Cancelled: cell("Cancelled"),
	}
}

// buildRules parses the positional rule sheet. Row 0 is the header. Each
// data row is program key, meeting number, then (note type, note text)
// pairs in column order. A row whose meeting number is not a finite
// number is skipped on its own — it never aborts the reload.
func (l *Loader) buildRules(rows [][]string) domain.ProgramRules {
	rules := make(domain.ProgramRules)
	if len(rows) < 2 {
		return rules
	}

	for idx, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}

		key := domain.ProgramKey(row[0])
		if key == "" {
			continue
		}

		meeting, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil || math.IsNaN(meeting) || math.IsInf(meeting, 0) {
			l.logger.Debug().Int("row", idx+2).Str("program", key).Msg("skipping rule row with bad meeting number")
			continue
		}

		var notes []domain.RuleNote
		for i := 2; i < len(row); i += 2 {
			noteType := strings.TrimSpace(row[i])
			noteText := ""
			if i+1 < len(row) {
				noteText = strings.TrimSpace(row[i+1])
			}
			if noteType == "" || noteText == "" {
				continue
			}
			notes = append(notes, domain.RuleNote{Type: noteType, Text: noteText})
		}

		if rules[key] == nil {
			rules[key] = make(map[int][]domain.RuleNote)
		}
		rules[key][int(meeting)] = append(rules[key][int(meeting)], notes...)
	}

	return rules
}

// buildMessages normalizes the keyed message rows: blank texts are
// dropped, missing types default to Info.
func buildMessages(rows []map[string]string) []domain.GlobalMessage {
	messages := make([]domain.GlobalMessage, 0, len(rows))
	for _, row := range rows {
		text := strings.TrimSpace(row["Message"])
		if text == "" {
			continue
		}
		msgType := strings.TrimSpace(row["Type"])
		if msgType == "" {
			msgType = "Info"
		}
		messages = append(messages, domain.GlobalMessage{Text: text, Type: msgType})
	}
	return messages
}
