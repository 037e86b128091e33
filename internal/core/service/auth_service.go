package service

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/api/metrics"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/domain"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/ports"
)

// AuthService implements login and logout against the current snapshot.
type AuthService struct {
	snapshots ports.SnapshotSource
	sessions  ports.SessionStore
	// allowLegacySHA enables the unsalted legacy digest path. Operator
	// opt-in only; the scheme is weak and off by default.
	allowLegacySHA bool
	logger         zerolog.Logger
}

func NewAuthService(snapshots ports.SnapshotSource, sessions ports.SessionStore, allowLegacySHA bool, logger zerolog.Logger) *AuthService {
	return &AuthService{
		snapshots:      snapshots,
		sessions:       sessions,
		allowLegacySHA: allowLegacySHA,
		logger:         logger,
	}
}

// Login resolves the employee in the current snapshot, verifies the code,
// and mints a session. Unknown id and wrong code are indistinguishable to
// the caller.
func (s *AuthService) Login(employeeID, code string) (*ports.LoginResult, error) {
	snap := s.snapshots.Current()

	inst, ok := snap.Lookup(employeeID)
	if !ok {
		// One shared failure label: /metrics is reachable without a
		// session, so it must not leak which ids exist.
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if !s.Verify(inst, code) {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		s.logger.Warn().Str("employee_id", inst.ID).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(inst.ID, inst.Name)
	if err != nil {
		return nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("employee_id", inst.ID).Msg("login succeeded")

	return &ports.LoginResult{Token: token, EmployeeName: inst.Name}, nil
}

// Logout revokes the session unconditionally.
func (s *AuthService) Logout(token string) {
	s.sessions.Revoke(token)
}

// Verify decides whether code matches the record's credential material.
// Schemes are tried in order and the first applicable one wins, which lets
// records migrate from legacy digests to argon2id without a coordinated
// rewrite of the data file:
//
//  1. current hash + salt: recompute argon2id, constant-time compare
//  2. salt + legacy digest: sha256(salt || code), plain compare
//  3. legacy digest alone, gated by allowLegacySHA: sha256(code)
//
// A record with no usable material always fails.
func (s *AuthService) Verify(inst *domain.Instructor, code string) bool {
	switch {
	case inst.Hash != "" && inst.Salt != "":
		return hashEqual(DeriveHash(code, inst.Salt), inst.Hash)
	case inst.Salt != "" && inst.LegacySHA != "":
		return strings.EqualFold(fastHash(inst.Salt+code), inst.LegacySHA)
	case s.allowLegacySHA && inst.LegacySHA != "":
		return strings.EqualFold(fastHash(code), inst.LegacySHA)
	default:
		return false
	}
}
