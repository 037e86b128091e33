// Package session implements the in-memory session store. Single process
// only: tokens are lost on restart and there is no external or shared
// storage behind them.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/api/metrics"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/domain"
)

const tokenBytes = 32

// MemoryStore maps opaque bearer tokens to sessions. Expiry is lazy:
// expired entries are deleted when a resolve touches them, there is no
// background sweep.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	ttl      time.Duration

	// now is swappable in tests to pin the expiry boundary.
	now func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]domain.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create mints a random token and stores the session with an absolute
// expiry of now+ttl. The expiry never moves afterwards.
func (s *MemoryStore) Create(employeeID, employeeName string) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = domain.Session{
		Token:        token,
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		ExpiresAt:    s.now().Add(s.ttl),
	}
	metrics.ActiveSessions.Set(float64(len(s.sessions)))

	return token, nil
}

// Resolve returns the live session for token. Unknown tokens and tokens
// at or past their expiry instant both come back as misses; an expired
// entry is deleted on the way out.
func (s *MemoryStore) Resolve(token string) (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if sess.Expired(s.now()) {
		delete(s.sessions, token)
		metrics.ActiveSessions.Set(float64(len(s.sessions)))
		return nil, false
	}
	return &sess, true
}

// Revoke removes the entry unconditionally. Revoking an unknown token is
// a no-op.
func (s *MemoryStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
}
