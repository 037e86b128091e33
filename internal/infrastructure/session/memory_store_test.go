package session

import (
	"testing"
	"time"
)

func TestCreateAndResolve(t *testing.T) {
	store := NewMemoryStore(8 * time.Hour)

	token, err := store.Create("1001", "Dana")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(token) != tokenBytes*2 {
		t.Fatalf("unexpected token length %d", len(token))
	}

	sess, ok := store.Resolve(token)
	if !ok {
		t.Fatalf("expected session to resolve")
	}
	if sess.EmployeeID != "1001" || sess.EmployeeName != "Dana" {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestTokensAreUnique(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Create("1001", "Dana")
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token minted")
		}
		seen[token] = true
	}
}

func TestResolve_UnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	if _, ok := store.Resolve("no-such-token"); ok {
		t.Fatalf("unknown token resolved")
	}
}

func TestResolve_ExpiryBoundary(t *testing.T) {
	store := NewMemoryStore(8 * time.Hour)

	created := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	now := created
	store.now = func() time.Time { return now }

	token, err := store.Create("1001", "Dana")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	expiry := created.Add(8 * time.Hour)

	// Strictly before expiry: alive.
	now = expiry.Add(-time.Nanosecond)
	if _, ok := store.Resolve(token); !ok {
		t.Fatalf("session dead before expiry")
	}

	// At the exact expiry instant: dead, and lazily evicted.
	now = expiry
	if _, ok := store.Resolve(token); ok {
		t.Fatalf("session alive at expiry instant")
	}
	if len(store.sessions) != 0 {
		t.Fatalf("expired session not evicted")
	}

	// After eviction the token stays dead even if the clock moves back.
	now = created
	if _, ok := store.Resolve(token); ok {
		t.Fatalf("evicted session resolved")
	}
}

func TestRevoke(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	token, err := store.Create("1001", "Dana")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	store.Revoke(token)
	if _, ok := store.Resolve(token); ok {
		t.Fatalf("revoked token resolved")
	}

	// Revoking again is a no-op.
	store.Revoke(token)
}
