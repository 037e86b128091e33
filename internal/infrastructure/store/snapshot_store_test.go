package store

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/loader"
)

// flakyReader serves one instructor row, or errors while fail is set.
type flakyReader struct {
	fail atomic.Bool
}

func (r *flakyReader) ReadObjects(_ context.Context, path string) ([]map[string]string, error) {
	if r.fail.Load() {
		return nil, errors.New("workbook corrupted")
	}
	return []map[string]string{{"EmployeeID": "1001", "Name": "Dana"}}, nil
}

func (r *flakyReader) ReadRows(_ context.Context, path string) ([][]string, error) {
	return [][]string{{"Program", "Meeting"}}, nil
}

func newReloader(reader *flakyReader) (*SnapshotStore, *Reloader) {
	snapshots := NewSnapshotStore()
	ldr := loader.New(reader, zerolog.Nop())
	r := NewReloader(snapshots, ldr, "/data", time.Minute, time.Second, zerolog.Nop())
	return snapshots, r
}

func TestReload_PublishesSnapshot(t *testing.T) {
	snapshots, reloader := newReloader(&flakyReader{})

	if snapshots.Current() != nil {
		t.Fatalf("expected no snapshot before first reload")
	}

	if err := reloader.Reload(context.Background()); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	snap := snapshots.Current()
	if snap == nil {
		t.Fatalf("snapshot not published")
	}
	if _, ok := snap.Lookup("1001"); !ok {
		t.Fatalf("instructor missing from snapshot")
	}
}

func TestReload_FailureKeepsPreviousSnapshot(t *testing.T) {
	reader := &flakyReader{}
	snapshots, reloader := newReloader(reader)

	if err := reloader.Reload(context.Background()); err != nil {
		t.Fatalf("first reload failed: %v", err)
	}
	first := snapshots.Current()
	reader.fail.Store(true)

	if err := reloader.Reload(context.Background()); err == nil {
		t.Fatalf("expected second reload to fail")
	}
	if snapshots.Current() != first {
		t.Fatalf("failed reload must not replace the snapshot")
	}
}

func TestReload_EachSuccessSwapsPointer(t *testing.T) {
	snapshots, reloader := newReloader(&flakyReader{})

	if err := reloader.Reload(context.Background()); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	first := snapshots.Current()

	if err := reloader.Reload(context.Background()); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	second := snapshots.Current()

	if first == second {
		t.Fatalf("expected a fresh snapshot value per reload")
	}
	if first.ID == second.ID {
		t.Fatalf("snapshot ids must differ per reload cycle")
	}
}
