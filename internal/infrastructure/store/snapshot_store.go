// Package store holds the active data snapshot and drives the periodic
// reload cycle that replaces it.
package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/api/metrics"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/core/domain"
	"github.com/Taasiyeda2026/WEEKLYPLANNER/internal/loader"
)

// SnapshotStore publishes the active snapshot behind a single atomic
// pointer. Replacement is one pointer swap: a request that grabbed the
// pointer before a swap keeps reading the old snapshot, one that grabbed
// it after reads the new one, and no request ever observes a mix.
type SnapshotStore struct {
	current atomic.Pointer[domain.Snapshot]
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Current returns the active snapshot. Nil only before the first
// successful reload, which is fatal at startup, so handlers never see it.
func (s *SnapshotStore) Current() *domain.Snapshot {
	return s.current.Load()
}

// Replace publishes a new snapshot.
func (s *SnapshotStore) Replace(snap *domain.Snapshot) {
	s.current.Store(snap)
}

// Reloader rebuilds the snapshot on a fixed interval. Reloads are
// serialized with a mutex so a slow parse can never race the next tick,
// and each reload is bounded by parseTimeout.
type Reloader struct {
	store        *SnapshotStore
	loader       *loader.Loader
	dataDir      string
	interval     time.Duration
	parseTimeout time.Duration
	logger       zerolog.Logger

	mu sync.Mutex
}

func NewReloader(store *SnapshotStore, ldr *loader.Loader, dataDir string, interval, parseTimeout time.Duration, logger zerolog.Logger) *Reloader {
	return &Reloader{
		store:        store,
		loader:       ldr,
		dataDir:      dataDir,
		interval:     interval,
		parseTimeout: parseTimeout,
		logger:       logger,
	}
}

// Reload builds a fresh snapshot and swaps it in. On failure the previous
// snapshot stays active and the error is returned to the caller — fatal
// on the initial load, logged and swallowed on the periodic path.
func (r *Reloader) Reload(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, r.parseTimeout)
	defer cancel()

	start := time.Now()
	snap, err := r.loader.BuildSnapshot(ctx, r.dataDir)
	metrics.ReloadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ReloadsTotal.WithLabelValues("error").Inc()
		return err
	}

	r.store.Replace(snap)
	metrics.ReloadsTotal.WithLabelValues("success").Inc()
	metrics.SnapshotInstructors.Set(float64(len(snap.All)))

	r.logger.Info().
		Str("snapshot_id", snap.ID).
		Int("instructors", len(snap.All)).
		Int("programs", len(snap.Rules)).
		Int("messages", len(snap.Messages)).
		Dur("elapsed", time.Since(start)).
		Msg("snapshot reloaded")

	return nil
}

// Run reloads on every tick until ctx is cancelled. A failed reload keeps
// the stale snapshot serving and the loop alive.
func (r *Reloader) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Reload(ctx); err != nil {
				r.logger.Error().Err(err).Msg("periodic reload failed, keeping previous snapshot")
			}
		}
	}
}
