// Package metrics defines and registers all custom Prometheus metrics for
// the weekly planner backend. It is the single source of truth for metric
// names, labels, and help strings. Registration happens at import time via
// promauto against the default registry; the /metrics endpoint is wired by
// the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "planner"

// ── Reload metrics ────────────────────────────────────────────────────────────

// ReloadsTotal counts snapshot reload attempts.
// Label:
//   - result: "success" or "error"
var ReloadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reloads_total",
		Help:      "Total number of snapshot reload attempts, by result.",
	},
	[]string{"result"},
)

// ReloadDuration measures how long one full reload takes, including the
// spreadsheet parse of all three source files.
var ReloadDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "reload_duration_seconds",
		Help:      "Duration of a full snapshot reload.",
		Buckets:   prometheus.DefBuckets,
	},
)

// SnapshotInstructors tracks the number of instructor records in the
// active snapshot.
var SnapshotInstructors = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_instructors",
		Help:      "Instructor records in the active snapshot.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure". Unknown id and wrong code share
//     one label so the metric cannot be used to probe which ids exist.
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ActiveSessions tracks the number of live entries in the session store.
// Lazy expiry means the value may briefly include sessions past their
// expiry that have not been touched since.
var ActiveSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Sessions currently held in the in-memory store.",
	},
)
