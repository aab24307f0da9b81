// Package metrics defines and registers all custom Prometheus metrics for
// the apartment portal gateway. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "ok", "invalid_credentials", "inactive", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// GuardDecisionsTotal counts route guard outcomes per navigation attempt.
// Labels:
//   - outcome: "pending", "granted", "redirect_login", "redirect_default"
//   - role: the resolved role for the attempt ("" when unauthenticated)
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by outcome and role.",
	},
	[]string{"outcome", "role"},
)

// ForcedLogoutsTotal counts sessions invalidated by an authorization-denied
// response mid-session (expired or revoked tokens).
var ForcedLogoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forced_logouts_total",
		Help:      "Total number of sessions force-logged-out after an authorization failure.",
	},
)

// RemindersQueueDepth tracks the current number of reminder jobs waiting in
// each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var RemindersQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "reminders_queue_depth",
		Help:      "Current number of reminder jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// RemindersProcessedTotal counts reminder jobs by result.
// Label:
//   - result: "ok" or "error"
var RemindersProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminders_processed_total",
		Help:      "Total number of bill reminder jobs processed, by result.",
	},
	[]string{"result"},
)
