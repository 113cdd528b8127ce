// Package metrics defines and registers all custom Prometheus metrics for the
// wildquiz API. It is the single source of truth for metric names, labels,
// and help strings. Collectors register with the default registry at init via
// promauto; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wildquiz"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "conflict", or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of account registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AccountsDeletedTotal counts completed account deletions.
var AccountsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_deleted_total",
		Help:      "Total number of accounts deleted.",
	},
)

// ── Rate-limit metrics ────────────────────────────────────────────────────────

// RateLimitedTotal counts requests rejected by the rate limiter.
// Label:
//   - class: route class ("login", "register", "general")
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected with 429, by route class.",
	},
	[]string{"class"},
)

// ── Quiz metrics ──────────────────────────────────────────────────────────────

// QuizSubmissionsTotal counts scored quiz submissions.
// Label:
//   - difficulty: quiz difficulty ("easy", "medium", "hard")
var QuizSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quiz_submissions_total",
		Help:      "Total number of quiz submissions scored, by difficulty.",
	},
	[]string{"difficulty"},
)

// BadgesAwardedTotal counts badges granted.
// Label:
//   - badge: badge code (e.g. "first_quiz")
var BadgesAwardedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "badges_awarded_total",
		Help:      "Total number of badges awarded, by badge code.",
	},
	[]string{"badge"},
)
