// Package metrics defines and registers the custom Prometheus metrics of the
// freelance portal. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry on package init through
// promauto; the /metrics endpoint serves that registry.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/shashikanth-ui/Freelance-Portal/internal/core/domain"
)

const namespace = "freelance_portal"

// ── Authentication ───────────────────────────────────────────────────────────

// AuthAttemptsTotal counts authentication attempts.
// Labels:
//   - strategy: "local", "signup" or "federated"
//   - role: "client", "freelancer" or "invalid"
//   - outcome: see Outcome
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by strategy, role and outcome.",
	},
	[]string{"strategy", "role", "outcome"},
)

// AccountsCreatedTotal counts new accounts.
// Labels:
//   - role: "client" or "freelancer"
//   - source: "local" or the identity provider name
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created, by role and source.",
	},
	[]string{"role", "source"},
)

// ── Sessions ─────────────────────────────────────────────────────────────────

// SessionsCreatedTotal counts sessions opened after a successful login.
var SessionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of sessions created, by role.",
	},
	[]string{"role"},
)

// SessionsDestroyedTotal counts explicit logouts.
var SessionsDestroyedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_destroyed_total",
		Help:      "Total number of sessions destroyed by logout.",
	},
)

// ProfilesCompletedTotal counts onboarding completions.
var ProfilesCompletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profiles_completed_total",
		Help:      "Total number of completed profiles, by role.",
	},
	[]string{"role"},
)

// RoleLabel bounds the role label to known values.
func RoleLabel(role string) string {
	r, err := domain.ParseRole(role)
	if err != nil {
		return "invalid"
	}
	return r.String()
}

// Outcome maps an authentication error to a low-cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidRole):
		return "invalid_role"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidCredential):
		return "invalid_credential"
	case errors.Is(err, domain.ErrAccountExists):
		return "already_exists"
	case errors.Is(err, domain.ErrVerifier):
		return "verifier_error"
	case errors.Is(err, domain.ErrProvider):
		return "provider_error"
	case errors.Is(err, domain.ErrStore):
		return "store_error"
	default:
		return "error"
	}
}
