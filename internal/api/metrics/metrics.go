// Package metrics defines the custom Prometheus metrics of the back-office
// API. It is the single source of truth for metric names, labels, and help
// strings; request-level HTTP metrics come from echoprometheus and are
// registered in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// LoginsTotal counts login attempts.
// Labels:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "logins_total",
		Help:      "Login attempts by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts accounts created through /api/auth/register.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "registrations_total",
		Help:      "Accounts created through registration.",
	},
)

// TokenRejectionsTotal counts bearer tokens the gatekeeper rejected.
// Labels:
//   - reason: "malformed", "signature", "expired", "unsupported", "subject"
//     ("subject" means the token verified but its subject no longer
//     resolves to an enabled account)
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "token_rejections_total",
		Help:      "Bearer tokens rejected by the request gatekeeper, by reason.",
	},
	[]string{"reason"},
)
