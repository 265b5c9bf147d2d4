// Package metrics defines the custom Prometheus metrics for the account API.
// It is the single source of truth for metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// RegistrationsTotal counts users persisted through registration.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registrations persisted.",
	},
)

// ActivationsTotal counts successful account activations.
var ActivationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activations_total",
		Help:      "Total number of accounts activated.",
	},
)

// ActivationFailuresTotal counts activation attempts that did not match a token.
var ActivationFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activation_failures_total",
		Help:      "Total number of activation attempts with an unknown or spent token.",
	},
)

// ActivationEmailsTotal counts activation email deliveries.
// Label:
//   - result: "sent" or "failed"
var ActivationEmailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activation_emails_total",
		Help:      "Total number of activation email deliveries, by result.",
	},
	[]string{"result"},
)
