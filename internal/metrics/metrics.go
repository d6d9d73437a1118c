// Package metrics defines and registers all custom Prometheus metrics for
// the AdSpace client toolkit. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default registry at package init; the
// devserver exposes them at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adspace"

// RequestsTotal counts API round trips performed by the request client.
// Labels:
//   - method: HTTP method of the call (GET, POST, PUT, DELETE)
//   - status: numeric HTTP status, or "error" for transport failures
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of API requests issued, by method and status.",
	},
	[]string{"method", "status"},
)

// RequestDuration measures one round trip from send to decoded envelope.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of API round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// AuthFailuresTotal counts 401 responses that tore down the session.
var AuthFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of authentication failures (HTTP 401).",
	},
)

// SessionLoginsTotal counts successful logins committed to the session store.
var SessionLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_logins_total",
		Help:      "Total number of successful logins, by role.",
	},
	[]string{"role"},
)

// TrackingEventsTotal counts tracking events ingested by the devserver.
// Labels:
//   - kind: "impression" or "click"
var TrackingEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_events_total",
		Help:      "Total number of tracking events ingested, by kind.",
	},
	[]string{"kind"},
)
