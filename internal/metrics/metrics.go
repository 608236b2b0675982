// Package metrics defines and registers all custom Prometheus metrics for the
// orderdesk client. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "orderdesk"

// ── API gateway metrics ───────────────────────────────────────────────────────

// APIRequestsTotal counts outbound REST calls.
// Labels:
//   - endpoint: logical endpoint name (e.g. "orders_list", "auth_login")
//   - status: HTTP status code, or "error" when the request never completed
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of outbound API requests, by endpoint and status.",
	},
	[]string{"endpoint", "status"},
)

// APIRequestDuration measures end-to-end duration of outbound REST calls.
// Label:
//   - endpoint: logical endpoint name
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of outbound API requests from send to decode.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// CartMutationsTotal counts cart store mutations.
// Label:
//   - op: "add", "update", "remove", "clear"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of cart mutations, by operation.",
	},
	[]string{"op"},
)

// SessionEventsTotal counts session lifecycle events.
// Label:
//   - event: "login", "logout", "restored", "purged"
var SessionEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_events_total",
		Help:      "Total number of session lifecycle events.",
	},
	[]string{"event"},
)
