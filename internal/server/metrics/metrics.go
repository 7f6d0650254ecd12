// Package metrics holds the Prometheus collectors of the account service and
// the HTTP endpoint that exposes them.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeSent   = "sent"
	OutcomeFailed = "failed"
)

var rpcRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "authkeeper_rpc_requests_total",
		Help: "Total number of handled RPCs by method and status code",
	},
	[]string{"method", "code"},
)

var rpcDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "authkeeper_rpc_duration_seconds",
		Help:    "RPC handling duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method"},
)

var notifications = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "authkeeper_notifications_total",
		Help: "Total number of notification attempts by kind and outcome",
	},
	[]string{"kind", "outcome"},
)

var tokensPurged = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "authkeeper_tokens_purged_total",
		Help: "Total number of expired verification tokens removed",
	},
)

// RegisterMetrics registers the package collectors with reg.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(rpcRequests, rpcDuration, notifications, tokensPurged)
}

func RecordRPC(method, code string, d time.Duration) {
	rpcRequests.WithLabelValues(method, code).Inc()
	rpcDuration.WithLabelValues(method).Observe(d.Seconds())
}

func RecordNotification(kind, outcome string) {
	notifications.WithLabelValues(kind, outcome).Inc()
}

func RecordTokensPurged(n int64) {
	if n > 0 {
		tokensPurged.Add(float64(n))
	}
}
