// Package metrics holds the Prometheus instrumentation of the server and the
// HTTP endpoint that exposes it.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Labels to use for partitioning requests.
	requestLabels = []string{"endpoint", "status", "cause"}

	// Labels to use for partitioning request latencies.
	requestLatencyLabels = []string{"endpoint"}

	// Labels to use for partitioning proof checks.
	proofLabels = []string{"variant", "outcome"}
)

// RequestMetrics counts and times gRPC calls.
type RequestMetrics struct {
	// Counts of requests made to each endpoint.
	RequestCounts *prometheus.CounterVec

	// Latencies of serving incoming requests.
	RequestLatencies *prometheus.HistogramVec
}

// NewRequestMetrics creates and registers request instrumentation with reg.
// Metric names are prefixed with pkg.
func NewRequestMetrics(reg prometheus.Registerer, pkg string) RequestMetrics {
	m := RequestMetrics{
		RequestCounts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: fmt.Sprintf("%s_requests", pkg),
				Help: "How many requests were made, partitioned by endpoint, status, and cause.",
			},
			requestLabels,
		),
		RequestLatencies: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: fmt.Sprintf("%s_request_latencies", pkg),
				Help: "How long requests take to process, partitioned by endpoint.",
			},
			requestLatencyLabels,
		),
	}
	reg.MustRegister(m.RequestCounts, m.RequestLatencies)
	return m
}

// RequestCounter returns the counter for the calling request.
// Provided labels should be endpoint, status, and cause; missing ones are
// left empty.
func (m *RequestMetrics) RequestCounter(labels ...string) prometheus.Counter {
	return m.RequestCounts.WithLabelValues(padLabels(labels, len(requestLabels))...)
}

// RequestTimer creates a new latency timer for the provided endpoint.
func (m *RequestMetrics) RequestTimer(labels ...string) *prometheus.Timer {
	return prometheus.NewTimer(m.RequestLatencies.WithLabelValues(padLabels(labels, len(requestLatencyLabels))...))
}

// AuthMetrics tracks protocol-level events.
type AuthMetrics struct {
	// Proof checks, partitioned by variant and outcome.
	Proofs *prometheus.CounterVec

	// Sessions dropped by the sweeper after their ttl.
	ExpiredSessions prometheus.Counter
}

func NewAuthMetrics(reg prometheus.Registerer, pkg string) AuthMetrics {
	m := AuthMetrics{
		Proofs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: fmt.Sprintf("%s_proofs", pkg),
				Help: "How many proofs were checked, partitioned by variant and outcome.",
			},
			proofLabels,
		),
		ExpiredSessions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: fmt.Sprintf("%s_expired_sessions", pkg),
				Help: "How many pending sessions expired before being answered.",
			},
		),
	}
	reg.MustRegister(m.Proofs, m.ExpiredSessions)
	return m
}

// ObserveProof counts one proof check.
func (m *AuthMetrics) ObserveProof(variant, outcome string) {
	m.Proofs.WithLabelValues(variant, outcome).Inc()
}

// ObserveSweep adds removed sessions to the expiry counter.
func (m *AuthMetrics) ObserveSweep(removed int) {
	m.ExpiredSessions.Add(float64(removed))
}

func padLabels(labels []string, n int) []string {
	if len(labels) > n {
		return labels[:n]
	}
	return append(labels, make([]string, n-len(labels))...)
}
