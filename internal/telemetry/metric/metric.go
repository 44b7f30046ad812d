// Package metric provides Prometheus metrics for phoneledger.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the ledger's Prometheus collectors.
type Metrics struct {
	// Mutations counts successful ledger mutations by entity and action.
	Mutations *prometheus.CounterVec

	// PersistFailures counts failed mirror writes by slice key.
	PersistFailures *prometheus.CounterVec

	// HTTPRequests counts handled HTTP requests by method and status.
	HTTPRequests *prometheus.CounterVec

	// LoginFailures counts rejected login attempts.
	LoginFailures prometheus.Counter
}

// New creates the metric set and registers it with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "phoneledger",
			Name:      "mutations_total",
			Help:      "Successful ledger mutations by entity and action.",
		}, []string{"entity", "action"}),

		PersistFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "phoneledger",
			Name:      "persist_failures_total",
			Help:      "Failed mirror writes to the KV engine by slice key.",
		}, []string{"key"}),

		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "phoneledger",
			Name:      "http_requests_total",
			Help:      "Handled HTTP requests by method and status code.",
		}, []string{"method", "status"}),

		LoginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "phoneledger",
			Name:      "login_failures_total",
			Help:      "Rejected login attempts.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Mutations, m.PersistFailures, m.HTTPRequests, m.LoginFailures)
	}
	return m
}

// RecordMutation bumps the mutation counter. Safe on a nil receiver so
// services can run without metrics wired (tests).
func (m *Metrics) RecordMutation(entity, action string) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(entity, action).Inc()
}

// RecordPersistFailure bumps the persist failure counter.
func (m *Metrics) RecordPersistFailure(key string) {
	if m == nil {
		return
	}
	m.PersistFailures.WithLabelValues(key).Inc()
}

// RecordHTTPRequest bumps the HTTP request counter.
func (m *Metrics) RecordHTTPRequest(method, status string) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, status).Inc()
}

// RecordLoginFailure bumps the rejected login counter.
func (m *Metrics) RecordLoginFailure() {
	if m == nil {
		return
	}
	m.LoginFailures.Inc()
}
