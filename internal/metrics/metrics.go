// Package metrics defines the Prometheus collectors of the rally server.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/rally/internal/fault"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics holds the collectors, registered on their own registry.
type Metrics struct {
	registry    *prometheus.Registry
	operations  *prometheus.CounterVec
	transferred *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rally",
			Name:      "operations_total",
			Help:      "Custody operations by module, operation and outcome.",
		}, []string{"module", "operation", "outcome"}),
		transferred: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rally",
			Name:      "transferred_total",
			Help:      "Value moved through the ledger, in smallest units, by memo.",
		}, []string{"memo"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rally",
			Name:      "rpc_duration_seconds",
			Help:      "Connect RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
	}
	m.registry.MustRegister(
		m.operations,
		m.transferred,
		m.rpcDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Outcome classifies err: nil is ok, a domain fault is a rejection, anything
// else is an error.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	var fe *fault.Error
	if errors.As(err, &fe) {
		return OutcomeRejected
	}
	return OutcomeError
}

// Observe counts one operation.
func (m *Metrics) Observe(module, operation string, err error) {
	m.operations.WithLabelValues(module, operation, Outcome(err)).Inc()
}

// Transferred adds amount to the memo's running total.
func (m *Metrics) Transferred(memo string, amount uint64) {
	if amount == 0 {
		return
	}
	m.transferred.WithLabelValues(memo).Add(float64(amount))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Interceptor records the latency of every unary RPC.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)
			m.rpcDuration.WithLabelValues(req.Spec().Procedure).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}
