// ABOUTME: Prometheus instrumentation for outgoing API requests
// ABOUTME: Counts requests by endpoint and status and tracks session expirations

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the client-side collectors
type Metrics struct {
	registry           *prometheus.Registry
	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	TransportErrors    *prometheus.CounterVec
	SessionExpirations prometheus.Counter
}

// New creates collectors registered on a private registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "balungpisah_admin_api_requests_total",
			Help: "Total API requests by method, endpoint and HTTP status",
		}, []string{"method", "endpoint", "code"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "balungpisah_admin_api_request_duration_seconds",
			Help:    "API request latency by method and endpoint",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "endpoint"}),
		TransportErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "balungpisah_admin_api_transport_errors_total",
			Help: "API requests that failed before a response was received",
		}, []string{"method", "endpoint"}),
		SessionExpirations: factory.NewCounter(prometheus.CounterOpts{
			Name: "balungpisah_admin_session_expirations_total",
			Help: "Responses with status 401 that cleared the stored session",
		}),
	}
}

// ObserveRequest records one completed request
func (m *Metrics) ObserveRequest(method, endpoint string, code int, start time.Time) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(code)).Inc()
	m.RequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
}

// ObserveTransportError records a request that never got a response
func (m *Metrics) ObserveTransportError(method, endpoint string) {
	if m == nil {
		return
	}
	m.TransportErrors.WithLabelValues(method, endpoint).Inc()
}

// IncrementSessionExpired records a 401 handled by the interceptor
func (m *Metrics) IncrementSessionExpired() {
	if m == nil {
		return
	}
	m.SessionExpirations.Inc()
}

// Handler serves the collectors in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
