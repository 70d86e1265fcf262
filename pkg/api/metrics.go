package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds the Prometheus metrics for the decode service.
type Metrics struct {
	decodesTotal        *prometheus.CounterVec
	recordsDecoded      prometheus.Counter
	buildsTotal         *prometheus.CounterVec
	capturesTotal       *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		decodesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tlvkit_decodes_total",
				Help: "Total number of decode requests",
			},
			[]string{"variant", "status"},
		),
		recordsDecoded: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tlvkit_records_decoded_total",
				Help: "Total number of records decoded",
			},
		),
		buildsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tlvkit_builds_total",
				Help: "Total number of build requests",
			},
			[]string{"status"},
		),
		capturesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tlvkit_captures_total",
				Help: "Total number of capture store operations",
			},
			[]string{"operation", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tlvkit_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
	}
}

// RecordDecode records the outcome of a decode request.
func (m *Metrics) RecordDecode(variant string, success bool, records int) {
	if m == nil {
		return
	}
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.decodesTotal.WithLabelValues(variant, status).Inc()
	if records > 0 {
		m.recordsDecoded.Add(float64(records))
	}
}

// RecordBuild records the outcome of a build request.
func (m *Metrics) RecordBuild(success bool) {
	if m == nil {
		return
	}
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.buildsTotal.WithLabelValues(status).Inc()
}

// RecordCapture records the outcome of a capture store operation.
func (m *Metrics) RecordCapture(operation string, success bool) {
	if m == nil {
		return
	}
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.capturesTotal.WithLabelValues(operation, status).Inc()
}

// InstrumentHandler wraps a handler with request duration observation.
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	if m == nil {
		return handler
	}
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		handler(w, r)
		m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}
}
