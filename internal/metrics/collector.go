package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Collector records SDK-level Prometheus metrics.
type Collector struct {
	apiRequestsTotal   *prometheus.CounterVec
	apiRequestDuration *prometheus.HistogramVec

	uploadBytes *prometheus.HistogramVec

	pollAttemptsTotal *prometheus.CounterVec
	waitOutcomesTotal *prometheus.CounterVec
	waitDuration      *prometheus.HistogramVec

	logger *zap.Logger
}

// NewCollector creates a collector registered under the given namespace.
func NewCollector(namespace string, logger *zap.Logger) *Collector {
	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	c.apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of LightX API calls",
		},
		[]string{"endpoint", "status"},
	)

	c.apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "LightX API call duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	c.uploadBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_bytes",
			Help:      "Uploaded image payload size in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
		},
		[]string{"content_type"},
	)

	c.pollAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "poll_attempts_total",
			Help:      "Total number of order-status calls",
		},
		[]string{"endpoint", "status"},
	)

	c.waitOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wait_outcomes_total",
			Help:      "Total number of completed polling sessions",
		},
		[]string{"endpoint", "outcome"},
	)

	c.waitDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "wait_duration_seconds",
			Help:      "Polling session duration in seconds",
			Buckets:   []float64{1, 3, 6, 9, 12, 15, 20, 30, 60},
		},
		[]string{"endpoint"},
	)

	logger.Info("metrics collector initialized", zap.String("namespace", namespace))

	return c
}

// RecordAPIRequest records one outbound API call. httpStatus 0 means the
// request never produced a response (transport failure).
func (c *Collector) RecordAPIRequest(endpoint string, httpStatus int, duration time.Duration) {
	c.apiRequestsTotal.WithLabelValues(endpoint, statusClass(httpStatus)).Inc()
	c.apiRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordUpload records an accepted image upload.
func (c *Collector) RecordUpload(contentType string, size int64) {
	c.uploadBytes.WithLabelValues(contentType).Observe(float64(size))
}

// RecordPollAttempt records one order-status call and the status it
// reported ("error" when the call itself failed).
func (c *Collector) RecordPollAttempt(endpoint, status string) {
	c.pollAttemptsTotal.WithLabelValues(endpoint, status).Inc()
}

// RecordWaitOutcome records a finished polling session.
func (c *Collector) RecordWaitOutcome(endpoint, outcome string, duration time.Duration) {
	c.waitOutcomesTotal.WithLabelValues(endpoint, outcome).Inc()
	c.waitDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// statusClass folds HTTP status codes into label-friendly classes.
func statusClass(code int) string {
	switch {
	case code == 0:
		return "transport"
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}
