// Package metrics provides Prometheus metrics collection for the rate service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// RateCalculationsTotal tracks fee calculations by outcome.
	RateCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_calculations_total",
			Help: "Total number of shipping fee calculations",
		},
		[]string{"status"},
	)

	// RateCalculationDuration tracks fee calculation duration.
	RateCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rate_calculation_duration_seconds",
			Help:    "Shipping fee calculation duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
	)

	// CarrierRequestsTotal tracks outbound carrier rating calls by outcome.
	CarrierRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_requests_total",
			Help: "Total number of carrier rating requests",
		},
		[]string{"status"},
	)

	// CarrierRequestDuration tracks outbound carrier rating call duration.
	CarrierRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "carrier_request_duration_seconds",
			Help:    "Carrier rating request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
		},
	)

	// RateCacheOperationsTotal tracks rate cache operations.
	RateCacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_cache_operations_total",
			Help: "Total number of rate cache operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordRateCalculation records metrics for a fee calculation.
func RecordRateCalculation(duration time.Duration, status string) {
	RateCalculationDuration.Observe(duration.Seconds())
	RateCalculationsTotal.WithLabelValues(status).Inc()
}

// RecordCarrierRequest records metrics for an outbound carrier call.
func RecordCarrierRequest(duration time.Duration, status string) {
	CarrierRequestDuration.Observe(duration.Seconds())
	CarrierRequestsTotal.WithLabelValues(status).Inc()
}

// RecordCacheOperation records metrics for a rate cache operation.
func RecordCacheOperation(operation, result string) {
	RateCacheOperationsTotal.WithLabelValues(operation, result).Inc()
}
