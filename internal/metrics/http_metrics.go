// Package metrics exposes Prometheus instrumentation for the HTTP API.
package metrics

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// requestCounter counts all HTTP requests with labels.
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// requestDuration records request duration in seconds.
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(requestCounter, requestDuration)
}

// Middleware returns an Echo middleware recording a counter increment
// and a duration observation per request. The path label uses the
// registered route pattern, not the raw URL, to keep cardinality bounded.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			timer := prometheus.NewTimer(prometheus.ObserverFunc(func(seconds float64) {
				status := strconv.Itoa(c.Response().Status)
				requestCounter.WithLabelValues(c.Request().Method, c.Path(), status).Inc()
				requestDuration.WithLabelValues(c.Request().Method, c.Path(), status).Observe(seconds)
			}))
			defer timer.ObserveDuration()
			return next(c)
		}
	}
}

// Handler serves the Prometheus scrape endpoint.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
