package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMiddleware records request counts and latencies per route pattern.
type PrometheusMiddleware struct {
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	skipPaths       map[string]struct{}
}

// NewPrometheusMiddleware registers the HTTP metrics on reg.
// Requests to skipPaths (default /metrics) are not recorded.
func NewPrometheusMiddleware(reg prometheus.Registerer, skipPaths ...string) (*PrometheusMiddleware, error) {
	if len(skipPaths) == 0 {
		skipPaths = []string{"/metrics"}
	}
	m := &PrometheusMiddleware{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP request latency in seconds.",
				// Uploads and downloads stream up to 50 MiB, so the tail buckets are wide.
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"method", "path"},
		),
		skipPaths: make(map[string]struct{}, len(skipPaths)),
	}
	for _, p := range skipPaths {
		m.skipPaths[p] = struct{}{}
	}

	for _, c := range []prometheus.Collector{m.requestCount, m.requestDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler returns the fiber middleware handler.
func (m *PrometheusMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, skip := m.skipPaths[c.Path()]; skip {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		// Route pattern (/api/documents/:id), not the raw path, to bound label cardinality.
		path := c.Route().Path
		if path == "" || (path == "/" && c.Path() != "/") {
			path = "unmatched"
		}

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		m.requestCount.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())

		return err
	}
}
