// Package metrics provides Prometheus metrics for termsim.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Command outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeUnknown = "unknown"
)

var (
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "termsim_commands_total",
			Help: "Total number of executed commands",
		},
		[]string{"command", "outcome"},
	)

	filesystemNodes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "termsim_filesystem_nodes",
			Help: "Number of files and directories in the virtual filesystem",
		},
	)

	sessionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "termsim_sessions_open",
			Help: "Number of open terminal tabs",
		},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "termsim_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "termsim_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordCommand counts one executed command. Unknown command names are
// folded into a single label value to bound cardinality.
func RecordCommand(command, outcome string) {
	if outcome == OutcomeUnknown {
		command = "unknown"
	}
	commandsTotal.WithLabelValues(command, outcome).Inc()
}

// SetFilesystemNodes records the size of the tree.
func SetFilesystemNodes(n int) {
	filesystemNodes.Set(float64(n))
}

// SetSessionsOpen records the number of tabs.
func SetSessionsOpen(n int) {
	sessionsOpen.Set(float64(n))
}

// Handler serves the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Instrument wraps next with request counting and timing under route.
func Instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	}
}
