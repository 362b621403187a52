package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mateprofit"

// Calculation outcomes used as the "status" label.
const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
	StatusError   = "error"
)

// Recorder owns a private Prometheus registry and the collectors the
// service reports into. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	trades       prometheus.Counter
	duration     prometheus.Histogram
	httpRequests *prometheus.CounterVec
}

// New creates a Recorder with its collectors registered, plus the standard
// Go runtime and process collectors.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Profit calculations by source and outcome.",
		}, []string{"source", "status"}),
		trades: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trades_processed_total",
			Help:      "Trade records folded into successful calculations.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Time spent folding a trade list.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
	}

	r.registry.MustRegister(
		r.calculations,
		r.trades,
		r.duration,
		r.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveCalculation records one calculation outcome.
// Trades are only counted for successful calculations; a non-positive
// elapsed means the duration is unknown and is not observed.
func (r *Recorder) ObserveCalculation(source, status string, trades int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.calculations.WithLabelValues(source, status).Inc()
	if elapsed > 0 {
		r.duration.Observe(elapsed.Seconds())
	}
	if status == StatusOK {
		r.trades.Add(float64(trades))
	}
}

// ObserveHTTPRequest records one served HTTP request.
func (r *Recorder) ObserveHTTPRequest(method, route string, status int) {
	if r == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Registry exposes the underlying registry (tests gather from it).
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
