// Package metrics exposes Prometheus collectors for the HTTP layer and the
// onboarding/portfolio services on a dedicated registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds registry settings.
type Config struct {
	Namespace        string
	HistogramBuckets []float64
	// RuntimeCollectors adds the Go runtime and process collectors.
	RuntimeCollectors bool
}

// DefaultConfig returns the owneriq namespace with prometheus default buckets.
func DefaultConfig() Config {
	return Config{
		Namespace:         "owneriq",
		HistogramBuckets:  prometheus.DefBuckets,
		RuntimeCollectors: true,
	}
}

// Registry owns every collector of the service.
//
// Thread Safety: Safe for concurrent use by multiple goroutines.
type Registry struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	httpInFlight  prometheus.Gauge
	wizardEvents  *prometheus.CounterVec
	uploads       *prometheus.CounterVec
	uploadBytes   prometheus.Counter
	batches       prometheus.Counter
	completions   prometheus.Counter
	idempotency   *prometheus.CounterVec
	reports       *prometheus.CounterVec
	schedules     prometheus.Counter
	eventsDropped prometheus.Counter
}

// New creates a registry and registers all collectors.
func New(cfg Config) *Registry {
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultConfig().Namespace
	}
	if len(cfg.HistogramBuckets) == 0 {
		cfg.HistogramBuckets = prometheus.DefBuckets
	}

	ns := cfg.Namespace
	r := &Registry{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "http", Name: "requests_total",
			Help: "Total number of HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns, Subsystem: "http", Name: "request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: cfg.HistogramBuckets,
		}, []string{"method", "route"}),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Subsystem: "http", Name: "requests_in_flight",
			Help: "Requests currently being served.",
		}),
		wizardEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "onboarding", Name: "wizard_events_total",
			Help: "Wizard events applied, by event and outcome.",
		}, []string{"event", "outcome"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "onboarding", Name: "uploads_total",
			Help: "Document uploads by document type and outcome.",
		}, []string{"doc_type", "outcome"}),
		uploadBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "onboarding", Name: "upload_bytes_total",
			Help: "Decoded bytes written to object storage.",
		}),
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "onboarding", Name: "batches_completed_total",
			Help: "Import batches marked completed.",
		}),
		completions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "onboarding", Name: "completed_total",
			Help: "Owners that finished onboarding.",
		}),
		idempotency: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "onboarding", Name: "idempotency_total",
			Help: "Idempotency-Key lookups by result (claimed, replayed, conflict).",
		}, []string{"result"}),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "portfolio", Name: "reports_rendered_total",
			Help: "Portfolio reports rendered by format and outcome.",
		}, []string{"format", "outcome"}),
		schedules: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "mortgage", Name: "schedules_generated_total",
			Help: "Amortization schedules generated and stored.",
		}),
		eventsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: "events", Name: "log_failures_total",
			Help: "Domain events that could not be written to the event log.",
		}),
	}

	r.registry.MustRegister(
		r.httpRequests, r.httpDuration, r.httpInFlight,
		r.wizardEvents, r.uploads, r.uploadBytes, r.batches, r.completions, r.idempotency,
		r.reports, r.schedules, r.eventsDropped,
	)
	if cfg.RuntimeCollectors {
		r.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return r
}

// Handler serves the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer exposes the underlying registry for tests and push gateways.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// ObserveHTTP records one finished request.
func (r *Registry) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, statusClass(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// InFlight increments the in-flight gauge and returns its decrement.
func (r *Registry) InFlight() func() {
	if r == nil {
		return func() {}
	}
	r.httpInFlight.Inc()
	return r.httpInFlight.Dec
}

// WizardEvent counts an applied wizard event.
func (r *Registry) WizardEvent(event string, err error) {
	if r == nil {
		return
	}
	r.wizardEvents.WithLabelValues(event, outcome(err)).Inc()
}

// Upload counts an upload attempt and, on success, its size.
func (r *Registry) Upload(docType string, size int64, err error) {
	if r == nil {
		return
	}
	r.uploads.WithLabelValues(docType, outcome(err)).Inc()
	if err == nil && size > 0 {
		r.uploadBytes.Add(float64(size))
	}
}

// BatchCompleted counts a completed import batch.
func (r *Registry) BatchCompleted() {
	if r == nil {
		return
	}
	r.batches.Inc()
}

// OnboardingCompleted counts an owner finishing onboarding.
func (r *Registry) OnboardingCompleted() {
	if r == nil {
		return
	}
	r.completions.Inc()
}

// Idempotency counts an Idempotency-Key lookup result.
func (r *Registry) Idempotency(result string) {
	if r == nil {
		return
	}
	r.idempotency.WithLabelValues(result).Inc()
}

// Report counts a rendered portfolio report.
func (r *Registry) Report(format string, err error) {
	if r == nil {
		return
	}
	r.reports.WithLabelValues(format, outcome(err)).Inc()
}

// ScheduleGenerated counts a stored amortization schedule.
func (r *Registry) ScheduleGenerated() {
	if r == nil {
		return
	}
	r.schedules.Inc()
}

// EventLogFailure counts a domain event that was not persisted.
func (r *Registry) EventLogFailure() {
	if r == nil {
		return
	}
	r.eventsDropped.Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// statusClass keeps label cardinality bounded: 2xx, 3xx, 4xx, 5xx.
func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
