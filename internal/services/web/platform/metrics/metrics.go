// Package metrics exposes Prometheus collectors for the site.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pleromasprings/website/internal/services/web/platform/httpx"
	"github.com/pleromasprings/website/internal/services/web/platform/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "pleroma"
	subsystem = "web"
)

var histogramBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}

// Metrics holds the site's collectors. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	registry        *prometheus.Registry
	requestTotal    *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	upstreamTotal   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
	formSubmissions *prometheus.CounterVec
	rateLimitHits   *prometheus.CounterVec
}

// New registers the site collectors on registry. A nil registry gets a fresh
// one that also carries the Go runtime and process collectors.
func New(registry *prometheus.Registry) (*Metrics, error) {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	m := &Metrics{registry: registry}
	var err error
	if m.requestTotal, err = registerCounter(registry, prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Count of processed HTTP requests",
	}, "method", "route", "status"); err != nil {
		return nil, err
	}
	if m.requestLatency, err = registerHistogram(registry, prometheus.HistogramOpts{
		Name: "http_request_duration_seconds",
		Help: "Latency distribution of HTTP handlers",
	}, "method", "route", "status"); err != nil {
		return nil, err
	}
	if m.upstreamTotal, err = registerCounter(registry, prometheus.CounterOpts{
		Name: "content_api_requests_total",
		Help: "Count of content API calls by endpoint and outcome",
	}, "endpoint", "outcome"); err != nil {
		return nil, err
	}
	if m.upstreamLatency, err = registerHistogram(registry, prometheus.HistogramOpts{
		Name: "content_api_request_duration_seconds",
		Help: "Latency distribution of content API calls",
	}, "endpoint"); err != nil {
		return nil, err
	}
	if m.cacheLookups, err = registerCounter(registry, prometheus.CounterOpts{
		Name: "cache_lookups_total",
		Help: "Content cache lookups by scope and result",
	}, "scope", "result"); err != nil {
		return nil, err
	}
	if m.formSubmissions, err = registerCounter(registry, prometheus.CounterOpts{
		Name: "form_submissions_total",
		Help: "Form submissions by form and outcome",
	}, "form", "outcome"); err != nil {
		return nil, err
	}
	if m.rateLimitHits, err = registerCounter(registry, prometheus.CounterOpts{
		Name: "rate_limit_hits_total",
		Help: "Number of rate-limited responses",
	}, "route"); err != nil {
		return nil, err
	}
	return m, nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request count and latency per route.
func (m *Metrics) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := observability.NewResponseRecorder(w)
			next.ServeHTTP(recorder, r)
			m.ObserveRequest(r.Method, RouteLabel(r.URL.Path), recorder.Status(), time.Since(start))
		})
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method string, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{"method": method, "route": route, "status": strconv.Itoa(status)}
	m.requestTotal.With(labels).Inc()
	m.requestLatency.With(labels).Observe(duration.Seconds())
}

// ObserveUpstream records one content API call.
func (m *Metrics) ObserveUpstream(endpoint string, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.upstreamTotal.With(prometheus.Labels{"endpoint": endpoint, "outcome": outcome}).Inc()
	m.upstreamLatency.With(prometheus.Labels{"endpoint": endpoint}).Observe(duration.Seconds())
}

// ObserveCacheLookup records a cache hit or miss for scope.
func (m *Metrics) ObserveCacheLookup(scope string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.With(prometheus.Labels{"scope": scope, "result": result}).Inc()
}

// ObserveForm records a form submission outcome such as "accepted",
// "invalid" or "failed".
func (m *Metrics) ObserveForm(form string, outcome string) {
	if m == nil {
		return
	}
	m.formSubmissions.With(prometheus.Labels{"form": form, "outcome": outcome}).Inc()
}

// ObserveRateLimited records a rejected request.
func (m *Metrics) ObserveRateLimited(route string) {
	if m == nil {
		return
	}
	m.rateLimitHits.With(prometheus.Labels{"route": route}).Inc()
}

// RouteLabel keeps label cardinality bounded by reducing a path to its first
// segment: "/news/some-slug" becomes "/news".
func RouteLabel(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "/"
	}
	first, _, _ := strings.Cut(trimmed, "/")
	return "/" + first
}

func registerCounter(registry *prometheus.Registry, opts prometheus.CounterOpts, labels ...string) (*prometheus.CounterVec, error) {
	opts.Namespace, opts.Subsystem = namespace, subsystem
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registry.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return collector, nil
}

func registerHistogram(registry *prometheus.Registry, opts prometheus.HistogramOpts, labels ...string) (*prometheus.HistogramVec, error) {
	opts.Namespace, opts.Subsystem = namespace, subsystem
	opts.Buckets = histogramBuckets
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registry.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return collector, nil
}
