package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("scrape status = %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	return string(body)
}

func TestMiddlewareRecordsRouteAndStatus(t *testing.T) {
	t.Parallel()

	m, err := New(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h := m.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/news/missing-post", nil))

	body := scrape(t, m)
	want := `pleroma_web_http_requests_total{method="GET",route="/news",status="404"} 1`
	if !strings.Contains(body, want) {
		t.Fatalf("scrape missing %q:\n%s", want, body)
	}
}

func TestObserversExposeSeries(t *testing.T) {
	t.Parallel()

	m, err := New(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	m.ObserveUpstream("events", "ok", 20*time.Millisecond)
	m.ObserveCacheLookup("events", true)
	m.ObserveCacheLookup("events", false)
	m.ObserveForm("contact", "accepted")
	m.ObserveRateLimited("/contact")

	body := scrape(t, m)
	for _, want := range []string{
		`pleroma_web_content_api_requests_total{endpoint="events",outcome="ok"} 1`,
		`pleroma_web_cache_lookups_total{result="hit",scope="events"} 1`,
		`pleroma_web_cache_lookups_total{result="miss",scope="events"} 1`,
		`pleroma_web_form_submissions_total{form="contact",outcome="accepted"} 1`,
		`pleroma_web_rate_limit_hits_total{route="/contact"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("scrape missing %q:\n%s", want, body)
		}
	}
}

func TestNewReusesCollectorsOnSharedRegistry(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	first, err := New(registry)
	if err != nil {
		t.Fatalf("first New() error = %v", err)
	}
	second, err := New(registry)
	if err != nil {
		t.Fatalf("second New() error = %v", err)
	}
	first.ObserveForm("partner", "invalid")
	second.ObserveForm("partner", "invalid")
	if !strings.Contains(scrape(t, first), `pleroma_web_form_submissions_total{form="partner",outcome="invalid"} 2`) {
		t.Fatal("collectors were not shared")
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.ObserveCacheLookup("events", true)
	rr := httptest.NewRecorder()
	m.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusTeapot {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestRouteLabel(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                   "/",
		"/":                  "/",
		"/news/some-slug":    "/news",
		"/contact/volunteer": "/contact",
		"/static/site.css":   "/static",
	}
	for path, want := range tests {
		if got := RouteLabel(path); got != want {
			t.Fatalf("RouteLabel(%q) = %q, want %q", path, got, want)
		}
	}
}
