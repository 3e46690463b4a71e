package events

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/platform/pagerender"
	"github.com/pleromasprings/website/internal/services/web/routepath"
)

func serve(t *testing.T, m Module, method string, target string) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func TestModuleIDPrefixAndHealth(t *testing.T) {
	t.Parallel()

	m := New()
	if m.ID() != "events" {
		t.Fatalf("ID() = %q", m.ID())
	}
	if m.Healthy() {
		t.Fatal("module without gateway reports healthy")
	}
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.EventsPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
	if !NewWithGateway(fakeGateway{}, modulehandler.NewTestBase(), "").Healthy() {
		t.Fatal("module with gateway reports unhealthy")
	}
}

func TestRoutesPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	m := NewWithGateway(fakeGateway{events: sampleEvents()}, modulehandler.NewTestBase(), "")
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: routepath.Events, want: http.StatusOK},
		{method: http.MethodHead, path: routepath.Events, want: http.StatusOK},
		{method: http.MethodPost, path: routepath.Events, want: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: routepath.EventsPrefix + "2", want: http.StatusNotFound},
	}
	for _, tc := range tests {
		if rr := serve(t, m, tc.method, tc.path); rr.Code != tc.want {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
}

func TestIndexListsEventsSoonestFirstWithoutLimit(t *testing.T) {
	t.Parallel()

	var query content.EventQuery
	m := NewWithGateway(fakeGateway{events: sampleEvents(), query: &query}, modulehandler.NewTestBase(), "")

	body := serve(t, m, http.MethodGet, routepath.Events).Body.String()
	gala := strings.Index(body, "Fundraising Gala")
	camp := strings.Index(body, "Dental Camp")
	if gala < 0 || camp < 0 || gala > camp {
		t.Fatalf("events out of order: gala=%d camp=%d", gala, camp)
	}
	if query.Limit != 0 {
		t.Fatalf("query limit = %d, want 0", query.Limit)
	}
	if strings.Contains(body, `class="modal modal-event"`) {
		t.Fatal("modal rendered without selection")
	}
}

func TestEventParamOpensModal(t *testing.T) {
	t.Parallel()

	m := NewWithGateway(fakeGateway{events: sampleEvents()}, modulehandler.NewTestBase(), "")

	body := serve(t, m, http.MethodGet, routepath.Events+"?event=1").Body.String()
	for _, marker := range []string{"An evening with partners.", "https://example.org/gala", "18:30"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}

	body = serve(t, m, http.MethodGet, routepath.Events+"?event=99").Body.String()
	if strings.Contains(body, "https://example.org/gala") {
		t.Fatal("unknown event opened a modal")
	}
}

func TestEmptyAndFailedStates(t *testing.T) {
	t.Parallel()

	body := serve(t, NewWithGateway(fakeGateway{}, modulehandler.NewTestBase(), ""), http.MethodGet, routepath.Events).Body.String()
	if !strings.Contains(body, "No events scheduled at the moment.") {
		t.Fatal("empty message missing")
	}

	var logs bytes.Buffer
	base := modulehandler.NewBase(pagerender.Site{Name: "Test"}, modulehandler.WithLogger(log.New(&logs, "", 0)))
	rr := serve(t, NewWithGateway(fakeGateway{err: errors.New("boom")}, base, ""), http.MethodGet, routepath.Events)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Failed to load events. Please try again later.") {
		t.Fatal("failure message missing")
	}
	if !strings.Contains(logs.String(), "load events failed err=boom") {
		t.Fatalf("logs = %q", logs.String())
	}
}
