package resources

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
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

func TestModuleContracts(t *testing.T) {
	t.Parallel()

	if New().ID() != "resources" || New().Healthy() {
		t.Fatal("degraded module identity/health mismatch")
	}
	m := NewWithGateway(fakeGateway{}, modulehandler.NewTestBase(), "")
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.ResourcesPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: routepath.Resources, want: http.StatusOK},
		{method: http.MethodPost, path: routepath.Resources, want: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: routepath.ResourcesPrefix + "annual-report.pdf", want: http.StatusNotFound},
	}
	for _, tc := range tests {
		if rr := serve(t, m, tc.method, tc.path); rr.Code != tc.want {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
}

func TestIndexListsPublicResourcesWithMediaLinks(t *testing.T) {
	t.Parallel()

	m := NewWithGateway(fakeGateway{resources: []content.Resource{
		{ID: "1", Title: "Annual Report", Description: "Our year in review.", File: "/media/resources/report.pdf", IsPublic: true},
		{ID: "2", Title: "Board Minutes", File: "/media/resources/minutes.pdf"},
		{ID: "3", Title: "Brushing Guide", File: "https://cdn.example.org/guide.pdf", IsPublic: true},
	}}, modulehandler.NewTestBase(), "https://cms.example.org/")

	body := serve(t, m, http.MethodGet, routepath.Resources).Body.String()
	for _, marker := range []string{"Annual Report", "https://cms.example.org/media/resources/report.pdf", "https://cdn.example.org/guide.pdf"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
	if strings.Contains(body, "Board Minutes") {
		t.Fatal("private resource rendered")
	}
}

func TestEmptyAndFailedStates(t *testing.T) {
	t.Parallel()

	body := serve(t, NewWithGateway(fakeGateway{}, modulehandler.NewTestBase(), ""), http.MethodGet, routepath.Resources).Body.String()
	if !strings.Contains(body, "No resources available at the moment.") {
		t.Fatal("empty message missing")
	}
	body = serve(t, NewWithGateway(fakeGateway{err: errors.New("down")}, modulehandler.NewTestBase(), ""), http.MethodGet, routepath.Resources).Body.String()
	if !strings.Contains(body, "Failed to load resources. Please try again later.") {
		t.Fatal("failure message missing")
	}
}
