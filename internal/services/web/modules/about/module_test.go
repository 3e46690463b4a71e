package about

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
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

func testModule(gateway TeamGateway) Module {
	return NewWithGateway(gateway, modulehandler.NewTestBase(), sitecontent.Default(), "https://cms.example.org")
}

func TestModuleIDAndPrefix(t *testing.T) {
	t.Parallel()

	m := New()
	if m.ID() != "about" {
		t.Fatalf("ID() = %q", m.ID())
	}
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.AboutPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
}

func TestHealthyReflectsGateway(t *testing.T) {
	t.Parallel()

	if New().Healthy() {
		t.Fatal("module without gateway reports healthy")
	}
	if !testModule(fakeGateway{}).Healthy() {
		t.Fatal("module with gateway reports unhealthy")
	}
}

func TestRoutesPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	m := testModule(fakeGateway{members: sampleTeam()})
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "index", method: http.MethodGet, path: routepath.About, wantStatus: http.StatusOK},
		{name: "head", method: http.MethodHead, path: routepath.About, wantStatus: http.StatusOK},
		{name: "post rejected", method: http.MethodPost, path: routepath.About, wantStatus: http.StatusMethodNotAllowed},
		{name: "unknown subpath", method: http.MethodGet, path: routepath.AboutPrefix + "board", wantStatus: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if rr := serve(t, m, tc.method, tc.path); rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}

func TestIndexRendersTeamCards(t *testing.T) {
	t.Parallel()

	rr := serve(t, testModule(fakeGateway{members: sampleTeam()}), http.MethodGet, routepath.About)
	body := rr.Body.String()
	for _, marker := range []string{
		"Dr. Ama Mensah",
		"Kofi Boateng",
		"https://cms.example.org/media/team/ama.jpg",
		routepath.PlaceholderAvatar,
		`href="/about-us?member=2"`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
	if strings.Contains(body, "modal-member") {
		t.Fatal("member modal rendered without selection")
	}
}

func TestMemberParamOpensModal(t *testing.T) {
	t.Parallel()

	rr := serve(t, testModule(fakeGateway{members: sampleTeam()}), http.MethodGet, routepath.About+"?member=1")
	body := rr.Body.String()
	for _, marker := range []string{"modal-member", "mailto:ama@example.org", "https://linkedin.com/in/ama", "Advocate."} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}

	rr = serve(t, testModule(fakeGateway{members: sampleTeam()}), http.MethodGet, routepath.About+"?member=99")
	if strings.Contains(rr.Body.String(), "modal-member") {
		t.Fatal("unknown member opened a modal")
	}
}

func TestTeamFailureShowsMessage(t *testing.T) {
	t.Parallel()

	rr := serve(t, testModule(fakeGateway{err: errors.New("api down")}), http.MethodGet, routepath.About)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Failed to load team members. Please try again later.") {
		t.Fatal("body missing team failure message")
	}
}
