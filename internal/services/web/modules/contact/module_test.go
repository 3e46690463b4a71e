package contact

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/integration/contentapi"
	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
	flashnotice "github.com/pleromasprings/website/internal/services/web/platform/flash"
	"github.com/pleromasprings/website/internal/services/web/platform/metrics"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/platform/pagerender"
	"github.com/pleromasprings/website/internal/services/web/platform/ratelimit"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
)

func testModule(gateway SubmissionGateway) Module {
	return NewWithGateway(gateway, modulehandler.NewTestBase(), sitecontent.Default())
}

func serve(t *testing.T, m Module, method string, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func validMessage() url.Values {
	return url.Values{"name": {"Ama"}, "email": {"ama@example.org"}, "subject": {"Visit"}, "message": {"Can we visit?"}}
}

func TestModuleIDPrefixAndHealth(t *testing.T) {
	t.Parallel()

	if New().ID() != "contact" || New().Healthy() {
		t.Fatal("degraded module identity/health mismatch")
	}
	m := testModule(fakeGateway{})
	if !m.Healthy() {
		t.Fatal("module with gateway reports unhealthy")
	}
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.ContactPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
}

func TestRoutesPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	m := testModule(fakeGateway{})
	tests := []struct {
		name     string
		method   string
		path     string
		want     int
		location string
	}{
		{name: "page", method: http.MethodGet, path: routepath.Contact, want: http.StatusOK},
		{name: "delete rejected", method: http.MethodDelete, path: routepath.Contact, want: http.StatusMethodNotAllowed},
		{name: "volunteer get", method: http.MethodGet, path: routepath.ContactVolunteer, want: http.StatusFound, location: "/contact#volunteer"},
		{name: "partner get", method: http.MethodGet, path: routepath.ContactPartner, want: http.StatusFound, location: "/contact#partner"},
		{name: "unknown subpath", method: http.MethodGet, path: routepath.ContactPrefix + "press", want: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := serve(t, m, tc.method, tc.path, nil)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
			if tc.location != "" && rr.Header().Get("Location") != tc.location {
				t.Fatalf("Location = %q, want %q", rr.Header().Get("Location"), tc.location)
			}
		})
	}
}

func TestPageRendersThreeAnchoredForms(t *testing.T) {
	t.Parallel()

	body := serve(t, testModule(fakeGateway{}), http.MethodGet, routepath.Contact, nil).Body.String()
	for _, marker := range []string{`id="contact"`, `id="volunteer"`, `id="partner"`, `action="/contact/volunteer"`, `action="/contact/partner"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestSuccessfulSubmissionsFlashAndRedirect(t *testing.T) {
	t.Parallel()

	var messages []content.ContactMessage
	var applications []content.VolunteerApplication
	var inquiries []content.PartnerInquiry
	m := testModule(fakeGateway{messages: &messages, applications: &applications, inquiries: &inquiries})

	tests := []struct {
		path     string
		form     url.Values
		location string
	}{
		{path: routepath.Contact, form: validMessage(), location: "/contact#contact"},
		{path: routepath.ContactVolunteer, form: url.Values{"name": {" Kofi "}, "email": {"kofi@example.org"}, "areaOfInterest": {"Outreach"}}, location: "/contact#volunteer"},
		{path: routepath.ContactPartner, form: url.Values{"organizationName": {"Smile Co"}, "contactPerson": {"Efua"}, "email": {"efua@smile.example"}, "partnershipType": {"Corporate"}}, location: "/contact#partner"},
	}
	for _, tc := range tests {
		rr := serve(t, m, http.MethodPost, tc.path, tc.form)
		if rr.Code != http.StatusSeeOther {
			t.Fatalf("%s status = %d, want 303", tc.path, rr.Code)
		}
		if got := rr.Header().Get("Location"); got != tc.location {
			t.Fatalf("%s Location = %q, want %q", tc.path, got, tc.location)
		}
		if !strings.Contains(rr.Header().Get("Set-Cookie"), flashnotice.CookieName+"=") {
			t.Fatalf("%s missing flash cookie", tc.path)
		}
	}
	if len(messages) != 1 || messages[0].Subject != "Visit" {
		t.Fatalf("messages = %+v", messages)
	}
	if len(applications) != 1 || applications[0].Name != "Kofi" {
		t.Fatalf("applications = %+v", applications)
	}
	if len(inquiries) != 1 || inquiries[0].OrganizationName != "Smile Co" {
		t.Fatalf("inquiries = %+v", inquiries)
	}
}

func TestInvalidSubmissionsRerenderWithValues(t *testing.T) {
	t.Parallel()

	var messages []content.ContactMessage
	m := testModule(fakeGateway{messages: &messages})

	tests := []struct {
		path   string
		form   url.Values
		alert  string
		marker string
	}{
		{path: routepath.Contact, form: url.Values{"name": {"Ama"}, "email": {"ama@example.org"}}, alert: "Please fill in all fields for the main contact form.", marker: `value="Ama"`},
		{path: routepath.ContactVolunteer, form: url.Values{"name": {"Kofi"}}, alert: "Please fill in required fields for the volunteer form.", marker: `value="Kofi"`},
		{path: routepath.ContactPartner, form: url.Values{"organizationName": {"Smile Co"}}, alert: "Please fill in required fields for the partnership form.", marker: `value="Smile Co"`},
	}
	for _, tc := range tests {
		rr := serve(t, m, http.MethodPost, tc.path, tc.form)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s status = %d, want 400", tc.path, rr.Code)
		}
		body := rr.Body.String()
		if !strings.Contains(body, tc.alert) || !strings.Contains(body, tc.marker) {
			t.Fatalf("%s body missing alert or kept value", tc.path)
		}
	}
	if len(messages) != 0 {
		t.Fatalf("invalid message reached the gateway: %+v", messages)
	}
}

func TestInvalidEmailShowsFieldError(t *testing.T) {
	t.Parallel()

	form := validMessage()
	form.Set("email", "not-an-email")
	rr := serve(t, testModule(fakeGateway{}), http.MethodPost, routepath.Contact, form)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Please enter a valid email address.") {
		t.Fatal("field error missing")
	}
	if strings.Contains(body, "Please fill in all fields for the main contact form.") {
		t.Fatal("required alert shown for a format error")
	}
}

func TestContactAPIFailureShowsDetails(t *testing.T) {
	t.Parallel()

	apiErr := apperrors.Wrap(apperrors.KindInvalidInput, "content api contact rejected input",
		&contentapi.APIError{Endpoint: "contact", Status: http.StatusBadRequest, Body: []byte("mail server down")})
	rr := serve(t, testModule(fakeGateway{err: apiErr}), http.MethodPost, routepath.Contact, validMessage())
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "There was an error sending your message: mail server down") {
		t.Fatal("api details missing")
	}

	rr = serve(t, testModule(fakeGateway{err: apperrors.E(apperrors.KindUnavailable, "down")}), http.MethodPost, routepath.Contact, validMessage())
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "There was an error sending your message. Please try again later.") || !strings.Contains(body, `value="Visit"`) {
		t.Fatal("generic api alert or kept values missing")
	}
}

func TestVolunteerAndPartnerAPIFailures(t *testing.T) {
	t.Parallel()

	m := testModule(fakeGateway{err: errors.New("boom")})
	rr := serve(t, m, http.MethodPost, routepath.ContactVolunteer, url.Values{"name": {"Kofi"}, "email": {"kofi@example.org"}, "areaOfInterest": {"Outreach"}})
	if rr.Code != http.StatusBadGateway || !strings.Contains(rr.Body.String(), "Error submitting volunteer application. Please try again.") {
		t.Fatalf("volunteer failure = %d", rr.Code)
	}
	rr = serve(t, m, http.MethodPost, routepath.ContactPartner, url.Values{"organizationName": {"Smile Co"}, "contactPerson": {"Efua"}, "email": {"efua@smile.example"}, "partnershipType": {"Corporate"}})
	if rr.Code != http.StatusBadGateway || !strings.Contains(rr.Body.String(), "Error submitting partnership inquiry. Please try again.") {
		t.Fatalf("partner failure = %d", rr.Code)
	}
}

func TestSubmissionsAreRateLimitedAndCounted(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	m, err := metrics.New(registry)
	if err != nil {
		t.Fatalf("metrics.New() error = %v", err)
	}
	site := sitecontent.Default()
	base := modulehandler.NewBase(pagerender.Site{Name: site.Name},
		modulehandler.WithMetrics(m), modulehandler.WithFormLimiter(ratelimit.New(1, 1)))
	module := NewWithGateway(fakeGateway{}, base, site)

	if rr := serve(t, module, http.MethodPost, routepath.Contact, validMessage()); rr.Code != http.StatusSeeOther {
		t.Fatalf("first status = %d, want 303", rr.Code)
	}
	if rr := serve(t, module, http.MethodPost, routepath.Contact, validMessage()); rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", rr.Code)
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	accepted := 0.0
	for _, family := range families {
		if !strings.HasSuffix(family.GetName(), "form_submissions_total") {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			if labels["form"] == formContact && labels["outcome"] == outcomeAccepted {
				accepted += metric.GetCounter().GetValue()
			}
		}
	}
	if accepted != 1 {
		t.Fatalf("accepted submissions = %v, want 1", accepted)
	}
}
