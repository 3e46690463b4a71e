package modulehandler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	flashnotice "github.com/pleromasprings/website/internal/services/web/platform/flash"
	"github.com/pleromasprings/website/internal/services/web/platform/pagerender"
	"github.com/pleromasprings/website/internal/services/web/platform/ratelimit"
)

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

type failingComponent struct{}

func (failingComponent) Render(context.Context, io.Writer) error {
	return errors.New("broken template")
}

func TestWritePageRendersInLayout(t *testing.T) {
	t.Parallel()

	base := NewTestBase()
	rr := httptest.NewRecorder()
	base.WritePage(rr, httptest.NewRequest(http.MethodGet, "/impact", nil), "Our Impact", http.StatusOK, textComponent(`<p id="body">ok</p>`))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `<p id="body">ok</p>`) {
		t.Fatalf("body missing fragment")
	}
}

func TestWritePageRenderFailureLogsAndWritesServerError(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	base := NewBase(pagerender.Site{Name: "Test"}, WithLogger(log.New(&logs, "", 0)))
	rr := httptest.NewRecorder()
	base.WritePage(rr, httptest.NewRequest(http.MethodGet, "/impact", nil), "Impact", http.StatusOK, failingComponent{})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(logs.String(), "render page failed path=/impact") {
		t.Fatalf("log = %q", logs.String())
	}
}

func TestWriteNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewTestBase().WriteNotFound(rr, httptest.NewRequest(http.MethodGet, "/gallery/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "Page not found") {
		t.Fatalf("body missing not found heading")
	}
}

func TestWriteNoticeAndRedirect(t *testing.T) {
	t.Parallel()

	base := NewTestBase()
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	rr := httptest.NewRecorder()
	base.WriteNotice(rr, req, flashnotice.Success("contact.success"))
	base.Redirect(rr, req, "/contact#contact")
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	found := false
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == flashnotice.CookieName && cookie.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected flash cookie")
	}
}

func TestLogfWithoutLoggerIsNoop(t *testing.T) {
	t.Parallel()

	NewTestBase().Logf("ignored %d", 1)
	NewTestBase().ObserveForm("contact", "success")
}

func TestLimitFormsRejectsExcessPosts(t *testing.T) {
	t.Parallel()

	base := NewBase(pagerender.Site{Name: "Test"}, WithFormLimiter(ratelimit.New(1, 1)))
	accepted := 0
	h := base.LimitForms(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		accepted++
		w.WriteHeader(http.StatusSeeOther)
	}))

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}
	if got := post(); got != http.StatusSeeOther {
		t.Fatalf("first post status = %d", got)
	}
	if got := post(); got != http.StatusTooManyRequests {
		t.Fatalf("second post status = %d, want 429", got)
	}
	if accepted != 1 {
		t.Fatalf("accepted = %d, want 1", accepted)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/contact", nil))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("get status = %d, want pass-through", rr.Code)
	}
}

func TestLimitFormsWithoutLimiterPassesThrough(t *testing.T) {
	t.Parallel()

	h := NewTestBase().LimitForms(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	for i := 0; i < 5; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/contact", nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("post %d status = %d", i, rr.Code)
		}
	}
}
