package pagerender

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	flashnotice "github.com/pleromasprings/website/internal/services/web/platform/flash"
	"github.com/pleromasprings/website/internal/services/web/platform/requestmeta"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
)

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

type failingComponent struct{}

func (failingComponent) Render(context.Context, io.Writer) error {
	return errors.New("template exploded")
}

func testSite() Site {
	site := SiteFromContent(sitecontent.Default(), requestmeta.ProxyPolicy{})
	site.Now = func() time.Time { return time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC) }
	return site
}

func setFlashCookie(t *testing.T, req *http.Request, notice flashnotice.Notice) {
	t.Helper()
	payload, err := json.Marshal(notice)
	if err != nil {
		t.Fatalf("marshal notice: %v", err)
	}
	req.AddCookie(&http.Cookie{Name: flashnotice.CookieName, Value: base64.RawURLEncoding.EncodeToString(payload)})
}

func TestWritePageRendersLayoutWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/programs", nil)
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, testSite(), Page{
		Title:      "Our Programs",
		StatusCode: http.StatusAccepted,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	body := rr.Body.String()
	for _, marker := range []string{`id="main"`, `id="fragment-root"`, "Our Programs | Pleroma Springs Foundation", "© 2025"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q", marker)
		}
	}
}

func TestWritePageTemplateFailureWritesNothing(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	err := WritePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), testSite(), Page{Fragment: failingComponent{}})
	if err == nil {
		t.Fatal("expected render error")
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rr.Body.String())
	}
}

func TestWritePageRendersToastFromFlashNotice(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	setFlashCookie(t, req, flashnotice.Success("contact.success"))
	rr := httptest.NewRecorder()

	if err := WritePage(rr, req, testSite(), Page{Title: "Contact"}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Thank you for your message! We will get back to you soon.") {
		t.Fatalf("body missing toast message")
	}
	cleared := false
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == flashnotice.CookieName && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected flash cookie to be cleared")
	}
}

func TestWritePageShowsNewsletterErrorInsideModal(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/events?subscribe=1", nil)
	setFlashCookie(t, req, flashnotice.Notice{Kind: flashnotice.KindError, Key: "newsletter.error.api_field", Message: "Enter a valid email address."})
	rr := httptest.NewRecorder()

	if err := WritePage(rr, req, testSite(), Page{Title: "Events"}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `class="modal modal-newsletter"`) {
		t.Fatal("expected newsletter modal")
	}
	if !strings.Contains(body, "Error: Enter a valid email address.") {
		t.Fatal("expected newsletter error inside modal")
	}
	if strings.Contains(body, `class="toast`) {
		t.Fatal("newsletter error should not render as toast")
	}
	if !strings.Contains(body, `name="return_to" value="/events"`) {
		t.Fatal("expected return path without subscribe parameter")
	}
}

func TestWritePageUsesRequestLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=fr-FR", nil)
	rr := httptest.NewRecorder()
	if err := WritePage(rr, req, testSite(), Page{}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if !strings.Contains(rr.Body.String(), `<html lang="fr-FR">`) {
		t.Fatalf("expected french document")
	}
}

func TestNoticeMessage(t *testing.T) {
	t.Parallel()

	if got := NoticeMessage(nil, flashnotice.Notice{Message: "raw"}); got != "raw" {
		t.Fatalf("message-only notice = %q", got)
	}
	if got := NoticeMessage(nil, flashnotice.Notice{Key: "Error: %s", Message: "bad"}); got != "Error: bad" {
		t.Fatalf("key with argument = %q", got)
	}
}

func TestWritePageNilWriter(t *testing.T) {
	t.Parallel()

	if err := WritePage(nil, httptest.NewRequest(http.MethodGet, "/", nil), testSite(), Page{}); err != nil {
		t.Fatalf("WritePage(nil) error = %v", err)
	}
}
