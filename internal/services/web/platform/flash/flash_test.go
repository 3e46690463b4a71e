package flash

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pleromasprings/website/internal/services/web/platform/requestmeta"
)

func roundTrip(t *testing.T, notice Notice) (Notice, bool, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	writeRR := httptest.NewRecorder()
	Write(writeRR, req, notice, requestmeta.ProxyPolicy{})
	header := writeRR.Header().Get("Set-Cookie")
	if header == "" {
		return Notice{}, false, writeRR
	}
	stored, err := http.ParseSetCookie(header)
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	next := httptest.NewRequest(http.MethodGet, "/contact", nil)
	next.AddCookie(stored)
	readRR := httptest.NewRecorder()
	got, ok := ReadAndClear(readRR, next, requestmeta.ProxyPolicy{})
	return got, ok, readRR
}

func TestWriteThenReadAndClear(t *testing.T) {
	t.Parallel()

	got, ok, readRR := roundTrip(t, Success("contact.success"))
	if !ok {
		t.Fatal("ReadAndClear() ok = false")
	}
	if got.Kind != KindSuccess || got.Key != "contact.success" {
		t.Fatalf("notice = %+v", got)
	}
	cleared := readRR.Header().Get("Set-Cookie")
	if !strings.Contains(cleared, CookieName+"=") || !strings.Contains(cleared, "Max-Age=0") {
		t.Fatalf("clear cookie = %q", cleared)
	}
}

func TestRawMessageSurvivesRedirect(t *testing.T) {
	t.Parallel()

	got, ok, _ := roundTrip(t, Notice{Kind: KindError, Message: "Error: Enter a valid email address."})
	if !ok || got.Message != "Error: Enter a valid email address." || got.Key != "" {
		t.Fatalf("notice = %+v ok=%v", got, ok)
	}
}

func TestWriteSkipsInvalidNotices(t *testing.T) {
	t.Parallel()

	for _, notice := range []Notice{{Kind: KindSuccess}, {Kind: "shout", Key: "x"}} {
		if _, ok, rr := roundTrip(t, notice); ok || rr.Header().Get("Set-Cookie") != "" {
			t.Fatalf("notice %+v was written", notice)
		}
	}
}

func TestReadAndClearInvalidCookieValueStillClears(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-base64!"})
	rr := httptest.NewRecorder()
	if _, ok := ReadAndClear(rr, req, requestmeta.ProxyPolicy{}); ok {
		t.Fatal("ReadAndClear() ok = true for invalid cookie")
	}
	if rr.Header().Get("Set-Cookie") == "" {
		t.Fatal("expected clear Set-Cookie header")
	}
}

func TestSecureCookieOnHTTPS(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodPost, "https://site.test/contact", nil), Success("k"), requestmeta.ProxyPolicy{})
	if !strings.Contains(rr.Header().Get("Set-Cookie"), "Secure") {
		t.Fatalf("cookie = %q, want Secure", rr.Header().Get("Set-Cookie"))
	}
}
