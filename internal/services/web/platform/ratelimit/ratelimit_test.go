package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAllowHonoursBurstPerKey(t *testing.T) {
	t.Parallel()

	l := New(6, 2)
	fixed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("burst requests rejected")
	}
	if l.Allow("a") {
		t.Fatal("third request within burst window allowed")
	}
	if !l.Allow("b") {
		t.Fatal("independent key rejected")
	}

	fixed = fixed.Add(10 * time.Second)
	if !l.Allow("a") {
		t.Fatal("token not refilled after interval")
	}
}

func TestIdleKeysAreSwept(t *testing.T) {
	t.Parallel()

	l := New(6, 1)
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	l.Allow("a")
	l.Allow("b")
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	clock = clock.Add(30 * time.Minute)
	l.Allow("c")
	if l.Len() != 1 {
		t.Fatalf("Len() after sweep = %d, want 1", l.Len())
	}
}

func TestDisabledLimiterAllowsEverything(t *testing.T) {
	t.Parallel()

	l := New(0, 1)
	for range 100 {
		if !l.Allow("a") {
			t.Fatal("disabled limiter rejected request")
		}
	}
	var nilLimiter *Limiter
	if !nilLimiter.Allow("a") {
		t.Fatal("nil limiter rejected request")
	}
}

func TestMiddlewareLimitsPostsOnly(t *testing.T) {
	t.Parallel()

	l := New(1, 1)
	h := Middleware(l, func(r *http.Request) string { return r.RemoteAddr }, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	}))

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}
	if got := post(); got != http.StatusSeeOther {
		t.Fatalf("first post = %d", got)
	}
	if got := post(); got != http.StatusTooManyRequests {
		t.Fatalf("second post = %d, want 429", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("get = %d, want pass through", rr.Code)
	}
}
