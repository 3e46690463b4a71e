package requestmeta

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsCrossOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		origin  string
		referer string
		proto   string
		policy  ProxyPolicy
		want    bool
	}{
		{name: "no evidence", target: "http://site.test/contact", want: false},
		{name: "same origin", target: "http://site.test/contact", origin: "http://site.test", want: false},
		{name: "same origin explicit port", target: "http://site.test/contact", origin: "http://site.test:80", want: false},
		{name: "other host", target: "http://site.test/contact", origin: "http://evil.test", want: true},
		{name: "opaque origin", target: "http://site.test/contact", origin: "null", want: true},
		{name: "scheme mismatch", target: "https://site.test/contact", origin: "http://site.test", want: true},
		{name: "same referer", target: "http://site.test/contact", referer: "http://site.test/news?x=1", want: false},
		{name: "foreign referer", target: "http://site.test/contact", referer: "https://evil.test/page", want: true},
		{name: "untrusted forwarded proto", target: "http://site.test/contact", origin: "https://site.test", proto: "https", want: true},
		{name: "trusted forwarded proto", target: "http://site.test/contact", origin: "https://site.test", proto: "https", policy: ProxyPolicy{TrustForwarded: true}, want: false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, tc.target, nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.referer != "" {
				req.Header.Set("Referer", tc.referer)
			}
			if tc.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tc.proto)
			}
			if got := IsCrossOrigin(req, tc.policy); got != tc.want {
				t.Fatalf("IsCrossOrigin() = %v, want %v", got, tc.want)
			}
		})
	}
	if IsCrossOrigin(nil, ProxyPolicy{}) {
		t.Fatal("nil request reported cross-origin")
	}
}

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	if !IsHTTPS(httptest.NewRequest(http.MethodGet, "https://site.test/", nil), ProxyPolicy{}) {
		t.Fatal("https request not detected")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	if IsHTTPS(req, ProxyPolicy{}) {
		t.Fatal("untrusted forwarded proto honoured")
	}
	if !IsHTTPS(req, ProxyPolicy{TrustForwarded: true}) {
		t.Fatal("trusted forwarded proto ignored")
	}
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.RemoteAddr = "10.0.0.5:52100"
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := ClientIP(req, ProxyPolicy{}); got != "10.0.0.5" {
		t.Fatalf("ClientIP(untrusted) = %q", got)
	}
	if got := ClientIP(req, ProxyPolicy{TrustForwarded: true}); got != "203.0.113.9" {
		t.Fatalf("ClientIP(trusted) = %q", got)
	}
	req.Header.Set("X-Forwarded-For", "garbage")
	if got := ClientIP(req, ProxyPolicy{TrustForwarded: true}); got != "10.0.0.5" {
		t.Fatalf("ClientIP(bad header) = %q", got)
	}
}
