package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWithStaticMimeSetsKnownTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "/static/site.css", want: "text/css; charset=utf-8"},
		{path: "/static/SITE.JS", want: "text/javascript; charset=utf-8"},
		{path: "/static/placeholder-avatar.svg", want: "image/svg+xml"},
		{path: "/assets/annual-report.pdf", want: "application/pdf"},
		{path: "/static/readme.txt", want: ""},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		WithStaticMime(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if got := rr.Header().Get("Content-Type"); got != tc.want {
			t.Fatalf("%s content type = %q, want %q", tc.path, got, tc.want)
		}
		if got := rr.Header().Get("Cache-Control"); got != "public, max-age=86400" {
			t.Fatalf("%s cache control = %q", tc.path, got)
		}
	}
}
