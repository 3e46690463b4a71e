package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/pleromasprings/website/internal/services/web/module"
	"github.com/pleromasprings/website/internal/services/web/platform/requestmeta"
)

func noContent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/news/", Handler: noContent()}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/news/", Handler: noContent()}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
	if got := err.Error(); !strings.Contains(got, `"two"`) || !strings.Contains(got, `"one"`) {
		t.Fatalf("unexpected error = %q", got)
	}
}

func TestComposeRejectsInvalidModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "empty", prefix: ""},
		{name: "missing leading slash", prefix: "events/"},
		{name: "missing trailing slash", prefix: "/events"},
		{name: "contains surrounding whitespace", prefix: "/events/ "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				Modules: []module.Module{
					stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: noContent()}},
				},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil module error")
	}
}

func TestComposeRejectsNilHandler(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "events", mount: module.Mount{Prefix: "/events/"}}},
	})
	if err == nil || !strings.Contains(err.Error(), "handler is required") {
		t.Fatalf("Compose() error = %v, want handler error", err)
	}
}

func TestComposePropagatesMountError(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "events", err: errors.New("boom")}},
	})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("Compose() error = %v, want mount error", err)
	}
}

func TestComposeServesSubtreeAndSlashlessPath(t *testing.T) {
	t.Parallel()

	var paths []string
	h, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "home", mount: module.Mount{Prefix: "/", Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})}},
			stubModule{id: "news", mount: module.Mount{Prefix: "/news/", Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				paths = append(paths, r.URL.Path)
				w.WriteHeader(http.StatusNoContent)
			})}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	for _, target := range []string{"/news", "/news/water-project"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("GET %s status = %d, want %d", target, rr.Code, http.StatusNoContent)
		}
	}
	if strings.Join(paths, ",") != "/news,/news/water-project" {
		t.Fatalf("paths = %v", paths)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/unknown", nil))
	if rr.Code != http.StatusTeapot {
		t.Fatalf("root fallback status = %d, want %d", rr.Code, http.StatusTeapot)
	}
}

func TestComposeCrossOriginMutations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		method  string
		target  string
		headers map[string]string
		policy  requestmeta.ProxyPolicy
		want    int
	}{
		{
			name:   "no origin evidence",
			method: http.MethodPost,
			target: "http://pleroma.test/contact",
			want:   http.StatusNoContent,
		},
		{
			name:    "same origin",
			method:  http.MethodPost,
			target:  "https://pleroma.test/contact",
			headers: map[string]string{"Origin": "https://pleroma.test"},
			want:    http.StatusNoContent,
		},
		{
			name:    "foreign origin",
			method:  http.MethodPost,
			target:  "https://pleroma.test/contact",
			headers: map[string]string{"Origin": "https://evil.test"},
			want:    http.StatusForbidden,
		},
		{
			name:    "opaque origin",
			method:  http.MethodPost,
			target:  "https://pleroma.test/contact",
			headers: map[string]string{"Origin": "null"},
			want:    http.StatusForbidden,
		},
		{
			name:    "foreign referer",
			method:  http.MethodPost,
			target:  "https://pleroma.test/contact",
			headers: map[string]string{"Referer": "https://evil.test/form"},
			want:    http.StatusForbidden,
		},
		{
			name:    "scheme mismatch",
			method:  http.MethodPost,
			target:  "https://pleroma.test/contact",
			headers: map[string]string{"Origin": "http://pleroma.test"},
			want:    http.StatusForbidden,
		},
		{
			name:    "non default port omitted",
			method:  http.MethodPost,
			target:  "https://pleroma.test:8443/contact",
			headers: map[string]string{"Origin": "https://pleroma.test"},
			want:    http.StatusForbidden,
		},
		{
			name:    "forwarded proto untrusted",
			method:  http.MethodPost,
			target:  "http://pleroma.test/contact",
			headers: map[string]string{"Origin": "https://pleroma.test", "X-Forwarded-Proto": "https"},
			want:    http.StatusForbidden,
		},
		{
			name:    "forwarded proto trusted",
			method:  http.MethodPost,
			target:  "http://pleroma.test/contact",
			headers: map[string]string{"Origin": "https://pleroma.test", "X-Forwarded-Proto": "https"},
			policy:  requestmeta.ProxyPolicy{TrustForwarded: true},
			want:    http.StatusNoContent,
		},
		{
			name:    "reads ignore origin",
			method:  http.MethodGet,
			target:  "https://pleroma.test/contact",
			headers: map[string]string{"Origin": "https://evil.test"},
			want:    http.StatusNoContent,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h, err := Compose(ComposeInput{
				Policy:  tc.policy,
				Modules: []module.Module{stubModule{id: "contact", mount: module.Mount{Prefix: "/contact/", Handler: noContent()}}},
			})
			if err != nil {
				t.Fatalf("Compose() error = %v", err)
			}
			req := httptest.NewRequest(tc.method, tc.target, nil)
			for key, value := range tc.headers {
				req.Header.Set(key, value)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
		})
	}
}

func TestComposeUsesForbiddenRenderer(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "contact", mount: module.Mount{Prefix: "/contact/", Handler: noContent()}}},
		OnForbidden: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("custom"))
		}),
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "https://pleroma.test/contact", nil)
	req.Header.Set("Origin", "https://evil.test")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden || rr.Body.String() != "custom" {
		t.Fatalf("response = %d %q", rr.Code, rr.Body.String())
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string {
	return s.id
}

func (s stubModule) Mount() (module.Mount, error) {
	return s.mount, s.err
}
