package httpmux

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestMountStaticServesStaticPrefix(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	staticFS := fstest.MapFS{
		"site.js": &fstest.MapFile{Data: []byte("console.log('ok');")},
	}
	MountStatic(rootMux, staticFS, nil)

	req := httptest.NewRequest(http.MethodGet, "/static/site.js", nil)
	rec := httptest.NewRecorder()
	rootMux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "console.log('ok');" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestMountStaticHidesDirectoryListing(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	MountStatic(rootMux, fstest.MapFS{"img/logo.svg": &fstest.MapFile{Data: []byte("<svg/>")}}, nil)

	for _, target := range []string{"/static/", "/static/img/"} {
		rec := httptest.NewRecorder()
		rootMux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("GET %s status = %d, want %d", target, rec.Code, http.StatusNotFound)
		}
	}
}

func TestMountStaticRejectsPost(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	MountStatic(rootMux, fstest.MapFS{"site.css": &fstest.MapFile{Data: []byte("body{}")}}, nil)

	rec := httptest.NewRecorder()
	rootMux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/static/site.css", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestMountAssetsServesDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "report.pdf"), []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}
	rootMux := http.NewServeMux()
	MountAssets(rootMux, dir, nil)

	rec := httptest.NewRecorder()
	rootMux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/report.pdf", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = httptest.NewRecorder()
	rootMux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/missing.pdf", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestMountNoopOnEmptyInputs(t *testing.T) {
	t.Parallel()

	rootMux := http.NewServeMux()
	MountStatic(nil, fstest.MapFS{}, nil)
	MountStatic(rootMux, fs.FS(nil), nil)
	MountAssets(rootMux, "  ", nil)

	rec := httptest.NewRecorder()
	rootMux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/x", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
