// Package httpmux mounts the file-serving routes that sit beside the
// modules on the root mux.
package httpmux

import (
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/pleromasprings/website/internal/services/web/routepath"
)

// MountStatic wires the embedded static route into the root mux.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, withStaticMime func(http.Handler) http.Handler) {
	if rootMux == nil || staticFS == nil {
		return
	}
	mountFiles(rootMux, routepath.StaticPrefix, staticFS, withStaticMime)
}

// MountAssets serves dir under /assets/. An empty dir mounts nothing.
func MountAssets(rootMux *http.ServeMux, dir string, withStaticMime func(http.Handler) http.Handler) {
	dir = strings.TrimSpace(dir)
	if rootMux == nil || dir == "" {
		return
	}
	mountFiles(rootMux, routepath.AssetsPrefix, os.DirFS(dir), withStaticMime)
}

func mountFiles(rootMux *http.ServeMux, prefix string, files fs.FS, withStaticMime func(http.Handler) http.Handler) {
	var handler http.Handler = http.StripPrefix(prefix, noDirectoryListing(http.FileServer(http.FS(files))))
	if withStaticMime != nil {
		handler = withStaticMime(handler)
	}
	rootMux.Handle(http.MethodGet+" "+prefix, handler)
}

func noDirectoryListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
