package app

import (
	"net/http"

	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
	"github.com/pleromasprings/website/internal/services/web/platform/httpx"
	webi18n "github.com/pleromasprings/website/internal/services/web/platform/i18n"
	"github.com/pleromasprings/website/internal/services/web/platform/observability"
	"github.com/pleromasprings/website/internal/services/web/platform/requestmeta"
	"github.com/pleromasprings/website/internal/services/web/platform/weberror"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	webhttp "github.com/pleromasprings/website/internal/services/web/transport/http"
	"github.com/pleromasprings/website/internal/services/web/transport/httpmux"
)

// BuildRootHandler composes the modules with the file and metrics routes
// and wraps the result in the shared middleware chain.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	site := cfg.Site
	modules, err := Compose(ComposeInput{
		Modules: cfg.Modules,
		Policy:  site.Policy,
		OnForbidden: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Logger != nil {
				cfg.Logger.Printf("cross-origin mutation rejected method=%s path=%s origin=%q referer=%q",
					r.Method, r.URL.Path, r.Header.Get("Origin"), r.Header.Get("Referer"))
			}
			weberror.WriteError(w, r, site, apperrors.EK(apperrors.KindForbidden, "error.message.forbidden", "cross-origin form post"))
		}),
	})
	if err != nil {
		return nil, err
	}

	root := http.NewServeMux()
	httpmux.MountStatic(root, cfg.Static, webhttp.WithStaticMime)
	httpmux.MountAssets(root, cfg.AssetsDir, webhttp.WithStaticMime)
	if cfg.Metrics != nil {
		root.Handle(http.MethodGet+" "+routepath.Metrics, cfg.Metrics.Handler())
	}
	root.Handle("/", modules)

	secureCookies := func(r *http.Request) bool {
		return requestmeta.IsHTTPS(r, site.Policy)
	}
	return httpx.Chain(root,
		httpx.RecoverPanic(cfg.Logger),
		httpx.RequestID(),
		cfg.Metrics.Middleware(),
		observability.RequestLogger(cfg.Logger),
		httpx.SecurityHeaders(),
		webi18n.PersistLanguage(secureCookies),
	), nil
}
