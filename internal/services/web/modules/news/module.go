// Package news serves the blog listing, post pages and the RSS feed.
package news

import (
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/module"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
)

// Module provides news routes.
type Module struct {
	gateway   PostGateway
	base      modulehandler.Base
	mediaBase string
	siteURL   string
}

// New returns a news module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a news module reading posts from gateway. siteURL
// is the public origin used for feed links.
func NewWithGateway(gateway PostGateway, base modulehandler.Base, mediaBase string, siteURL string) Module {
	return Module{gateway: gateway, base: base, mediaBase: mediaBase, siteURL: siteURL}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "news" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires news route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base, m.mediaBase, m.siteURL)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.NewsPrefix, Handler: mux}, nil
}
