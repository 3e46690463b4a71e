// Package home serves the homepage and the site-level utility routes.
package home

import (
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/module"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
)

// Module provides the homepage, health, robots and sitemap routes, and
// sends every other GET back to the homepage.
type Module struct {
	gateway   HighlightGateway
	base      modulehandler.Base
	site      sitecontent.Site
	mediaBase string
	siteURL   string
}

// New returns a home module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{site: sitecontent.Default()}
}

// NewWithGateway returns a home module reading highlights from gateway.
func NewWithGateway(gateway HighlightGateway, base modulehandler.Base, site sitecontent.Site, mediaBase string, siteURL string) Module {
	return Module{gateway: gateway, base: base, site: site, mediaBase: mediaBase, siteURL: siteURL}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires home route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base, m.site, m.mediaBase, m.siteURL)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
