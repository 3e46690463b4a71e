// Package about serves the organisation overview and team page.
package about

import (
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/module"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
)

// Module provides the about page.
type Module struct {
	gateway   TeamGateway
	base      modulehandler.Base
	site      sitecontent.Site
	mediaBase string
}

// New returns an about module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{site: sitecontent.Default()}
}

// NewWithGateway returns an about module reading team members from gateway.
func NewWithGateway(gateway TeamGateway, base modulehandler.Base, site sitecontent.Site, mediaBase string) Module {
	return Module{gateway: gateway, base: base, site: site, mediaBase: mediaBase}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "about" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires about route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway)
	h := newHandlers(svc, m.base, m.site, m.mediaBase)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.AboutPrefix, Handler: mux}, nil
}
