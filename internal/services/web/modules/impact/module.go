// Package impact serves headline figures and beneficiary stories.
package impact

import (
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/module"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
)

// Module provides the impact page.
type Module struct {
	gateway   ImpactGateway
	base      modulehandler.Base
	site      sitecontent.Site
	mediaBase string
}

// New returns an impact module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{site: sitecontent.Default()}
}

// NewWithGateway returns an impact module reading from gateway.
func NewWithGateway(gateway ImpactGateway, base modulehandler.Base, site sitecontent.Site, mediaBase string) Module {
	return Module{gateway: gateway, base: base, site: site, mediaBase: mediaBase}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "impact" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires impact route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base, m.site, m.mediaBase)
	mux.HandleFunc(http.MethodGet+" "+routepath.Impact, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ImpactPrefix, h.WriteNotFound)
	return module.Mount{Prefix: routepath.ImpactPrefix, Handler: mux}, nil
}
