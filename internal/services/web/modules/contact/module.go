// Package contact serves the contact page and its contact, volunteer and
// partnership forms.
package contact

import (
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/module"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
)

// Module provides contact routes.
type Module struct {
	gateway SubmissionGateway
	base    modulehandler.Base
	site    sitecontent.Site
}

// New returns a contact module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{site: sitecontent.Default()}
}

// NewWithGateway returns a contact module posting submissions to gateway.
func NewWithGateway(gateway SubmissionGateway, base modulehandler.Base, site sitecontent.Site) Module {
	return Module{gateway: gateway, base: base, site: site}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires contact route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base, m.site)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ContactPrefix, Handler: mux}, nil
}
