// Package resources serves the downloadable documents page.
package resources

import (
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/module"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
)

// Module provides the resources page.
type Module struct {
	gateway   ResourceGateway
	base      modulehandler.Base
	mediaBase string
}

// New returns a resources module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a resources module reading from gateway. File
// paths resolve against mediaBase.
func NewWithGateway(gateway ResourceGateway, base modulehandler.Base, mediaBase string) Module {
	return Module{gateway: gateway, base: base, mediaBase: mediaBase}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "resources" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires resources route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base, m.mediaBase)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ResourcesPrefix, Handler: mux}, nil
}
