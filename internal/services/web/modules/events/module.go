// Package events serves the event listing and its detail modal.
package events

import (
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/module"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
)

// Module provides the events page.
type Module struct {
	gateway   EventGateway
	base      modulehandler.Base
	mediaBase string
}

// New returns an events module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns an events module reading from gateway.
func NewWithGateway(gateway EventGateway, base modulehandler.Base, mediaBase string) Module {
	return Module{gateway: gateway, base: base, mediaBase: mediaBase}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "events" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires events route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base, m.mediaBase)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.EventsPrefix, Handler: mux}, nil
}
