// Package gallery serves the photo gallery with its filters and lightbox.
package gallery

import (
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/module"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
)

// Module provides the gallery page.
type Module struct {
	gateway   GalleryGateway
	base      modulehandler.Base
	mediaBase string
}

// New returns a gallery module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a gallery module reading from gateway.
func NewWithGateway(gateway GalleryGateway, base modulehandler.Base, mediaBase string) Module {
	return Module{gateway: gateway, base: base, mediaBase: mediaBase}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "gallery" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires gallery route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base, m.mediaBase)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.GalleryPrefix, Handler: mux}, nil
}
