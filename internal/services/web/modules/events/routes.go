package events

import (
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Events, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.EventsPrefix, h.WriteNotFound)
}
