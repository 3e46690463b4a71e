package home

import (
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" "+routepath.Robots, h.handleRobots)
	mux.HandleFunc(http.MethodGet+" "+routepath.Sitemap, h.handleSitemap)
	mux.HandleFunc(http.MethodGet+" "+routepath.Root, h.handleUnknown)
}
