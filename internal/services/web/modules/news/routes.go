package news

import (
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.News, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.NewsFeed, h.handleFeed)
	mux.HandleFunc(http.MethodGet+" "+routepath.NewsPostPattern, h.handlePost)
	mux.HandleFunc(http.MethodGet+" "+routepath.NewsPrefix, h.WriteNotFound)
}
