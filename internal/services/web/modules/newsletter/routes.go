package newsletter

import (
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.Handle(http.MethodPost+" "+routepath.NewsletterSubscribe, h.LimitForms(http.HandlerFunc(h.handleSubscribe)))
	mux.HandleFunc(http.MethodGet+" "+routepath.NewsletterSubscribe, h.handleOpenModal)
	mux.HandleFunc(http.MethodGet+" "+routepath.Newsletter, h.handleOpenModal)
	mux.HandleFunc(http.MethodGet+" "+routepath.NewsletterPrefix, h.WriteNotFound)
}
