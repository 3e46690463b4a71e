package contact

import (
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Contact, h.handleIndex)
	mux.Handle(http.MethodPost+" "+routepath.Contact, h.LimitForms(http.HandlerFunc(h.handleMessage)))
	mux.Handle(http.MethodPost+" "+routepath.ContactVolunteer, h.LimitForms(http.HandlerFunc(h.handleVolunteer)))
	mux.Handle(http.MethodPost+" "+routepath.ContactPartner, h.LimitForms(http.HandlerFunc(h.handlePartner)))
	mux.HandleFunc(http.MethodGet+" "+routepath.ContactVolunteer, h.redirectTo(routepath.VolunteerAnchor))
	mux.HandleFunc(http.MethodGet+" "+routepath.ContactPartner, h.redirectTo(routepath.PartnerAnchor))
	mux.HandleFunc(http.MethodGet+" "+routepath.ContactPrefix, h.WriteNotFound)
}
