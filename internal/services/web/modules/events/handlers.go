package events

import (
	"context"
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/modules/cards"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	webtemplates "github.com/pleromasprings/website/internal/services/web/templates"
)

type eventService interface {
	listEvents(ctx context.Context) ([]content.Event, error)
}

type handlers struct {
	modulehandler.Base
	service   eventService
	mediaBase string
}

func newHandlers(s service, base modulehandler.Base, mediaBase string) handlers {
	return handlers{Base: base, service: s, mediaBase: mediaBase}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(r)
	view := webtemplates.EventsView{}

	events, err := h.service.listEvents(r.Context())
	if err != nil {
		h.Logf("load events failed err=%v", err)
		view.Failed = true
	} else {
		view.Events = cards.Events(events, h.mediaBase, r, loc)
		view.Selected = cards.SelectedEvent(events, h.mediaBase, r, loc)
	}
	h.WritePage(w, r, webtemplates.T(loc, "events.title"), http.StatusOK, webtemplates.EventsPage(view, loc))
}
