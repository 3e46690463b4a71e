package resources

import (
	"context"
	"net/http"
	"strings"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	webtemplates "github.com/pleromasprings/website/internal/services/web/templates"
)

type resourceService interface {
	listPublic(ctx context.Context) ([]content.Resource, error)
}

type handlers struct {
	modulehandler.Base
	service   resourceService
	mediaBase string
}

func newHandlers(s service, base modulehandler.Base, mediaBase string) handlers {
	return handlers{Base: base, service: s, mediaBase: mediaBase}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(r)
	view := webtemplates.ResourcesView{}

	resources, err := h.service.listPublic(r.Context())
	if err != nil {
		h.Logf("load resources failed err=%v", err)
		view.Failed = true
	} else {
		view.Resources = make([]webtemplates.ResourceCard, 0, len(resources))
		for _, resource := range resources {
			view.Resources = append(view.Resources, webtemplates.ResourceCard{
				Title:       strings.TrimSpace(resource.Title),
				Description: strings.TrimSpace(resource.Description),
				URL:         content.MediaURL(h.mediaBase, resource.File),
			})
		}
	}
	h.WritePage(w, r, webtemplates.T(loc, "resources.title"), http.StatusOK, webtemplates.ResourcesPage(view, loc))
}
