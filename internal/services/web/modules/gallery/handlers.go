package gallery

import (
	"context"
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	webtemplates "github.com/pleromasprings/website/internal/services/web/templates"
)

type galleryService interface {
	list(ctx context.Context, f filter) (listing, error)
}

type handlers struct {
	modulehandler.Base
	service   galleryService
	mediaBase string
}

func newHandlers(s service, base modulehandler.Base, mediaBase string) handlers {
	return handlers{Base: base, service: s, mediaBase: mediaBase}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(r)
	query := r.URL.Query()
	f := parseFilter(query.Get(routepath.CategoryParam), query.Get(routepath.SortParam), query.Get(routepath.ViewParam))

	view := webtemplates.GalleryView{
		Sorts:   sortOptions(f, loc),
		Views:   viewOptions(f, loc),
		Grouped: f.View == viewCategorized,
	}
	result, err := h.service.list(r.Context(), f)
	if err != nil {
		h.Logf("load gallery items failed err=%v", err)
		view.Failed = true
		view.Categories = categoryOptions(nil, f, loc)
	} else {
		if result.CategoriesErr != nil {
			h.Logf("load gallery categories failed err=%v", result.CategoriesErr)
		}
		view.Categories = categoryOptions(result.Categories, f, loc)
		view.Photos = h.photoCards(result.Items, r)
		if view.Grouped {
			view.Groups = h.photoGroups(result.Items, r, loc)
		}
		view.Lightbox = h.lightbox(result.Items, r, loc)
	}
	h.WritePage(w, r, webtemplates.T(loc, "gallery.title"), http.StatusOK, webtemplates.GalleryPage(view, loc))
}
