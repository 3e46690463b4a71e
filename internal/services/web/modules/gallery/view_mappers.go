package gallery

import (
	"net/http"
	"strings"

	"github.com/pleromasprings/website/internal/services/web/content"
	webi18n "github.com/pleromasprings/website/internal/services/web/platform/i18n"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	webtemplates "github.com/pleromasprings/website/internal/services/web/templates"
)

func categoryOptions(categories []string, f filter, loc webtemplates.Localizer) []webtemplates.Option {
	options := []webtemplates.Option{{
		Value:    content.AllCategories,
		Label:    webtemplates.T(loc, "gallery.filter.all"),
		Selected: f.Category == content.AllCategories,
	}}
	for _, name := range categories {
		options = append(options, webtemplates.Option{Value: name, Label: name, Selected: name == f.Category})
	}
	return options
}

func sortOptions(f filter, loc webtemplates.Localizer) []webtemplates.Option {
	sorts := content.GallerySorts()
	options := make([]webtemplates.Option, 0, len(sorts))
	for _, sort := range sorts {
		options = append(options, webtemplates.Option{
			Value:    string(sort),
			Label:    webtemplates.T(loc, "gallery.sort."+string(sort)),
			Selected: sort == f.Sort,
		})
	}
	return options
}

func viewOptions(f filter, loc webtemplates.Localizer) []webtemplates.Option {
	return []webtemplates.Option{
		{Value: viewCategorized, Label: webtemplates.T(loc, "gallery.view.categorized"), Selected: f.View == viewCategorized},
		{Value: viewGrid, Label: webtemplates.T(loc, "gallery.view.grid"), Selected: f.View == viewGrid},
	}
}

func (h handlers) photoCards(items []content.GalleryItem, r *http.Request) []webtemplates.PhotoCard {
	cards := make([]webtemplates.PhotoCard, 0, len(items))
	for _, item := range items {
		id := item.ID.String()
		if id == "" {
			continue
		}
		cards = append(cards, webtemplates.PhotoCard{
			ID:    id,
			Title: strings.TrimSpace(item.Title),
			Image: content.MediaURL(h.mediaBase, item.Image),
			URL:   photoURL(r, id),
		})
	}
	return cards
}

func (h handlers) photoGroups(items []content.GalleryItem, r *http.Request, loc webtemplates.Localizer) []webtemplates.PhotoGroup {
	groups := content.GroupGalleryByCategory(items)
	out := make([]webtemplates.PhotoGroup, 0, len(groups))
	for _, group := range groups {
		name := group.Category
		if name == content.UncategorizedGroup {
			name = webtemplates.T(loc, "gallery.uncategorized")
		}
		out = append(out, webtemplates.PhotoGroup{Name: name, Photos: h.photoCards(group.Items, r)})
	}
	return out
}

func (h handlers) lightbox(items []content.GalleryItem, r *http.Request, loc webtemplates.Localizer) *webtemplates.Lightbox {
	prev, current, next, ok := content.Neighbors(items, r.URL.Query().Get(routepath.PhotoParam))
	if !ok {
		return nil
	}
	return &webtemplates.Lightbox{
		Title:       strings.TrimSpace(current.Title),
		Description: strings.TrimSpace(current.Description),
		Image:       content.MediaURL(h.mediaBase, current.Image),
		Category:    current.Category.Label(),
		Date:        webi18n.FormatDate(loc, current.UploadDate.Time),
		PrevURL:     photoURL(r, prev.ID.String()),
		NextURL:     photoURL(r, next.ID.String()),
		CloseURL:    routepath.WithoutParams(r.URL.Path, r.URL.RawQuery, routepath.PhotoParam),
	}
}

func photoURL(r *http.Request, id string) string {
	return routepath.WithParam(r.URL.Path, r.URL.RawQuery, routepath.PhotoParam, id)
}
