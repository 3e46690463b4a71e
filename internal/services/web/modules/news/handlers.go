package news

import (
	"context"
	"net/http"
	"strings"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/markup"
	"github.com/pleromasprings/website/internal/services/web/modules/cards"
	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
	webi18n "github.com/pleromasprings/website/internal/services/web/platform/i18n"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	webtemplates "github.com/pleromasprings/website/internal/services/web/templates"
)

type newsService interface {
	listPosts(ctx context.Context, search string, categorySlug string) ([]content.BlogPost, error)
	listCategories(ctx context.Context) ([]content.Category, error)
	post(ctx context.Context, slug string) (content.BlogPost, error)
	feed(ctx context.Context) ([]content.BlogPost, error)
}

type handlers struct {
	modulehandler.Base
	service   newsService
	mediaBase string
	siteURL   string
}

func newHandlers(s service, base modulehandler.Base, mediaBase string, siteURL string) handlers {
	return handlers{Base: base, service: s, mediaBase: mediaBase, siteURL: siteURL}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(r)
	query := r.URL.Query()
	search := strings.TrimSpace(query.Get(routepath.SearchParam))
	category := strings.TrimSpace(query.Get(routepath.CategoryParam))
	view := webtemplates.NewsListView{Search: search}

	// The filter is optional; a failed category read only hides it.
	if categories, err := h.service.listCategories(r.Context()); err != nil {
		h.Logf("load categories failed err=%v", err)
	} else {
		view.Categories = categoryOptions(categories, category)
	}

	posts, err := h.service.listPosts(r.Context(), search, category)
	if err != nil {
		h.Logf("load blog posts failed err=%v", err)
		view.Failed = true
	} else {
		view.Posts = cards.Posts(posts, h.mediaBase, loc)
	}
	h.WritePage(w, r, webtemplates.T(loc, "news.title"), http.StatusOK, webtemplates.NewsListPage(view, loc))
}

func (h handlers) handlePost(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(r)
	slug := r.PathValue("slug")

	post, err := h.service.post(r.Context(), slug)
	if err != nil {
		h.writeMissing(w, r, loc, slug, err)
		return
	}
	body, err := markup.RenderHTML(post.Content)
	if err != nil {
		h.writeMissing(w, r, loc, slug, err)
		return
	}
	view := webtemplates.NewsPostView{
		Title:    strings.TrimSpace(post.Title),
		Author:   strings.TrimSpace(post.Author),
		Date:     webi18n.FormatDate(loc, post.PublishedDate.Time),
		Category: post.Category.Label(),
		Image:    content.MediaURL(h.mediaBase, post.Image),
		BodyHTML: body,
	}
	h.WritePage(w, r, view.Title, http.StatusOK, webtemplates.NewsPostPage(view, loc))
}

func (h handlers) writeMissing(w http.ResponseWriter, r *http.Request, loc webtemplates.Localizer, slug string, err error) {
	if apperrors.Is(err, apperrors.KindNotFound) {
		h.WritePage(w, r, webtemplates.T(loc, "news.title"), http.StatusNotFound,
			webtemplates.NewsPostMissing(webtemplates.T(loc, "news.post.not_found"), loc))
		return
	}
	h.Logf("load blog post failed slug=%s err=%v", slug, err)
	status := apperrors.HTTPStatus(err)
	if status < http.StatusInternalServerError {
		status = http.StatusBadGateway
	}
	h.WritePage(w, r, webtemplates.T(loc, "news.title"), status,
		webtemplates.NewsPostMissing(webtemplates.T(loc, "news.post.error"), loc))
}

func (h handlers) handleFeed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.feed(r.Context())
	if err != nil {
		h.Logf("load feed posts failed err=%v", err)
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "news feed unavailable", err))
		return
	}
	site := h.Site()
	if err := writeFeed(w, buildFeed(site.Name, site.Description, h.siteURL, posts)); err != nil {
		h.Logf("write feed failed err=%v", err)
	}
}

func categoryOptions(categories []content.Category, selected string) []webtemplates.CategoryOption {
	options := make([]webtemplates.CategoryOption, 0, len(categories))
	for _, category := range categories {
		slug := strings.TrimSpace(category.Slug)
		if slug == "" {
			continue
		}
		name := strings.TrimSpace(category.Name)
		if name == "" {
			name = slug
		}
		options = append(options, webtemplates.CategoryOption{Slug: slug, Name: name, Selected: slug == selected})
	}
	return options
}
