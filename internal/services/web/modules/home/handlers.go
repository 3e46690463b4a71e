package home

import (
	"context"
	"io"
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/modules/cards"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
	webtemplates "github.com/pleromasprings/website/internal/services/web/templates"
)

type homeService interface {
	latestPosts(ctx context.Context) ([]content.BlogPost, error)
	events(ctx context.Context) ([]content.Event, error)
	allPosts(ctx context.Context) ([]content.BlogPost, error)
}

type handlers struct {
	modulehandler.Base
	service   homeService
	site      sitecontent.Site
	mediaBase string
	siteURL   string
}

func newHandlers(s service, base modulehandler.Base, site sitecontent.Site, mediaBase string, siteURL string) handlers {
	return handlers{Base: base, service: s, site: site, mediaBase: mediaBase, siteURL: siteURL}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(r)
	view := webtemplates.HomeView{
		Hero:         h.site.Hero,
		Home:         h.site.Home,
		Programs:     h.site.Programs,
		SubscribeURL: routepath.WithParam(r.URL.Path, r.URL.RawQuery, routepath.SubscribeParam, "1"),
	}

	if posts, err := h.service.latestPosts(r.Context()); err != nil {
		h.Logf("load home posts failed err=%v", err)
	} else {
		view.Posts = cards.Posts(posts, h.mediaBase, loc)
	}
	if events, err := h.service.events(r.Context()); err != nil {
		h.Logf("load home events failed err=%v", err)
	} else {
		view.Events = cards.Events(content.UpcomingEvents(events, content.HomeHighlightCount), h.mediaBase, r, loc)
		view.SelectedEvent = cards.SelectedEvent(events, h.mediaBase, r, loc)
	}
	h.WritePage(w, r, webtemplates.T(loc, "home.title"), http.StatusOK, webtemplates.HomePage(view, loc))
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok\n")
}

func (h handlers) handleRobots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "User-agent: *\nAllow: /\nSitemap: "+routepath.Absolute(h.siteURL, routepath.Sitemap)+"\n")
}

func (h handlers) handleSitemap(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.allPosts(r.Context())
	if err != nil {
		h.Logf("load sitemap posts failed err=%v", err)
	}
	if err := writeSitemap(w, buildSitemap(h.siteURL, posts)); err != nil {
		h.Logf("write sitemap failed err=%v", err)
	}
}

func (h handlers) handleUnknown(w http.ResponseWriter, r *http.Request) {
	h.Redirect(w, r, routepath.Root)
}
