package impact

import (
	"net/http"
	"strings"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
	webtemplates "github.com/pleromasprings/website/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service   service
	site      sitecontent.Site
	mediaBase string
}

func newHandlers(s service, base modulehandler.Base, site sitecontent.Site, mediaBase string) handlers {
	return handlers{Base: base, service: s, site: site, mediaBase: mediaBase}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(r)
	view := webtemplates.ImpactView{Page: h.site.ImpactPage}

	if stats, err := h.service.listStats(r.Context()); err != nil {
		h.Logf("load impact stats failed err=%v", err)
	} else {
		view.Stats = statCards(stats)
	}
	if stories, err := h.service.listStories(r.Context()); err != nil {
		h.Logf("load transformation stories failed err=%v", err)
	} else {
		view.Stories = h.storyCards(stories)
	}
	h.WritePage(w, r, webtemplates.T(loc, "impact.title"), http.StatusOK, webtemplates.ImpactPage(view, loc))
}

func statCards(stats []content.ImpactStat) []webtemplates.StatCard {
	cards := make([]webtemplates.StatCard, 0, len(stats))
	for _, stat := range stats {
		target, ok := stat.CounterTarget()
		cards = append(cards, webtemplates.StatCard{
			Title:     strings.TrimSpace(stat.Title),
			Value:     strings.TrimSpace(stat.Value),
			Icon:      strings.TrimSpace(stat.Icon),
			Target:    target,
			HasTarget: ok,
		})
	}
	return cards
}

func (h handlers) storyCards(stories []content.TransformationStory) []webtemplates.StoryCard {
	cards := make([]webtemplates.StoryCard, 0, len(stories))
	for _, story := range stories {
		cards = append(cards, webtemplates.StoryCard{
			Name:     strings.TrimSpace(story.Name),
			Location: strings.TrimSpace(story.Location),
			Story:    story.Story,
			Image:    content.MediaURL(h.mediaBase, story.ImageURL),
		})
	}
	return cards
}
