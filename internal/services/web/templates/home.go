package templates

import (
	"github.com/a-h/templ"

	"github.com/pleromasprings/website/internal/services/web/sitecontent"
)

// HomeView is the homepage content.
type HomeView struct {
	Hero          []sitecontent.HeroSlide
	Home          sitecontent.Home
	Programs      []sitecontent.Program
	Posts         []PostCard
	Events        []EventCard
	SelectedEvent *EventDetail
	SubscribeURL  string
}

// heroBackground is the inline style of one hero slide.
func heroBackground(image string) templ.SafeCSS {
	return templ.SafeCSS("background-image: url('" + string(templ.URL(image)) + "')")
}
